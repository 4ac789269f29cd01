package components

// Lifecycle tracks whether an actor takes part in the frame passes.
// A dead actor keeps its identity and can be made to appear again.
type Lifecycle struct {
	Dead   bool
	Hidden bool // model not drawn
}
