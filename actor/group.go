package actor

// Group is an ordered, fixed-capacity collection of homogeneous actors.
// Used as a pool, DeadMember is the acquire operation: it never grows the
// group and never blocks.
type Group[T Host] struct {
	members []T
}

// NewGroup returns an empty group holding at most capacity members.
func NewGroup[T Host](capacity int) *Group[T] {
	return &Group[T]{members: make([]T, 0, capacity)}
}

// Register appends m. It reports false when the group is full.
func (g *Group[T]) Register(m T) bool {
	if len(g.members) == cap(g.members) {
		return false
	}
	g.members = append(g.members, m)
	return true
}

// DeadMember returns the first dead member.
func (g *Group[T]) DeadMember() (T, bool) {
	for _, m := range g.members {
		if m.Base().Dead {
			return m, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of registered members.
func (g *Group[T]) Len() int { return len(g.members) }

// Cap returns the fixed capacity.
func (g *Group[T]) Cap() int { return cap(g.members) }

// At returns member i.
func (g *Group[T]) At(i int) T { return g.members[i] }

// All returns the members in registration order.
func (g *Group[T]) All() []T { return g.members }

// AliveCount returns the number of members taking part in the frame passes.
func (g *Group[T]) AliveCount() int {
	n := 0
	for _, m := range g.members {
		if !m.Base().Dead {
			n++
		}
	}
	return n
}

func (g *Group[T]) MakeAllDead() {
	for _, m := range g.members {
		m.Base().MakeActorDead()
	}
}

func (g *Group[T]) MakeAllAppeared() {
	for _, m := range g.members {
		m.Base().MakeActorAppeared()
	}
}

// Hosts returns the members as plain hosts, for registration.
func (g *Group[T]) Hosts() []Host {
	out := make([]Host, len(g.members))
	for i, m := range g.members {
		out[i] = m
	}
	return out
}
