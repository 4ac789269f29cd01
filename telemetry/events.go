// Package telemetry provides actor lifecycle tracking, window stats,
// per-pass timing and CSV output.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventAppear EventType = iota
	EventDead
	EventNerveChange
	EventEmit
)

func (t EventType) String() string {
	switch t {
	case EventAppear:
		return "appear"
	case EventDead:
		return "dead"
	case EventNerveChange:
		return "nerve_change"
	case EventEmit:
		return "emit"
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type    EventType `csv:"-"`
	Kind    string    `csv:"event"`
	Tick    int64     `csv:"tick"`
	ActorID int       `csv:"actor_id"`
	Actor   string    `csv:"actor"`

	// Optional fields depending on event type
	From  string `csv:"from"`  // previous nerve
	To    string `csv:"to"`    // new nerve
	Count int    `csv:"count"` // emits since last frame
}

func newEvent(t EventType, tick int64, id int, name string) Event {
	return Event{Type: t, Kind: t.String(), Tick: tick, ActorID: id, Actor: name}
}

// NewAppearEvent creates an event for an actor returning to the frame passes.
func NewAppearEvent(tick int64, id int, name string) Event {
	return newEvent(EventAppear, tick, id, name)
}

// NewDeadEvent creates an event for an actor leaving the frame passes.
func NewDeadEvent(tick int64, id int, name string) Event {
	return newEvent(EventDead, tick, id, name)
}

// NewNerveChangeEvent creates a nerve transition event.
func NewNerveChangeEvent(tick int64, id int, name, from, to string) Event {
	e := newEvent(EventNerveChange, tick, id, name)
	e.From = from
	e.To = to
	return e
}

// NewEmitEvent creates an event for effect emits made during one frame.
func NewEmitEvent(tick int64, id int, name string, count int) Event {
	e := newEvent(EventEmit, tick, id, name)
	e.Count = count
	return e
}
