package telemetry

// LifetimeStats tracks per-actor statistics since registration.
type LifetimeStats struct {
	Name         string
	RegisterTick int64

	Appears      int
	Deaths       int
	NerveChanges int
	Emits        int

	// Last observed state, diffed every frame
	LastDead    bool
	LastNerve   string
	LastEmitted int
}

// LifetimeTracker manages per-actor lifetime statistics and turns frame to
// frame differences into events.
type LifetimeTracker struct {
	stats map[int]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[int]*LifetimeStats),
	}
}

// Register starts tracking an actor with its state at registration.
func (lt *LifetimeTracker) Register(id int, name string, tick int64, dead bool, nerve string) {
	lt.stats[id] = &LifetimeStats{
		Name:         name,
		RegisterTick: tick,
		LastDead:     dead,
		LastNerve:    nerve,
	}
}

// Get returns the lifetime stats for an actor, or nil if not found.
func (lt *LifetimeTracker) Get(id int) *LifetimeStats {
	return lt.stats[id]
}

// Len returns the number of tracked actors.
func (lt *LifetimeTracker) Len() int {
	return len(lt.stats)
}

// Observe compares an actor's current state with the last observation and
// appends the resulting events to dst.
func (lt *LifetimeTracker) Observe(dst []Event, tick int64, id int, dead bool, nerve string, emitted int) []Event {
	s := lt.stats[id]
	if s == nil {
		return dst
	}
	if dead != s.LastDead {
		if dead {
			s.Deaths++
			dst = append(dst, NewDeadEvent(tick, id, s.Name))
		} else {
			s.Appears++
			dst = append(dst, NewAppearEvent(tick, id, s.Name))
		}
		s.LastDead = dead
	}
	if nerve != s.LastNerve {
		s.NerveChanges++
		dst = append(dst, NewNerveChangeEvent(tick, id, s.Name, s.LastNerve, nerve))
		s.LastNerve = nerve
	}
	if emitted > s.LastEmitted {
		n := emitted - s.LastEmitted
		s.Emits += n
		dst = append(dst, NewEmitEvent(tick, id, s.Name, n))
	}
	s.LastEmitted = emitted
	return dst
}
