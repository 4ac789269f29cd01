package telemetry

import "sort"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowTicks    int64
	secondsPerTick float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	appears      int
	deaths       int
	nerveChanges int
	emits        int
	contacts     int
	byKind       map[string]int
}

// NewCollector creates a new stats collector.
// windowTicks: how many ticks each stats window lasts
// secondsPerTick: used for tick-to-time conversion
func NewCollector(windowTicks int, secondsPerTick float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks:    int64(windowTicks),
		secondsPerTick: secondsPerTick,
		byKind:         make(map[string]int),
	}
}

// Record counts one event.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventAppear:
		c.appears++
	case EventDead:
		c.deaths++
	case EventNerveChange:
		c.nerveChanges++
	case EventEmit:
		c.emits += e.Count
	}
	c.byKind[e.Actor]++
}

// RecordContacts counts sensor contacts delivered in one pass.
func (c *Collector) RecordContacts(n int) {
	c.contacts += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Population holds the actor counts sampled at window end.
type Population struct {
	Alive        int
	Dead         int
	Hidden       int
	LiveEmitters int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, pop Population) WindowStats {
	kind, n := c.busiest()
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.secondsPerTick,

		Alive:  pop.Alive,
		Dead:   pop.Dead,
		Hidden: pop.Hidden,

		Appears:      c.appears,
		Deaths:       c.deaths,
		NerveChanges: c.nerveChanges,
		Emits:        c.emits,
		LiveEmitters: pop.LiveEmitters,
		Contacts:     c.contacts,

		BusiestKind:   kind,
		BusiestEvents: n,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.appears = 0
	c.deaths = 0
	c.nerveChanges = 0
	c.emits = 0
	c.contacts = 0
	clear(c.byKind)

	return stats
}

// busiest returns the kind with the most events, ties broken by name.
func (c *Collector) busiest() (string, int) {
	kinds := make([]string, 0, len(c.byKind))
	for k := range c.byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	best, n := "", 0
	for _, k := range kinds {
		if c.byKind[k] > n {
			best, n = k, c.byKind[k]
		}
	}
	return best, n
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int64 {
	return c.windowTicks
}
