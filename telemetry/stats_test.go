package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(60, 1.0/60)

	c.Record(NewDeadEvent(3, 1, "Coin"))
	c.Record(NewDeadEvent(4, 2, "Coin"))
	c.Record(NewAppearEvent(5, 3, "TicoRail"))
	c.Record(NewNerveChangeEvent(6, 3, "TicoRail", "Wait", "Walk"))
	c.Record(NewEmitEvent(7, 4, "LavaSteam", 3))
	c.RecordContacts(4)

	if c.ShouldFlush(59) {
		t.Error("expected no flush before the window ends")
	}
	if !c.ShouldFlush(60) {
		t.Error("expected flush at window end")
	}

	s := c.Flush(60, Population{Alive: 10, Dead: 2, LiveEmitters: 5})

	if s.Deaths != 2 || s.Appears != 1 || s.NerveChanges != 1 {
		t.Errorf("expected 2 deaths, 1 appear, 1 nerve change, got %d, %d, %d", s.Deaths, s.Appears, s.NerveChanges)
	}
	if s.Emits != 3 {
		t.Errorf("expected 3 emits, got %d", s.Emits)
	}
	if s.Contacts != 4 {
		t.Errorf("expected 4 contacts, got %d", s.Contacts)
	}
	if s.BusiestKind != "Coin" && s.BusiestKind != "TicoRail" {
		t.Errorf("expected busiest kind Coin or TicoRail, got %q", s.BusiestKind)
	}
	if s.BusiestEvents != 2 {
		t.Errorf("expected busiest events 2, got %d", s.BusiestEvents)
	}
	if math.Abs(s.SimTimeSec-1) > 1e-9 {
		t.Errorf("expected sim_time 1, got %f", s.SimTimeSec)
	}

	next := c.Flush(120, Population{})
	if next.WindowStartTick != 60 || next.Deaths != 0 || next.BusiestKind != "" {
		t.Errorf("expected reset counters, got %+v", next)
	}
}

func TestCollectorBusiestTieBreaksByName(t *testing.T) {
	c := NewCollector(10, 1)
	c.Record(NewDeadEvent(1, 1, "Zeta"))
	c.Record(NewDeadEvent(1, 2, "Alpha"))

	s := c.Flush(10, Population{})
	if s.BusiestKind != "Alpha" {
		t.Errorf("expected Alpha, got %q", s.BusiestKind)
	}
}

func TestLifetimeTrackerObserve(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(7, "Kinopio", 0, false, "Wait")

	events := lt.Observe(nil, 1, 7, false, "Wait", 0)
	if len(events) != 0 {
		t.Fatalf("expected no events, got %v", events)
	}

	events = lt.Observe(nil, 2, 7, false, "Talk", 2)
	if len(events) != 2 {
		t.Fatalf("expected nerve change and emit, got %v", events)
	}
	if events[0].Type != EventNerveChange || events[0].From != "Wait" || events[0].To != "Talk" {
		t.Errorf("unexpected nerve event %+v", events[0])
	}
	if events[1].Type != EventEmit || events[1].Count != 2 {
		t.Errorf("unexpected emit event %+v", events[1])
	}

	events = lt.Observe(nil, 3, 7, true, "Talk", 2)
	if len(events) != 1 || events[0].Type != EventDead {
		t.Fatalf("expected one dead event, got %v", events)
	}

	events = lt.Observe(nil, 4, 7, false, "Talk", 2)
	if len(events) != 1 || events[0].Type != EventAppear {
		t.Fatalf("expected one appear event, got %v", events)
	}

	s := lt.Get(7)
	if s.Deaths != 1 || s.Appears != 1 || s.NerveChanges != 1 || s.Emits != 2 {
		t.Errorf("unexpected lifetime stats %+v", *s)
	}
}

func TestLifetimeTrackerUnknownActor(t *testing.T) {
	lt := NewLifetimeTracker()
	if events := lt.Observe(nil, 1, 99, true, "", 0); len(events) != 0 {
		t.Errorf("expected no events for an unregistered actor, got %v", events)
	}
}
