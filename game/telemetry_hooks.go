package game

import (
	"log/slog"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/telemetry"
)

// emitCounter is an effect keeper that counts emits.
type emitCounter interface {
	Emitted() int
}

// liveCounter is an effect keeper that counts live emitters.
type liveCounter interface {
	Count() int
}

// observe diffs every actor against its last observation, records the
// resulting events and samples the trace.
func (g *Game) observe() {
	sample := g.cfg.Telemetry.TraceEvery > 0 && g.tick%int64(g.cfg.Telemetry.TraceEvery) == 0
	start := len(g.events)

	g.eachHost(func(h actor.Host) {
		a := h.Base()
		emitted := 0
		if c, ok := a.Effects.(emitCounter); ok {
			emitted = c.Emitted()
		}
		g.events = g.lifetime.Observe(g.events, g.tick, a.ID, a.Dead, a.NerveName(), emitted)

		if sample {
			g.trace = append(g.trace, telemetry.TraceRow{
				Tick:   g.tick,
				ID:     a.ID,
				Name:   a.Name,
				X:      a.Translation.X,
				Y:      a.Translation.Y,
				Z:      a.Translation.Z,
				Dead:   a.Dead,
				Hidden: a.Hidden,
				Nerve:  a.NerveName(),
			})
		}
	})

	for _, e := range g.events[start:] {
		g.collector.Record(e)
		if e.Type == telemetry.EventDead || e.Type == telemetry.EventAppear {
			slog.Debug("actor lifecycle", "event", e.Kind, "actor", e.Actor, "id", e.ActorID, "tick", e.Tick)
		}
	}

	if g.outputManager == nil {
		g.events = g.events[:0]
		g.trace = g.trace[:0]
		return
	}
	if sample {
		if err := g.outputManager.WriteTrace(g.trace); err != nil {
			slog.Error("failed to write trace", "error", err)
		}
		g.trace = g.trace[:0]
	}
}

// population counts the actors at the end of a window.
func (g *Game) population() telemetry.Population {
	var pop telemetry.Population
	g.eachHost(func(h actor.Host) {
		a := h.Base()
		switch {
		case a.Dead:
			pop.Dead++
		case a.Hidden:
			pop.Alive++
			pop.Hidden++
		default:
			pop.Alive++
		}
		if c, ok := a.Effects.(liveCounter); ok {
			pop.LiveEmitters += c.Count()
		}
	})
	return pop
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.population())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
		if err := g.outputManager.WriteEvents(g.events); err != nil {
			slog.Error("failed to write events", "error", err)
		}
		g.events = g.events[:0]
	}
}

// Snapshot captures the observable state of every registered actor.
func (g *Game) Snapshot(scene string) *telemetry.Snapshot {
	s := &telemetry.Snapshot{
		Version: telemetry.SnapshotVersion,
		Seed:    g.cfg.Sim.Seed,
		Scene:   scene,
		Tick:    g.tick,
	}
	g.eachHost(func(h actor.Host) {
		a := h.Base()
		s.Actors = append(s.Actors, telemetry.ActorState{
			ID:       a.ID,
			Name:     a.Name,
			Model:    a.ObjName(),
			Pos:      [3]float64{a.Translation.X, a.Translation.Y, a.Translation.Z},
			Dead:     a.Dead,
			Hidden:   a.Hidden,
			Nerve:    a.NerveName(),
			Bucket:   a.Bucket.String(),
			Lifetime: g.lifetime.Get(a.ID).ToJSON(),
		})
	})
	return s
}

// SaveSnapshot writes a snapshot into the output directory.
func (g *Game) SaveSnapshot(scene string) {
	path, err := g.outputManager.WriteSnapshot(g.Snapshot(scene))
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	if path != "" {
		slog.Info("snapshot saved", "path", path, "tick", g.tick)
	}
}
