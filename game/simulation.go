package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/systems"
)

// effectUpdater is an effect keeper that ages its emitters.
type effectUpdater interface {
	Update(deltaFrames float64)
}

// Update runs one frame of the configured length.
func (g *Game) Update() {
	g.UpdateDelta(g.cfg.Sim.DeltaFrames)
}

// UpdateDelta runs one frame advancing dt frames. Hosts driving the scene at
// a variable rate pass their measured delta; dt <= 0 counts as one frame.
func (g *Game) UpdateDelta(dt float64) {
	if dt <= 0 {
		dt = 1
	}
	g.tick++
	g.totalFrames += dt
	frame := g.frame(dt)

	g.perfCollector.BeginFrame()

	g.perfCollector.BeginPass(systems.PassCamera)
	g.orbit.Advance(dt)

	g.perfCollector.BeginPass(systems.PassMovement)
	g.eachHost(func(h actor.Host) {
		g.isolate(h, systems.PassMovement, func() { actor.Step(h, frame) })
	})

	g.perfCollector.BeginPass(systems.PassSensors)
	g.updateSensors()

	g.perfCollector.BeginPass(systems.PassCalcMtx)
	g.eachHost(func(h actor.Host) {
		g.isolate(h, systems.PassCalcMtx, func() { actor.CalcMtx(h, frame) })
	})

	g.perfCollector.BeginPass(systems.PassEffects)
	g.eachHost(func(h actor.Host) {
		if u, ok := h.Base().Effects.(effectUpdater); ok {
			u.Update(dt)
		}
	})

	g.perfCollector.BeginPass(systems.PassTelemetry)
	g.observe()
	g.flushTelemetry()

	g.perfCollector.EndFrame(dt)
}

// isolate runs fn for h. A panic is logged with the actor and pass, and the
// actor is made dead so the rest of the pass and its group carry on.
func (g *Game) isolate(h actor.Host, pass string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a := h.Base()
			slog.Error("actor panicked",
				"pass", g.registry.GetName(pass),
				"actor", a,
				"panic", fmt.Sprint(r),
			)
			a.MakeActorDead()
		}
	}()
	fn()
}

// updateSensors rebuilds the broadphase from the alive actors and delivers
// every contact to attackers.
func (g *Game) updateSensors() {
	g.grid.Clear()
	g.eachHost(func(h actor.Host) {
		a := h.Base()
		if a.Dead {
			return
		}
		for _, s := range a.Sensors {
			g.grid.Insert(s)
		}
	})
	if g.grid.Len() == 0 {
		return
	}

	g.contacts = g.grid.Contacts(g.contacts[:0])
	delivered := 0
	for _, c := range g.contacts {
		owner := c.Self.Owner
		if owner.Base().Dead {
			continue
		}
		at, ok := owner.(actor.SensorAttacker)
		if !ok {
			continue
		}
		g.isolate(owner, systems.PassSensors, func() { at.AttackSensor(c.Self, c.Other) })
		delivered++
	}
	g.collector.RecordContacts(delivered)
}
