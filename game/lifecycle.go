package game

import (
	"log/slog"

	"github.com/pthm-cable/mapactors/actor"
)

// registerBuilt registers a freshly constructed host, its parts, then any
// hosts its constructor queued on the environment.
func (g *Game) registerBuilt(h actor.Host) {
	g.registerTree(h, -1)
	for queued := g.env.drain(); len(queued) > 0; queued = g.env.drain() {
		for _, q := range queued {
			g.registerTree(q, -1)
		}
	}
}

// registerTree registers h and, depth first, every part it owns.
func (g *Game) registerTree(h actor.Host, parent int) {
	a := h.Base()
	if g.seen[a] {
		return
	}
	g.register(h, parent)
	for _, p := range a.Parts {
		g.registerTree(p, a.ID)
	}
}

// register stores h as an ark entity. Parts, spawned hosts and hosts sharing
// a placement get the next free ID.
func (g *Game) register(h actor.Host, parent int) {
	a := h.Base()
	g.seen[a] = true
	if a.ID < 0 || parent >= 0 || g.hasID(a.ID) {
		a.ID = g.nextID
		g.nextID++
	}
	a.Bind(h)

	e := g.slotMap.NewEntity(&Slot{Host: h}, &Registration{ID: a.ID, Tick: g.tick, Parent: parent})
	g.byID.Put(a.ID, e)
	g.count++

	g.lifetime.Register(a.ID, a.Name, g.tick, a.Dead, a.NerveName())
	slog.Debug("actor registered", "actor", a, "parent", parent)
}

func (g *Game) hasID(id int) bool {
	_, ok := g.byID.Get(id)
	return ok
}
