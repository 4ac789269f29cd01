// Package actors holds the concrete map actors and the factory table that
// builds them from placement records.
//
// Each actor has a constructor NewX(env, placement) and, where it loads more
// than its own model, a RequestXArchives declaration used by the prefetch pass.
package actors

import (
	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
)

// Move conditions shared by the map-parts actors.
const (
	moveUnconditionally = 0
	moveWaitForPlayerOn = 1
)

func moveCondition(p *components.Placement) int {
	return p.MoveConditionType
}

// useModel loads name and makes it the actor's object name, so the effect
// group defaults to it as well.
func useModel(env actor.Env, a *actor.Actor, name string) {
	a.SetObjName(name)
	a.InitModel(env, name)
}

// requestObjName declares the placement's own model.
func requestObjName(env actor.Env, p *components.Placement) {
	env.Archives().RequestObjectData(p.ObjName())
}

// requestNamed returns a declaration for a fixed set of archives.
func requestNamed(names ...string) func(actor.Env, *components.Placement) {
	return func(env actor.Env, _ *components.Placement) {
		for _, n := range names {
			env.Archives().RequestObjectData(n)
		}
	}
}

// requestNothing is for effect-only actors.
func requestNothing(actor.Env, *components.Placement) {}
