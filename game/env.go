package game

import (
	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/rail"
	"github.com/pthm-cable/mapactors/systems"
)

// sceneEnv is the construction environment handed to the factory table.
// Hosts registered or shared while one object is being built are queued
// and registered after it.
type sceneEnv struct {
	g       *Game
	pending []actor.Host
	shared  map[string]actor.Host
	built   []actor.Host // shared hosts awaiting registration
}

func newSceneEnv(g *Game) *sceneEnv {
	return &sceneEnv{g: g, shared: make(map[string]actor.Host)}
}

func (e *sceneEnv) Archives() actor.Archives { return e.g.archives }

func (e *sceneEnv) NewModel(name string) actor.Model {
	cfg := e.g.cfg
	if !cfg.Derived.ArchiveSet[name] {
		return nil
	}
	asset, ok := cfg.Derived.ModelIndex[name]
	if !ok {
		asset = config.ModelAsset{Name: name}
	}
	return systems.NewAnimPlayer(asset, cfg.Assets.DefaultAnimFrames)
}

func (e *sceneEnv) NewEffects(a *actor.Actor, group string) actor.Effects {
	return systems.NewEffectKeeper(group, e.g.cfg.Effects[group], &a.Translation)
}

func (e *sceneEnv) NPCItem(npc string, index int) (config.NPCItem, bool) {
	return e.g.cfg.NPCItem(npc, index)
}

func (e *sceneEnv) Rail(name string) (rail.Rail, bool) {
	r, ok := e.g.rails[name]
	return r, ok
}

func (e *sceneEnv) Register(h actor.Host) {
	e.pending = append(e.pending, h)
}

func (e *sceneEnv) Shared(key string, build func() actor.Host) actor.Host {
	if h, ok := e.shared[key]; ok {
		return h
	}
	h := build()
	e.shared[key] = h
	e.built = append(e.built, h)
	return h
}

// drain returns the queued hosts, registered members first.
func (e *sceneEnv) drain() []actor.Host {
	out := append(e.pending, e.built...)
	e.pending = nil
	e.built = nil
	return out
}
