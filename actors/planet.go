package actors

import (
	"fmt"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
)

// PlanetMap is a planet model with optional bloom, water and indirect
// companions, each created only when its archive exists.
type PlanetMap struct {
	actor.Actor
	Bloom    *actor.ModelObj
	Water    *actor.PartsModel
	Indirect *actor.PartsModel
}

func NewPlanetMap(env actor.Env, p components.Placement) *PlanetMap {
	m := &PlanetMap{}
	m.init(env, p)
	return m
}

func (m *PlanetMap) init(env actor.Env, p components.Placement) {
	m.Actor = actor.NewActor(p)
	a := &m.Actor
	a.InitDefaultPos()

	a.InitModel(env, a.Name)
	m.Bloom = actor.CreateBloomModel(env, a, a.Name)
	if m.Bloom != nil {
		m.Bloom.Scale = a.Scale
	}
	m.Water = actor.CreateSubModel(env, a, "Water", actor.BucketMapObj)
	m.Indirect = actor.CreateSubModel(env, a, "Indirect", actor.BucketIndirectPlanet)

	a.ConnectToScene(actor.BucketPlanet)
	a.InitEffectKeeper(env, "")
	a.TryStartAllAnim(a.Name)
	m.tryStartMyEffect()
}

// tryStartMyEffect emits the planet's own emitter and then the numbered ones
// "<name>00", "<name>01", ... for each emitter the group defines.
func (m *PlanetMap) tryStartMyEffect() {
	if m.Effects == nil {
		return
	}
	m.EmitEffect(m.Name)
	for i := 0; i < m.Effects.EmitterCount(); i++ {
		m.EmitEffect(fmt.Sprintf("%s%02d", m.Name, i))
	}
}

func (m *PlanetMap) Movement(*actor.Frame) {}

// RailPlanetMap is a planet bound to a rail it never moves along.
type RailPlanetMap struct {
	PlanetMap
}

func NewRailPlanetMap(env actor.Env, p components.Placement) *RailPlanetMap {
	m := &RailPlanetMap{}
	m.init(env, p)
	m.InitRailRider(env)
	return m
}

// PeachCastleGardenPlanet shows the garden before the castle is lifted.
type PeachCastleGardenPlanet struct {
	actor.MapObj
	Indirect *actor.PartsModel
}

func NewPeachCastleGardenPlanet(env actor.Env, p components.Placement) *PeachCastleGardenPlanet {
	o := &PeachCastleGardenPlanet{}
	info := actor.NewMapObjInitInfo()
	info.SetupPlanet()
	actor.InitMapObj(env, &o.MapObj, p, info)

	o.Indirect = actor.CreateSubModel(env, &o.Actor, "Indirect", actor.BucketIndirectPlanet)
	o.TryStartAllAnim("Before")
	o.TryStartAllAnim("PeachCastleGardenPlanet")
	return o
}

// HatchWaterPlanet plays its animation through once.
type HatchWaterPlanet struct {
	actor.Actor
}

func NewHatchWaterPlanet(env actor.Env, p components.Placement) *HatchWaterPlanet {
	h := &HatchWaterPlanet{Actor: actor.NewActor(p)}
	h.InitDefaultPos()
	useModel(env, &h.Actor, "HatchWaterPlanet")
	h.ConnectToScene(actor.BucketPlanet)
	h.InitEffectKeeper(env, "")
	h.TryStartAllAnim("HatchWaterPlanet")
	h.SetLoopModeOnce()
	return h
}

func (h *HatchWaterPlanet) Movement(*actor.Frame) {}
