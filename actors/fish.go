package actors

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/nerve"
)

var fishGroupModels = map[string]string{
	"FishGroupA": "FishA",
	"FishGroupB": "FishB",
	"FishGroupC": "FishC",
	"FishGroupD": "FishD",
	"FishGroupE": "FishE",
	"FishGroupF": "FishF",
}

func fishModel(groupName string) string {
	m, ok := fishGroupModels[groupName]
	if !ok {
		panic(fmt.Sprintf("actors: unknown fish group %q", groupName))
	}
	return m
}

const fishGroupRailSpeed = 5

// FishGroup runs along its rail; the school chases it.
type FishGroup struct {
	actor.Actor
	Fish []*Fish
	Up   r3.Vec
}

func NewFishGroup(env actor.Env, p components.Placement) *FishGroup {
	g := &FishGroup{Actor: actor.NewActor(p)}
	count := p.ArgInt(0, 10)

	g.InitDefaultPos()
	_, g.Up, _ = g.Axes()
	g.InitRailRider(env)
	g.MoveCoordAndTransToNearestRailPos()

	model := fishModel(g.Name)
	g.Fish = make([]*Fish, 0, max(count, 0))
	for i := 0; i < count; i++ {
		f := newFish(env, g, model)
		g.Fish = append(g.Fish, f)
		g.AddPart(f)
	}
	g.ConnectToScene(actor.BucketNone)
	return g
}

func (g *FishGroup) Movement(f *actor.Frame) {
	g.MoveCoordAndFollowTrans(fishGroupRailSpeed * f.DeltaFrames)
}

func RequestFishGroupArchives(env actor.Env, p *components.Placement) {
	env.Archives().RequestObjectData(fishModel(p.Name))
}

type fishNerve uint8

const (
	fishApproach fishNerve = iota
	fishWander
)

func (n fishNerve) String() string {
	if n == fishApproach {
		return "Approach"
	}
	return "Wander"
}

// Fish holds a random offset from the group's rail position and swims
// towards it whenever it strays past its own threshold.
type Fish struct {
	actor.Actor
	Direction r3.Vec

	group     *FishGroup
	spine     nerve.Spine[fishNerve]
	follow    r3.Vec
	offset    r3.Vec
	counter   float64
	threshold float64
}

func newFish(env actor.Env, g *FishGroup, model string) *Fish {
	f := &Fish{
		Actor: actor.NewActor(components.NewPlacementAt(model, g.Translation)),
		group: g,
	}
	f.offset = r3.Vec{
		X: geom.RandomFloat(-150, 150),
		Y: geom.RandomFloat(-150, 150),
		Z: geom.RandomFloat(-150, 150),
	}
	f.threshold = geom.RandomFloat(100, 500)

	f.updateFollowPoint()
	f.Translation = f.follow
	f.Direction = g.RailDirection()

	useModel(env, &f.Actor, model)
	f.StartBck("Swim")
	f.spine.Init(fishWander)
	f.Spine = &f.spine
	f.ConnectToScene(actor.BucketEnvironment)
	return f
}

func (f *Fish) updateFollowPoint() {
	f.follow = r3.Add(f.group.Rail.CurrentPos, f.offset)
}

func (f *Fish) Movement(*actor.Frame) {
	thresholdSq := f.threshold * f.threshold
	switch f.spine.Current() {
	case fishApproach:
		if f.spine.IsFirstStep() {
			f.counter = 0
		}
		f.counter--
		if f.counter < 1 {
			to := geom.NormalizeOr(r3.Sub(f.follow, f.Translation), f.Direction)
			if r3.Dot(to, f.Direction) <= 0.9 {
				d := geom.Lerp(f.Direction, to, 0.8)
				if geom.IsNearZero(d, 0.01) {
					f.Direction = to
				} else {
					f.Direction = r3.Unit(d)
				}
			} else {
				f.Direction = to
			}
			f.Velocity = r3.Add(f.Velocity, r3.Scale(5, f.Direction))
			f.counter = float64(geom.RandomInt(5, 30))
		}
		if geom.DistanceSq(f.follow, f.Translation) < thresholdSq {
			f.spine.Set(fishWander)
		}
	case fishWander:
		if f.spine.IsFirstStep() {
			f.counter = 0
		}
		f.counter--
		if f.counter < 1 {
			f.Velocity = r3.Add(f.Velocity, f.Direction)
			f.counter = float64(geom.RandomInt(60, 180))
		}
		if geom.DistanceSq(f.follow, f.Translation) > thresholdSq {
			f.spine.Set(fishApproach)
		}
	}

	f.Velocity = r3.Scale(0.95, f.Velocity)
	f.SetBckRate(0.2 * r3.Norm(f.Velocity))

	if geom.IsNearZero(f.Direction, 0.001) {
		if geom.IsNearZero(f.Velocity, 0.001) {
			f.Direction = geom.AxisX
		} else {
			f.Direction = f.Velocity
		}
	}
	f.updateFollowPoint()
}

func (f *Fish) CalcAndSetBaseMtx(*actor.Frame) {
	f.BaseMtx = geom.MakeFrontUpPos(f.Direction, f.group.Up, f.Translation)
}
