package actors

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/nerve"
)

type airBubbleNerve uint8

const (
	airBubbleWait airBubbleNerve = iota
	airBubbleMove
	airBubbleKillWait
)

var airBubbleNerveNames = [...]string{"Wait", "Move", "KillWait"}

func (n airBubbleNerve) String() string { return airBubbleNerveNames[n] }

const (
	airBubbleDefaultLifetime = 180
	airBubbleKillFrames      = 90
)

// AirBubble rises in a slow spiral and pops after its lifetime. Bubbles are
// pooled by the AirBubbleHolder and start dead.
type AirBubble struct {
	actor.Actor
	Lifetime float64

	spine nerve.Spine[airBubbleNerve]
	accel r3.Vec
}

func newAirBubble(env actor.Env) *AirBubble {
	b := &AirBubble{
		Actor:    actor.NewActor(components.NewPlacementAt("AirBubble", r3.Vec{})),
		Lifetime: airBubbleDefaultLifetime,
	}
	useModel(env, &b.Actor, "AirBubble")
	b.ConnectToScene(actor.BucketItem)
	b.InitEffectKeeper(env, "")
	b.spine.Init(airBubbleWait)
	b.Spine = &b.spine
	b.StartBck("Move")
	b.MakeActorDead()
	return b
}

// AppearMove revives the bubble at pos. A lifetime of zero or less uses the
// default.
func (b *AirBubble) AppearMove(pos r3.Vec, lifetime float64) {
	b.Translation = pos
	b.MakeActorAppeared()
	b.ShowModel()
	b.spine.Set(airBubbleMove)
	if lifetime <= 0 {
		lifetime = airBubbleDefaultLifetime
	}
	b.Lifetime = lifetime
}

func (b *AirBubble) Movement(*actor.Frame) {
	switch b.spine.Current() {
	case airBubbleMove:
		if b.spine.IsFirstStep() {
			b.Gravity = r3.Vec{Y: -1}
			b.Velocity = r3.Scale(-7, b.Gravity)
		}
		b.accel = geom.RotateDegree(b.accel, b.Gravity, 1.5)
		b.accel, _ = geom.KillElement(b.accel, b.Gravity)
		if geom.IsNearZero(b.accel, 0.001) {
			b.accel = geom.RandomVector(1)
		}
		b.accel = geom.NormalizeOr(b.accel, geom.AxisX)

		b.Velocity = r3.Add(b.Velocity, r3.Sub(r3.Scale(0.1, b.accel), r3.Scale(0.3, b.Gravity)))
		b.Velocity = r3.Scale(0.85, b.Velocity)
		if b.spine.IsGreaterStep(b.Lifetime) {
			b.HideModel()
			b.EmitEffect("RecoveryBubbleBreak")
			b.spine.Set(airBubbleKillWait)
		}
	case airBubbleKillWait:
		if b.spine.IsGreaterStep(airBubbleKillFrames) {
			b.MakeActorDead()
		}
	}
}

const (
	airBubbleHolderKey      = "AirBubbleHolder"
	airBubbleHolderCapacity = 32
)

// AirBubbleHolder is the scene's bubble pool. It owns no model and is never
// stepped itself; its members are registered alongside it.
type AirBubbleHolder struct {
	actor.Actor
	Bubbles *actor.Group[*AirBubble]
}

func newAirBubbleHolder(env actor.Env) *AirBubbleHolder {
	h := &AirBubbleHolder{
		Actor:   actor.NewActor(components.NewPlacementAt(airBubbleHolderKey, r3.Vec{})),
		Bubbles: actor.NewGroup[*AirBubble](airBubbleHolderCapacity),
	}
	for i := 0; i < airBubbleHolderCapacity; i++ {
		b := newAirBubble(env)
		h.Bubbles.Register(b)
		env.Register(b)
	}
	h.ConnectToScene(actor.BucketNone)
	return h
}

// AirBubbleHolderOf returns the scene's holder, creating it on first use.
func AirBubbleHolderOf(env actor.Env) *AirBubbleHolder {
	return env.Shared(airBubbleHolderKey, func() actor.Host {
		return newAirBubbleHolder(env)
	}).(*AirBubbleHolder)
}

func (h *AirBubbleHolder) Movement(*actor.Frame) {}

// AppearAirBubble launches the first free bubble. With none free the request
// is dropped.
func (h *AirBubbleHolder) AppearAirBubble(pos r3.Vec, lifetime float64) bool {
	b, ok := h.Bubbles.DeadMember()
	if !ok {
		return false
	}
	b.AppearMove(pos, lifetime)
	return true
}

type airBubbleGeneratorNerve uint8

const (
	airBubbleGeneratorWait airBubbleGeneratorNerve = iota
	airBubbleGeneratorGenerate
)

func (n airBubbleGeneratorNerve) String() string {
	if n == airBubbleGeneratorGenerate {
		return "Generate"
	}
	return "Wait"
}

// AirBubbleGenerator releases a bubble from the pool every delay frames.
type AirBubbleGenerator struct {
	actor.Actor
	holder   *AirBubbleHolder
	spine    nerve.Spine[airBubbleGeneratorNerve]
	delay    float64
	lifetime float64
}

func NewAirBubbleGenerator(env actor.Env, p components.Placement) *AirBubbleGenerator {
	g := &AirBubbleGenerator{Actor: actor.NewActor(p)}
	g.holder = AirBubbleHolderOf(env)
	g.InitDefaultPos()
	useModel(env, &g.Actor, "AirBubbleGenerator")
	g.ConnectToScene(actor.BucketNoSilhouettedMapObj)
	g.InitEffectKeeper(env, "")
	g.spine.Init(airBubbleGeneratorWait)
	g.Spine = &g.spine
	g.delay = p.ArgOr(0, 180)
	g.lifetime = p.ArgOr(1, -1)
	return g
}

func (g *AirBubbleGenerator) Movement(*actor.Frame) {
	switch g.spine.Current() {
	case airBubbleGeneratorWait:
		if g.spine.IsGreaterStep(g.delay) {
			g.spine.Set(airBubbleGeneratorGenerate)
		}
	case airBubbleGeneratorGenerate:
		if g.spine.IsFirstStep() {
			g.StartBck("Generate")
		}
		if g.spine.IsGreaterStep(6) {
			_, up, _ := g.Axes()
			g.holder.AppearAirBubble(r3.Add(g.Translation, r3.Scale(120, up)), g.lifetime)
			g.spine.Set(airBubbleGeneratorWait)
		}
	}
}

var requestAirBubbleGenerator = requestNamed("AirBubbleGenerator", "AirBubble")
