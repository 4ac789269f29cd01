package actors

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/nerve"
)

type ticoRailNerve uint8

const (
	ticoRailWait ticoRailNerve = iota
	ticoRailLookAround
	ticoRailMoveSignAndTurn
	ticoRailMoveSign
	ticoRailMove
	ticoRailStop
	ticoRailTalkStart
	ticoRailTalk
	ticoRailTalkCancel
	ticoRailGoodBye
)

var ticoRailNerveNames = [...]string{
	"Wait",
	"LookAround",
	"MoveSignAndTurn",
	"MoveSign",
	"Move",
	"Stop",
	"TalkStart",
	"Talk",
	"TalkCancel",
	"GoodBye",
}

func (n ticoRailNerve) String() string { return ticoRailNerveNames[n] }

// Talk and patrol tuning.
const (
	ticoTalkMaxVertical   = 30  // units along up between partners
	ticoRandomExitCeiling = 300 // frames past a random exit before it is forced
	ticoTalkFrames        = 320
	ticoPatrolSpeed       = 15
	ticoPatrolRampFrames  = 200
	ticoLookAroundDegrees = 1.2
)

// TicoRail patrols its rail, stopping to look around, and pairs up with
// another TicoRail on the same rail for a short talk when their body sensors
// touch.
type TicoRail struct {
	actor.Actor
	Direction r3.Vec

	spine   nerve.Spine[ticoRailNerve]
	partner *actor.Actor
}

func NewTicoRail(env actor.Env, p components.Placement) *TicoRail {
	t := &TicoRail{Actor: actor.NewActor(p)}
	t.InitDefaultPos()
	useModel(env, &t.Actor, "Tico")
	t.ConnectToScene(actor.BucketNPC)
	actor.AddSensor(t, "body", actor.SensorNPC, 50, r3.Vec{Y: 50})
	t.InitLightCtrl()
	t.InitEffectKeeper(env, "")

	t.InitRailRider(env)
	t.MoveCoordAndTransToNearestRailPos()
	t.Direction = t.RailDirection()
	t.StartAndStopAt(actor.Brk, "ColorChange", p.ArgOr(0, 0))

	if geom.RandomInt(0, 2) == 0 {
		t.spine.Init(ticoRailWait)
	} else {
		t.spine.Init(ticoRailMove)
	}
	t.Spine = &t.spine
	return t
}

// Partner returns the actor being talked to, or nil.
func (t *TicoRail) Partner() *actor.Actor { return t.partner }

func (t *TicoRail) isTalking() bool {
	switch t.spine.Current() {
	case ticoRailTalkStart, ticoRailTalk, ticoRailTalkCancel, ticoRailGoodBye:
		return true
	}
	return false
}

// AttackSensor asks a touching NPC to talk. A refusal from something heading
// the other way makes this one turn back.
func (t *TicoRail) AttackSensor(self, other *actor.HitSensor) {
	if !other.IsNPC() || t.isTalking() {
		return
	}
	if actor.SendMsg(actor.MsgTicoRailStartTalk, other, self) {
		t.partner = other.Owner.Base()
		t.spine.Set(ticoRailTalkStart)
		return
	}
	o := other.Owner.Base()
	if o.Rail != nil && t.IsRailGoingToEnd() == o.IsRailGoingToEnd() {
		return
	}
	t.spine.Set(ticoRailTalkCancel)
}

func (t *TicoRail) ReceiveMessage(msg actor.Message, _, from *actor.HitSensor) bool {
	if msg != actor.MsgTicoRailStartTalk || from == nil || t.isTalking() {
		return false
	}
	other := from.Owner.Base()
	if !t.isSameRailActor(other) {
		return false
	}
	if geom.RandomInt(0, 2) == 0 {
		return false
	}
	if t.verticalDistance(other.Translation) > ticoTalkMaxVertical {
		return false
	}
	t.partner = other
	t.spine.Set(ticoRailTalkStart)
	return true
}

func (t *TicoRail) isSameRailActor(other *actor.Actor) bool {
	if other.Rail == nil {
		return false
	}
	return t.Rail.StartPos() == other.Rail.StartPos() && t.Rail.EndPos() == other.Rail.EndPos()
}

func (t *TicoRail) verticalDistance(p r3.Vec) float64 {
	return math.Abs(r3.Dot(r3.Sub(p, t.Translation), t.UpVec()))
}

// isGreaterEqualStepAndRandom leaves after v frames with a 1/300 chance per
// frame, and always after v+300.
func (t *TicoRail) isGreaterEqualStepAndRandom(v float64) bool {
	if t.spine.IsGreaterStep(v + ticoRandomExitCeiling) {
		return true
	}
	return t.spine.IsGreaterStep(v) && geom.RandomInt(0, 300) == 0
}

func (t *TicoRail) Movement(f *actor.Frame) {
	dt := f.DeltaFrames
	switch cur := t.spine.Current(); cur {
	case ticoRailWait:
		if t.spine.IsFirstStep() {
			t.StartBck("Turn")
		}
		if t.isGreaterEqualStepAndRandom(60) {
			t.spine.Set(ticoRailLookAround)
		}

	case ticoRailLookAround:
		if t.spine.IsFirstStep() {
			t.TryStartBck("Turn")
		}
		var turn float64
		switch {
		case t.spine.IsLessStep(40):
			turn = ticoLookAroundDegrees
		case t.spine.IsLessStep(120):
			turn = -ticoLookAroundDegrees
		case t.spine.IsLessStep(160):
			turn = ticoLookAroundDegrees
		}
		t.Direction = geom.RotateDegree(t.Direction, t.UpVec(), turn*dt)
		if t.spine.IsGreaterStep(160) {
			if geom.RandomInt(0, 2) == 0 {
				t.spine.Set(ticoRailMoveSignAndTurn)
			} else {
				t.spine.Set(ticoRailMoveSign)
			}
		}

	case ticoRailMoveSign, ticoRailMoveSignAndTurn:
		if t.spine.IsFirstStep() {
			t.StartBck("Spin")
			if cur == ticoRailMoveSignAndTurn {
				t.ReverseRailDirection()
			}
		}
		rate := geom.Clamp01(t.spine.Rate(t.BckFrameMax()))
		dir := t.RailDirection()
		t.Direction = geom.Lerp(geom.Negate(dir), dir, rate)
		if t.IsBckStopped() {
			t.spine.Set(ticoRailMove)
		}

	case ticoRailMove:
		if t.spine.IsFirstStep() {
			t.TryStartBck("Wait")
		}
		t.MoveCoordAndFollowTrans(t.spine.Value(ticoPatrolRampFrames, 0, ticoPatrolSpeed) * dt)
		t.Direction = t.RailDirection()
		if t.isGreaterEqualStepAndRandom(500) {
			t.spine.Set(ticoRailStop)
		}

	case ticoRailStop:
		if t.spine.IsFirstStep() {
			t.StartBck("Spin")
		}
		t.MoveCoordAndFollowTrans(t.spine.Value(t.BckFrameMax(), ticoPatrolSpeed, 0) * dt)
		if t.IsBckStopped() {
			t.spine.Set(ticoRailWait)
		}

	case ticoRailTalkCancel:
		if t.spine.IsFirstStep() {
			t.TryStartBck("Spin")
		}
		t.MoveCoordAndFollowTrans(ticoPatrolSpeed * dt)
		t.Direction = t.RailDirection()
		if t.IsBckStopped() {
			t.spine.Set(ticoRailMove)
		}

	case ticoRailTalkStart:
		if t.partner == nil {
			t.spine.Set(ticoRailMove)
			return
		}
		toPartner := geom.NormalizeOr(r3.Sub(t.partner.Translation, t.Translation), t.Direction)
		if t.spine.IsFirstStep() {
			t.StartBck("Spin")
			if r3.Dot(toPartner, t.RailDirection()) > 0 {
				t.ReverseRailDirection()
			}
		}
		t.MoveCoordAndFollowTrans(2 * dt)
		rate := geom.Clamp01(t.spine.Rate(t.BckFrameMax()))
		t.Direction = geom.Lerp(t.RailDirection(), toPartner, rate)
		if t.IsBckStopped() {
			t.spine.Set(ticoRailTalk)
		}

	case ticoRailTalk:
		if t.spine.IsFirstStep() {
			t.StartBck("Talk")
		}
		if !t.IsBckPlaying("Reaction") && geom.RandomInt(0, 60) == 0 {
			t.StartBckWithInterpole("Reaction", 5)
		}
		if t.IsBckOneTimeAndStopped() {
			t.StartBck("Talk")
		}
		if t.spine.IsGreaterStep(ticoTalkFrames) {
			t.spine.Set(ticoRailGoodBye)
		}

	case ticoRailGoodBye:
		if t.spine.IsFirstStep() {
			t.StartBck("CallBack")
			if r3.Dot(t.Direction, t.RailDirection()) > 0 {
				t.ReverseRailDirection()
			}
		}
		t.MoveCoordAndFollowTrans(1.5 * dt)
		if t.spine.IsGreaterStep(t.BckFrameMax()) {
			t.partner = nil
			t.spine.Set(ticoRailMoveSign)
		}
	}
}

// CalcAndSetBaseMtx stands the model upright and faces it along Direction.
func (t *TicoRail) CalcAndSetBaseMtx(*actor.Frame) {
	t.Gravity = r3.Vec{Y: -1}
	t.BaseMtx = geom.FromGravityAndZAxis(t.Gravity, t.Direction, t.Translation)
}
