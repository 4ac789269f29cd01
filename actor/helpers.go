package actor

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Animation helpers. An actor without a model treats every channel as
// stopped with no frames, so nerves waiting on an animation move on.

func (a *Actor) StartBck(name string) { a.startAnim(Bck, name) }
func (a *Actor) StartBtk(name string) { a.startAnim(Btk, name) }
func (a *Actor) StartBtp(name string) { a.startAnim(Btp, name) }
func (a *Actor) StartBrk(name string) { a.startAnim(Brk, name) }
func (a *Actor) StartBpk(name string) { a.startAnim(Bpk, name) }

func (a *Actor) startAnim(ch AnimChannel, name string) {
	if a.Model != nil {
		a.Model.Start(ch, name)
	}
}

// TryStartBck starts name only when the model has it.
func (a *Actor) TryStartBck(name string) bool {
	if !a.IsAnimExist(Bck, name) {
		return false
	}
	a.Model.Start(Bck, name)
	return true
}

// StartBckWithInterpole blends into name over blendFrames.
func (a *Actor) StartBckWithInterpole(name string, blendFrames float64) {
	if a.Model != nil {
		a.Model.StartInterpole(Bck, name, blendFrames)
	}
}

func (a *Actor) IsAnimExist(ch AnimChannel, name string) bool {
	return a.Model != nil && a.Model.IsExist(ch, name)
}

func (a *Actor) IsBckExist(name string) bool { return a.IsAnimExist(Bck, name) }
func (a *Actor) IsBtkExist(name string) bool { return a.IsAnimExist(Btk, name) }
func (a *Actor) IsBtpExist(name string) bool { return a.IsAnimExist(Btp, name) }

func (a *Actor) IsBckStopped() bool {
	return a.Model == nil || a.Model.IsStopped(Bck)
}

func (a *Actor) IsBckPlaying(name string) bool {
	return a.Model != nil && a.Model.IsPlaying(Bck, name)
}

func (a *Actor) IsBckOneTimeAndStopped() bool {
	return a.Model == nil || a.Model.IsOneTimeAndStopped(Bck)
}

func (a *Actor) BckFrameMax() float64 {
	if a.Model == nil {
		return 0
	}
	return a.Model.FrameMax(Bck)
}

// SetAnimFrameAndStop pins channel ch at frame.
func (a *Actor) SetAnimFrameAndStop(ch AnimChannel, frame float64) {
	if a.Model != nil {
		a.Model.SetFrameAndStop(ch, frame)
	}
}

// StartAndStopAt starts name on ch and pins it at frame.
func (a *Actor) StartAndStopAt(ch AnimChannel, name string, frame float64) {
	if a.Model != nil {
		a.Model.Start(ch, name)
		a.Model.SetFrameAndStop(ch, frame)
	}
}

func (a *Actor) SetBckFrameAtRandom() {
	if a.Model != nil {
		a.Model.SetFrameAtRandom(Bck)
	}
}

func (a *Actor) SetBckRate(rate float64) {
	if a.Model != nil {
		a.Model.SetRate(Bck, rate)
	}
}

// SetLoopModeOnce makes every playing animation stop on its last frame.
func (a *Actor) SetLoopModeOnce() {
	if a.Model == nil {
		return
	}
	for ch := AnimChannel(0); ch < NumChannels; ch++ {
		a.Model.SetLoop(ch, false)
	}
}

func (a *Actor) TryStartAllAnim(name string) bool {
	return a.Model != nil && a.Model.TryStartAllAnim(name)
}

func (a *Actor) StartAction(name string) {
	if a.Model != nil {
		a.Model.StartAction(name)
	}
}

func (a *Actor) SetColorOverride(slot int, rgba uint32) {
	if a.Model != nil {
		a.Model.SetColorOverride(slot, rgba)
	}
}

// Effect helpers. An actor without an effect keeper ignores them.

func (a *Actor) EmitEffect(name string) {
	if a.Effects != nil {
		a.Effects.Emit(name)
	}
}

func (a *Actor) DeleteEffect(name string) {
	if a.Effects != nil {
		a.Effects.Delete(name)
	}
}

func (a *Actor) ForceDeleteEffect(name string) {
	if a.Effects != nil {
		a.Effects.ForceDelete(name)
	}
}

func (a *Actor) DeleteEffectAll() {
	if a.Effects != nil {
		a.Effects.DeleteAll()
	}
}

func (a *Actor) IsRegisteredEffect(name string) bool {
	return a.Effects != nil && a.Effects.IsRegistered(name)
}

// Rail helpers. Calling them on an actor without a rail is a programming error.

func (a *Actor) rider() {
	if a.Rail == nil {
		panic(fmt.Sprintf("actor: %s has no rail", a.Name))
	}
}

// MoveCoordAndFollowTrans moves along the rail by speed and takes the rail position.
func (a *Actor) MoveCoordAndFollowTrans(speed float64) {
	a.rider()
	a.Rail.SetSpeed(speed)
	a.Rail.Move()
	a.Translation = a.Rail.CurrentPos
}

// MoveCoordAndTransToNearestRailPos snaps to the nearest point on the rail.
func (a *Actor) MoveCoordAndTransToNearestRailPos() {
	a.rider()
	a.Rail.MoveToNearestPos(a.Translation)
	a.Translation = a.Rail.CurrentPos
}

// MoveCoordAndTransToNearestRailPoint snaps to the nearest rail control point.
func (a *Actor) MoveCoordAndTransToNearestRailPoint() {
	a.rider()
	a.Rail.MoveToNearestPoint(a.Translation)
	a.Translation = a.Rail.CurrentPos
}

// MoveCoordAndTransToRailStartPoint moves to coordinate 0.
func (a *Actor) MoveCoordAndTransToRailStartPoint() {
	a.rider()
	a.Rail.SetCoord(0)
	a.Translation = a.Rail.CurrentPos
}

// RailDirection returns the travel tangent.
func (a *Actor) RailDirection() r3.Vec {
	a.rider()
	return a.Rail.CurrentDir
}

func (a *Actor) IsRailGoingToEnd() bool {
	a.rider()
	return a.Rail.IsGoingToEnd()
}

func (a *Actor) ReverseRailDirection() {
	a.rider()
	a.Rail.Reverse()
}

func (a *Actor) RailTotalLength() float64 {
	a.rider()
	return a.Rail.TotalLength()
}
