package actor

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/rail"
)

// AnimChannel selects one of a model's independent animation tracks.
type AnimChannel uint8

const (
	Bck AnimChannel = iota // skeletal
	Btk                    // texture matrix
	Btp                    // texture pattern
	Brk                    // colour register
	Bpk                    // colour palette
	NumChannels
)

var channelNames = [NumChannels]string{"bck", "btk", "btp", "brk", "bpk"}

func (c AnimChannel) String() string {
	if c < NumChannels {
		return channelNames[c]
	}
	return "unknown"
}

// ParseAnimChannel maps a channel name from the asset tables.
func ParseAnimChannel(s string) (AnimChannel, bool) {
	for i, n := range channelNames {
		if n == s {
			return AnimChannel(i), true
		}
	}
	return 0, false
}

// Model controls one loaded model and its animations.
type Model interface {
	Start(ch AnimChannel, name string)
	StartInterpole(ch AnimChannel, name string, blendFrames float64)
	IsExist(ch AnimChannel, name string) bool
	IsStopped(ch AnimChannel) bool
	IsPlaying(ch AnimChannel, name string) bool
	IsOneTimeAndStopped(ch AnimChannel) bool
	FrameMax(ch AnimChannel) float64
	SetFrameAndStop(ch AnimChannel, frame float64)
	SetFrameAtRandom(ch AnimChannel)
	SetRate(ch AnimChannel, rate float64)
	SetLoop(ch AnimChannel, loop bool)

	// TryStartAllAnim starts name on every channel that has it.
	TryStartAllAnim(name string) bool
	StartAction(name string)
	SetColorOverride(slot int, rgba uint32)

	JointCount() int
	JointMtx(i int) *geom.Mtx
	JointMtxByName(name string) *geom.Mtx // nil when the joint does not exist

	Advance(deltaFrames float64)
	UpdateJoints(base geom.Mtx)
}

// Effects controls the particle emitters bound to one actor.
type Effects interface {
	Emit(name string)
	Delete(name string)
	ForceDelete(name string)
	DeleteAll()
	IsRegistered(name string) bool
	SetHostMtx(name string, m *geom.Mtx)
	SetHostSRT(name string, trans, rot, scale *r3.Vec)
	SetDrawParticle(draw bool)
	EmitterCount() int
}

// Camera is the tracked viewpoint.
type Camera interface {
	Position() r3.Vec
	Up() r3.Vec
	Front() r3.Vec
	ContainsSphere(center r3.Vec, radius float64) bool
}

// Archives is the asset prefetch directory.
type Archives interface {
	RequestObjectData(name string)
	IsObjectDataExist(name string) bool
}

// Env is what actors are constructed against.
type Env interface {
	Archives() Archives
	// NewModel returns nil when no archive of that name exists.
	NewModel(name string) Model
	NewEffects(a *Actor, group string) Effects
	NPCItem(npc string, index int) (config.NPCItem, bool)
	Rail(name string) (rail.Rail, bool)
	// Register adds a host that is not a part of the actor being built.
	Register(h Host)
	// Shared returns the scene-wide host stored under key, building and
	// registering it on first use.
	Shared(key string, build func() Host) Host
}

// Frame is the per-frame input every actor reads.
type Frame struct {
	Tick        int64
	DeltaFrames float64
	TotalFrames float64
	Camera      Camera
}
