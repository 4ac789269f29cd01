// Package actor provides the shared actor core: the capability blocks every
// placed object is assembled from, the construction pipeline for map objects,
// owned parts, hit sensors and fixed-capacity groups.
//
// Concrete actors embed Actor (or MapObj) and implement Host. Optional
// behaviour is expressed through the MtxCalculator, JointCalculator,
// MessageReceiver and SensorAttacker interfaces, which the scene driver
// checks per host.
package actor

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/rail"
)

// Host is anything the scene driver can step.
type Host interface {
	Base() *Actor
	Movement(f *Frame)
}

// MtxCalculator replaces the default SRT base matrix.
type MtxCalculator interface {
	CalcAndSetBaseMtx(f *Frame)
}

// JointCalculator poses joints itself after the model has been posed at the
// base matrix.
type JointCalculator interface {
	CalcJoints(f *Frame)
}

// MessageReceiver handles directed messages. The return value reports
// whether the message was accepted.
type MessageReceiver interface {
	ReceiveMessage(msg Message, self, from *HitSensor) bool
}

// SensorAttacker is told about every sensor contact the broadphase finds.
type SensorAttacker interface {
	AttackSensor(self, other *HitSensor)
}

// NerveStepper is a spine as seen by the frame driver.
type NerveStepper interface {
	Update(deltaFrames float64)
	Name() string
}

// Actor is the state shared by every placed object.
type Actor struct {
	Name      string
	ID        int
	Placement components.Placement

	components.Transform
	components.Kinematics
	components.Lifecycle

	Model     Model
	Effects   Effects
	Rail      *rail.Rider
	Spine     NerveStepper
	Sensors   []*HitSensor
	Parts     []Host // owned; die and appear with this actor
	BaseMtx   geom.Mtx
	LightCtrl bool
	Bucket    DrawBucket

	objName string
	self    Host
}

// NewActor returns an alive actor named after the placement, at the origin.
func NewActor(p components.Placement) Actor {
	return Actor{
		Name:      p.Name,
		ID:        p.ID,
		Placement: p,
		Transform: components.NewTransform(),
		BaseMtx:   geom.Identity(),
		objName:   p.ObjName(),
	}
}

// Base returns the actor itself so embedding types satisfy Host.
func (a *Actor) Base() *Actor { return a }

// Bind records the host wrapping this actor. The scene driver binds every
// registered host.
func (a *Actor) Bind(h Host) { a.self = h }

// Self returns the bound host, or nil.
func (a *Actor) Self() Host { return a.self }

// ObjName returns the model archive name.
func (a *Actor) ObjName() string { return a.objName }

// SetObjName overrides the model archive name.
func (a *Actor) SetObjName(name string) { a.objName = name }

// InitDefaultPos copies the placement transform.
func (a *Actor) InitDefaultPos() {
	a.Translation = a.Placement.Translation
	a.Rotation = a.Placement.Rotation
	a.Scale = a.Placement.Scale
}

// InitModel loads the named model. A missing archive leaves the actor without one.
func (a *Actor) InitModel(env Env, name string) {
	a.Model = env.NewModel(name)
}

// InitEffectKeeper binds the effect group. An empty group uses the object name.
func (a *Actor) InitEffectKeeper(env Env, group string) {
	if group == "" {
		group = a.objName
	}
	a.Effects = env.NewEffects(a, group)
}

// InitRailRider binds the placement's rail. The rail must exist.
func (a *Actor) InitRailRider(env Env) {
	r, ok := env.Rail(a.Placement.RailName)
	if !ok {
		panic(fmt.Sprintf("actor: %s references unknown rail %q", a.Name, a.Placement.RailName))
	}
	a.Rail = rail.NewRider(r)
}

// InitLightCtrl marks the actor as lit by the scene light director.
func (a *Actor) InitLightCtrl() { a.LightCtrl = true }

// ConnectToScene selects the draw bucket.
func (a *Actor) ConnectToScene(b DrawBucket) { a.Bucket = b }

// AddPart takes ownership of a sub-actor.
func (a *Actor) AddPart(h Host) { a.Parts = append(a.Parts, h) }

// MakeActorDead removes the actor and its parts from the frame passes.
func (a *Actor) MakeActorDead() {
	if a.Dead {
		return
	}
	a.Dead = true
	if a.Effects != nil {
		a.Effects.DeleteAll()
	}
	for _, p := range a.Parts {
		p.Base().MakeActorDead()
	}
}

// MakeActorAppeared returns the actor and its parts to the frame passes.
func (a *Actor) MakeActorAppeared() {
	if !a.Dead {
		return
	}
	a.Dead = false
	for _, p := range a.Parts {
		p.Base().MakeActorAppeared()
	}
}

func (a *Actor) ShowModel() { a.Hidden = false }
func (a *Actor) HideModel() { a.Hidden = true }
func (a *Actor) IsHiddenModel() bool { return a.Hidden }

// CalcDefaultMtx sets the base matrix from scale, rotation and translation.
func (a *Actor) CalcDefaultMtx() {
	a.BaseMtx = geom.FromSRT(a.Scale, a.Rotation, a.Translation)
}

// TRMtx returns the rotation and translation of the actor, ignoring scale.
func (a *Actor) TRMtx() geom.Mtx {
	return geom.FromTR(a.Rotation, a.Translation)
}

// Axes returns the actor's rotated unit axes.
func (a *Actor) Axes() (x, y, z r3.Vec) {
	return a.TRMtx().Axes()
}

// UpVec returns the Y column of the current base matrix.
func (a *Actor) UpVec() r3.Vec {
	return a.BaseMtx.Y
}

// SqDistanceTo returns the squared distance from the actor to p.
func (a *Actor) SqDistanceTo(p r3.Vec) float64 {
	return geom.DistanceSq(a.Translation, p)
}

// NerveName returns the current nerve, or "" for actors without a spine.
func (a *Actor) NerveName() string {
	if a.Spine == nil {
		return ""
	}
	return a.Spine.Name()
}

// LogValue implements slog.LogValuer.
func (a *Actor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", a.Name),
		slog.Int("id", a.ID),
		slog.Bool("dead", a.Dead),
		slog.String("nerve", a.NerveName()),
		slog.Float64("x", a.Translation.X),
		slog.Float64("y", a.Translation.Y),
		slog.Float64("z", a.Translation.Z),
	)
}
