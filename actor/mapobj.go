package actor

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
)

// MapObjInitInfo configures InitMapObj.
type MapObjInitInfo struct {
	SetDefaultPos    bool
	ConnectToScene   bool
	Light            LightType
	Bucket           DrawBucket // overrides the bucket chosen from Light
	InitLightControl bool
	ModelName        string // overrides the placement object name
	InitEffect       bool
	EffectGroup      string
	ColorChangeFrame float64 // -1 = none
	TexChangeFrame   float64 // -1 = none
	Rotator          bool
	RailMover        bool
	InitNerve        func()
}

// NewMapObjInitInfo returns the defaults: default position, nothing else.
func NewMapObjInitInfo() MapObjInitInfo {
	return MapObjInitInfo{
		SetDefaultPos:    true,
		ColorChangeFrame: components.Unset,
		TexChangeFrame:   components.Unset,
	}
}

// SetupSimpleMapObj enables position, scene connection and effects.
func (i *MapObjInitInfo) SetupSimpleMapObj() {
	i.SetDefaultPos = true
	i.ConnectToScene = true
	i.InitEffect = true
	i.EffectGroup = ""
}

// SetupPlanet is the planet variant of SetupSimpleMapObj.
func (i *MapObjInitInfo) SetupPlanet() {
	i.SetupSimpleMapObj()
	i.Bucket = BucketPlanet
}

func (i *MapObjInitInfo) SetupColorChangeArg0(p *components.Placement) {
	i.ColorChangeFrame = p.ArgOr(0, components.Unset)
}

func (i *MapObjInitInfo) SetupTextureChangeArg1(p *components.Placement) {
	i.TexChangeFrame = p.ArgOr(1, components.Unset)
}

// MapObj is a placed map object with optional rotating and rail-following
// sub-behaviours.
type MapObj struct {
	Actor
	Rotator   *Rotator
	RailMover *RailMover
	Bloom     *ModelObj
}

// InitMapObj runs the shared construction sequence. The order matters: the
// rail mover needs the rail rider, and the bloom companion follows the
// finished base matrix.
func InitMapObj(env Env, m *MapObj, p components.Placement, info MapObjInitInfo) {
	m.Actor = NewActor(p)
	if info.ModelName != "" {
		m.SetObjName(info.ModelName)
	}
	a := &m.Actor

	if info.SetDefaultPos {
		a.InitDefaultPos()
	}
	a.InitModel(env, a.ObjName())
	if info.ConnectToScene {
		a.ConnectToScene(info.bucket())
	}
	if info.InitLightControl {
		a.InitLightCtrl()
	}
	if info.InitEffect {
		a.InitEffectKeeper(env, info.EffectGroup)
	}
	if info.InitNerve != nil {
		info.InitNerve()
	}

	railed := p.IsConnectedWithRail()
	if railed {
		a.InitRailRider(env)
	}
	if railed && info.RailMover {
		m.RailMover = NewRailMover(a)
	}
	if info.Rotator {
		m.Rotator = NewRotator(a)
	}

	a.TryStartAllAnim(a.ObjName())
	if info.ColorChangeFrame != components.Unset {
		a.StartAndStopAt(Brk, "ColorChange", info.ColorChangeFrame)
	}
	if info.TexChangeFrame != components.Unset {
		if a.IsBtpExist("TexChange") {
			a.StartAndStopAt(Btp, "TexChange", info.TexChangeFrame)
		}
		if a.IsBtkExist("TexChange") {
			a.StartAndStopAt(Btk, "TexChange", info.TexChangeFrame)
		}
	}

	m.Bloom = CreateBloomModel(env, a, a.ObjName())
}

func (i *MapObjInitInfo) bucket() DrawBucket {
	if i.Bucket != BucketNone {
		return i.Bucket
	}
	switch i.Light {
	case LightStrong:
		return BucketMapObjStrongLight
	case LightWeak:
		return BucketMapObjWeakLight
	}
	return BucketMapObj
}

// IsObjectName reports whether the model archive is name.
func (m *MapObj) IsObjectName(name string) bool { return m.ObjName() == name }

// StartMapPartsFunctions starts the rotator and the rail mover.
func (m *MapObj) StartMapPartsFunctions() {
	if m.Rotator != nil {
		m.Rotator.Start()
	}
	if m.RailMover != nil {
		m.RailMover.Start()
	}
}

// Movement advances the map parts. Types embedding MapObj call it first.
func (m *MapObj) Movement(f *Frame) {
	if m.Rotator != nil {
		m.Rotator.Update(f.DeltaFrames)
	}
	if m.RailMover != nil {
		m.RailMover.Update(f.DeltaFrames)
	}
}

// CalcAndSetBaseMtx composes the map parts while either is working.
func (m *MapObj) CalcAndSetBaseMtx(*Frame) {
	rot := m.Rotator != nil && m.Rotator.IsWorking()
	mov := m.RailMover != nil && m.RailMover.IsWorking()
	if !rot && !mov {
		m.CalcDefaultMtx()
		return
	}
	mtx := geom.Identity()
	if rot {
		mtx = geom.Mul(mtx, m.Rotator.Mtx)
	}
	if mov {
		mtx = geom.Mul(mtx, m.RailMover.Mtx)
	}
	mtx.T = m.Translation
	m.BaseMtx = mtx
}

// Rotator spins a map object about one of its local axes.
type Rotator struct {
	Mtx geom.Mtx

	axis    r3.Vec
	speed   float64 // degrees per frame
	angle   float64 // degrees
	initRot r3.Vec
	working bool
}

// NewRotator reads the axis from arg3 (0 X, 1 Y, 2 Z) and the speed from
// arg1 in hundredths of a degree per frame.
func NewRotator(a *Actor) *Rotator {
	r := &Rotator{axis: geom.AxisY, speed: 1, initRot: a.Rotation}
	switch a.Placement.ArgInt(3, 1) {
	case 0:
		r.axis = geom.AxisX
	case 2:
		r.axis = geom.AxisZ
	}
	if v, ok := a.Placement.Arg(1); ok {
		r.speed = v * 0.01
	}
	r.Mtx = geom.FromTR(r.initRot, r3.Vec{})
	return r
}

func (r *Rotator) Start() { r.working = true }
func (r *Rotator) IsWorking() bool { return r.working }

// Angle returns the accumulated rotation in degrees.
func (r *Rotator) Angle() float64 { return r.angle }

func (r *Rotator) Update(deltaFrames float64) {
	if !r.working {
		return
	}
	r.angle = geom.Wrap(r.angle+r.speed*deltaFrames, 360)
	r.Mtx = geom.Mul(geom.FromTR(r.initRot, r3.Vec{}), geom.Rotation(r.axis, r.angle*geom.DegToRad))
}

// RailMover carries a map object along its rail.
type RailMover struct {
	Mtx geom.Mtx

	host        *Actor
	speed       float64
	vanishAtEnd bool
	working     bool
	reachedEnd  bool
}

// NewRailMover reads the speed from arg1 (default 10) and whether the host
// vanishes at the end of an open rail from arg2.
func NewRailMover(a *Actor) *RailMover {
	m := &RailMover{
		host:        a,
		speed:       a.Placement.ArgOr(1, 10),
		vanishAtEnd: a.Placement.ArgInt(2, 0) == 1,
		Mtx:         geom.Identity(),
	}
	a.MoveCoordAndTransToNearestRailPos()
	m.Mtx.T = a.Translation
	return m
}

func (m *RailMover) Start() { m.working = true }
func (m *RailMover) IsWorking() bool { return m.working }

// IsReachedEnd reports whether the rider ran into the end of its rail.
func (m *RailMover) IsReachedEnd() bool { return m.reachedEnd }

// IsDone reports whether the mover has nothing left to do: an open rail run
// to its end.
func (m *RailMover) IsDone() bool { return m.reachedEnd && !m.host.Rail.IsLoop() }

func (m *RailMover) Update(deltaFrames float64) {
	if !m.working || m.IsDone() {
		return
	}
	m.host.MoveCoordAndFollowTrans(m.speed * deltaFrames)
	m.Mtx.T = m.host.Translation
	m.reachedEnd = m.host.Rail.IsReachedGoal()
	if m.IsDone() && m.vanishAtEnd {
		SendMsgToHost(MsgRailMoverVanish, m.host.Self())
	}
}
