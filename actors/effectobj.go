package actors

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/nerve"
)

// EarthenPipe is a warp pipe. The placement's Y scale is its length: the
// model keeps unit height and is pushed out along up instead.
type EarthenPipe struct {
	actor.Actor
	Stream *actor.PartsModel

	origin r3.Vec
	up     r3.Vec
	scaleY float64
}

func NewEarthenPipe(env actor.Env, p components.Placement) *EarthenPipe {
	e := &EarthenPipe{Actor: actor.NewActor(p)}
	e.InitDefaultPos()
	useModel(env, &e.Actor, "EarthenPipe")
	e.StartAndStopAt(actor.Brk, "EarthenPipe", p.ArgOr(7, 0))
	e.ConnectToScene(actor.BucketMapObjStrongLight)
	e.InitEffectKeeper(env, "")
	if p.ArgBool(2) {
		e.HideModel()
	}

	e.origin = e.Translation
	_, e.up, _ = e.Axes()
	e.scaleY = 100 * e.Scale.Y
	e.Scale.Y = 1
	e.Translation = r3.Add(e.origin, r3.Scale(e.scaleY, e.up))

	if e.Name == "EarthenPipeInWater" {
		e.Stream = actor.CreatePartsModelMapObj(env, &e.Actor, "EarthenPipeStream", r3.Vec{})
		e.Stream.TryStartAllAnim("EarthenPipeStream")
	}
	return e
}

func (e *EarthenPipe) Movement(*actor.Frame) {}

func RequestEarthenPipeArchives(env actor.Env, p *components.Placement) {
	env.Archives().RequestObjectData("EarthenPipe")
	if p.Name == "EarthenPipeInWater" {
		env.Archives().RequestObjectData("EarthenPipeStream")
	}
}

// BlackHole is the range sphere with the hole model riding its matrix. The
// suction effect always faces the camera.
type BlackHole struct {
	actor.Actor
	Hole *actor.ModelObj

	suction geom.Mtx
}

func NewBlackHole(env actor.Env, p components.Placement) *BlackHole {
	b := &BlackHole{Actor: actor.NewActor(p), suction: geom.Identity()}
	b.InitDefaultPos()
	useModel(env, &b.Actor, "BlackHoleRange")
	b.ConnectToScene(actor.BucketMapObj)
	b.Hole = actor.NewModelObj(env, "BlackHole", "BlackHole", &b.BaseMtx, actor.BucketMapObj)
	b.AddPart(b.Hole)
	b.InitEffectKeeper(env, "BlackHoleRange")
	if b.Effects != nil {
		b.Effects.SetHostMtx("BlackHoleSuction", &b.suction)
	}

	b.StartBck("BlackHoleRange")
	b.StartBtk("BlackHoleRange")
	b.Hole.StartBtk("BlackHole")

	var s float64
	switch v, ok := p.Arg(0); {
	case ok:
		s = v / 1000
	case b.Name == "BlackHoleCube":
		s = 1
	default:
		s = b.Scale.X
	}
	b.Scale = r3.Vec{X: s, Y: s, Z: s}
	h := 0.5 * s
	b.Hole.Scale = r3.Vec{X: h, Y: h, Z: h}
	return b
}

func (b *BlackHole) Movement(*actor.Frame) {}

func (b *BlackHole) CalcAndSetBaseMtx(f *actor.Frame) {
	b.CalcDefaultMtx()
	if b.Effects == nil || f.Camera == nil {
		return
	}
	front := r3.Sub(f.Camera.Position(), b.Translation)
	b.suction = geom.MakeFrontUpPos(front, f.Camera.Up(), b.Translation).ScaleScalar(b.Scale.X)
}

// SuctionMtx is the matrix the suction effect is drawn with.
func (b *BlackHole) SuctionMtx() geom.Mtx { return b.suction }

var requestBlackHole = requestNamed("BlackHole", "BlackHoleRange")

type effectClipping struct {
	radius float64
	offset r3.Vec
	sync   bool
}

var effectObjClipping = map[string]effectClipping{
	"EffectObjR500F50":              {radius: 500},
	"EffectObjR1000F50":             {radius: 1000},
	"EffectObjR100F50SyncClipping":  {radius: 1000, sync: true},
	"EffectObj10x10x10SyncClipping": {radius: 1000, offset: r3.Vec{Y: 580}, sync: true},
	"EffectObj20x20x10SyncClipping": {radius: 1000, offset: r3.Vec{Y: 200}, sync: true},
	"EffectObj50x50x10SyncClipping": {radius: 2500, offset: r3.Vec{Y: 200}, sync: true},
	"AstroEffectObj":                {radius: 500},
	"RandomEffectObj":               {radius: 400},
}

// SimpleEffectObj is a model-less emitter that stops drawing its particles
// while its clipping sphere is off camera. Sync-clipped kinds also delete
// and re-emit their effects.
type SimpleEffectObj struct {
	actor.Actor
	Visible bool

	clip effectClipping
}

func NewSimpleEffectObj(env actor.Env, p components.Placement) *SimpleEffectObj {
	s := &SimpleEffectObj{}
	s.init(env, p)
	return s
}

func (s *SimpleEffectObj) init(env actor.Env, p components.Placement) {
	clip, ok := effectObjClipping[p.Name]
	if !ok {
		panic(fmt.Sprintf("actors: no clipping for effect object %q", p.Name))
	}
	s.Actor = actor.NewActor(p)
	s.Visible = true
	s.clip = clip
	s.InitDefaultPos()
	s.InitEffectKeeper(env, s.Name)
	s.EmitEffect(s.Name)
	s.ConnectToScene(actor.BucketNone)
}

func (s *SimpleEffectObj) Movement(f *actor.Frame) {
	visible := true
	if f.Camera != nil {
		visible = f.Camera.ContainsSphere(r3.Add(s.Translation, s.clip.offset), s.clip.radius)
	}
	if visible == s.Visible {
		return
	}
	s.Visible = visible
	if s.Effects != nil {
		s.Effects.SetDrawParticle(visible)
	}
	if s.clip.sync {
		if visible {
			s.EmitEffect(s.Name)
		} else {
			s.DeleteEffectAll()
		}
	}
}

type randomEffectNerve uint8

const randomEffectWait randomEffectNerve = 0

func (randomEffectNerve) String() string { return "Wait" }

// RandomEffectObj re-emits its effect after base ± range frames, drawn anew
// each time.
type RandomEffectObj struct {
	SimpleEffectObj
	spine     nerve.Spine[randomEffectNerve]
	counter   float64
	randBase  float64
	randRange float64
}

func NewRandomEffectObj(env actor.Env, p components.Placement) *RandomEffectObj {
	r := &RandomEffectObj{counter: -1}
	r.init(env, p)
	r.randBase = p.ArgOr(0, 600)
	r.randRange = p.ArgOr(1, 180)
	r.spine.Init(randomEffectWait)
	r.Spine = &r.spine
	return r
}

func (r *RandomEffectObj) Movement(f *actor.Frame) {
	r.SimpleEffectObj.Movement(f)
	if r.counter < 0 {
		r.counter = r.randBase + geom.RandomFloat(-r.randRange, r.randRange)
	}
	if r.spine.IsGreaterEqualStep(r.counter) {
		r.EmitEffect(r.Name)
		r.counter = -1
		r.spine.Set(randomEffectWait)
	}
}

// EffectEmitter is a model-less object that emits one effect forever.
// Fountain and PhantomTorch emit their own name, SubmarineSteam emits Steam.
type EffectEmitter struct {
	actor.Actor
	Emitter string
}

func NewEffectEmitter(env actor.Env, p components.Placement) *EffectEmitter {
	e := &EffectEmitter{Actor: actor.NewActor(p), Emitter: p.ObjName()}
	if p.Name == "SubmarineSteam" {
		e.Emitter = "Steam"
	}
	e.InitDefaultPos()
	e.ConnectToScene(actor.BucketNone)
	e.InitEffectKeeper(env, "")
	e.EmitEffect(e.Emitter)
	return e
}

func (e *EffectEmitter) Movement(*actor.Frame) {}

type GCaptureTarget struct {
	actor.Actor
}

func NewGCaptureTarget(env actor.Env, p components.Placement) *GCaptureTarget {
	g := &GCaptureTarget{Actor: actor.NewActor(p)}
	g.InitDefaultPos()
	useModel(env, &g.Actor, "GCaptureTarget")
	g.ConnectToScene(actor.BucketNoSilhouettedMapObj)
	g.InitEffectKeeper(env, "")
	g.StartBck("Wait")
	g.StartAndStopAt(actor.Brk, "Switch", 1)
	g.EmitEffect("TargetLight")
	g.EmitEffect("TouchAble")
	return g
}

func (g *GCaptureTarget) Movement(*actor.Frame) {}

type AstroCountDownPlate struct {
	actor.Actor
}

func NewAstroCountDownPlate(env actor.Env, p components.Placement) *AstroCountDownPlate {
	a := &AstroCountDownPlate{Actor: actor.NewActor(p)}
	a.InitDefaultPos()
	useModel(env, &a.Actor, "AstroCountDownPlate")
	a.ConnectToScene(actor.BucketMapObj)
	a.InitEffectKeeper(env, "")
	a.EmitEffect("Light")
	a.StartBrk("Green")
	return a
}

func (a *AstroCountDownPlate) Movement(*actor.Frame) {}

type fountainBigNerve uint8

const (
	fountainBigWaitPhase fountainBigNerve = iota
	fountainBigWait
	fountainBigSign
	fountainBigSignStop
	fountainBigSpout
	fountainBigSpoutEnd
)

var fountainBigNerveNames = [...]string{"WaitPhase", "Wait", "Sign", "SignStop", "Spout", "SpoutEnd"}

func (n fountainBigNerve) String() string { return fountainBigNerveNames[n] }

// FountainBig is a geyser: warning sign, spout, collapse, repeat. Each one
// starts at a random phase so neighbours do not fire together.
type FountainBig struct {
	actor.Actor
	spine nerve.Spine[fountainBigNerve]
	phase float64
}

func NewFountainBig(env actor.Env, p components.Placement) *FountainBig {
	b := &FountainBig{Actor: actor.NewActor(p)}
	b.InitDefaultPos()
	useModel(env, &b.Actor, "FountainBig")
	b.ConnectToScene(actor.BucketMapObj)
	b.InitEffectKeeper(env, "")
	b.HideModel()
	b.StartBtk("FountainBig")
	b.phase = float64(geom.RandomInt(0, 300))
	b.spine.Init(fountainBigWaitPhase)
	b.Spine = &b.spine
	return b
}

func (b *FountainBig) Movement(*actor.Frame) {
	switch b.spine.Current() {
	case fountainBigWaitPhase:
		if b.spine.IsGreaterStep(b.phase) {
			b.spine.Set(fountainBigWait)
		}
	case fountainBigWait:
		if b.spine.IsGreaterStep(120) {
			b.spine.Set(fountainBigSign)
		}
	case fountainBigSign:
		if b.spine.IsFirstStep() {
			b.EmitEffect("FountainBigSign")
		}
		if b.spine.IsGreaterStep(80) {
			b.spine.Set(fountainBigSignStop)
		}
	case fountainBigSignStop:
		if b.spine.IsFirstStep() {
			b.DeleteEffect("FountainBigSign")
		}
		if b.spine.IsGreaterStep(30) {
			b.spine.Set(fountainBigSpout)
		}
	case fountainBigSpout:
		if b.spine.IsFirstStep() {
			b.ShowModel()
			b.EmitEffect("FountainBig")
		}
		if t := b.spine.Rate(20); t <= 1 {
			b.Scale.Y = geom.Clamp(t, 0.01, 1)
		}
		if b.spine.IsGreaterStep(180) {
			b.DeleteEffect("FountainBig")
			b.spine.Set(fountainBigSpoutEnd)
		}
	case fountainBigSpoutEnd:
		b.Scale.Y = geom.Clamp(1-b.spine.Rate(10), 0.01, 1)
		if b.spine.IsGreaterStep(10) {
			b.HideModel()
			b.spine.Set(fountainBigWait)
		}
	}
}

type shootingStarNerve uint8

const (
	shootingStarPreShooting shootingStarNerve = iota
	shootingStarShooting
	shootingStarWaitForNextShoot
)

func (n shootingStarNerve) String() string {
	switch n {
	case shootingStarPreShooting:
		return "PreShooting"
	case shootingStarShooting:
		return "Shooting"
	case shootingStarWaitForNextShoot:
		return "WaitForNextShoot"
	}
	return "unknown"
}

const (
	shootingStarSpinDegrees = 10
	shootingStarSpeed       = 25
)

// ShootingStar appears distance units up from its placement, grows in,
// falls for 360 frames, bursts and waits delay frames to go again.
type ShootingStar struct {
	actor.Actor
	NumStarBits int

	spine   nerve.Spine[shootingStarNerve]
	delay   float64
	dist    float64
	initial r3.Vec
	axisY   r3.Vec
}

func NewShootingStar(env actor.Env, p components.Placement) *ShootingStar {
	s := &ShootingStar{Actor: actor.NewActor(p)}
	s.InitModel(env, s.ObjName())
	s.ConnectToScene(actor.BucketMapObj)
	s.InitDefaultPos()
	s.initial = s.Translation

	s.NumStarBits = p.ArgInt(0, 5)
	s.delay = p.ArgOr(1, 240)
	s.dist = p.ArgOr(2, 2000)

	s.spine.Init(shootingStarPreShooting)
	s.Spine = &s.spine
	s.InitEffectKeeper(env, "ShootingStar")

	s.CalcDefaultMtx()
	s.axisY = s.UpVec()
	s.StartBpk("ShootingStar")
	return s
}

func (s *ShootingStar) Movement(f *actor.Frame) {
	s.Rotation.Y = geom.Wrap(s.Rotation.Y+shootingStarSpinDegrees*geom.DegToRad*f.DeltaFrames, geom.Tau)

	switch s.spine.Current() {
	case shootingStarPreShooting:
		if s.spine.IsFirstStep() {
			s.Translation = r3.Add(s.initial, r3.Scale(s.dist, s.axisY))
			s.ShowModel()
			s.EmitEffect("ShootingStarAppear")
		}
		v := geom.Clamp01(s.spine.Rate(20))
		s.Scale = r3.Vec{X: v, Y: v, Z: v}
		if s.spine.IsGreaterStep(20) {
			s.spine.Set(shootingStarShooting)
		}
	case shootingStarShooting:
		if s.spine.IsFirstStep() {
			s.Velocity = r3.Scale(-shootingStarSpeed, s.axisY)
			s.EmitEffect("ShootingStarBlur")
		}
		if s.spine.IsGreaterStep(360) {
			s.spine.Set(shootingStarWaitForNextShoot)
			s.DeleteEffect("ShootingStarBlur")
		}
	case shootingStarWaitForNextShoot:
		if s.spine.IsFirstStep() {
			s.HideModel()
			s.EmitEffect("ShootingStarBreak")
			s.Velocity = r3.Vec{}
		}
		if s.spine.IsGreaterStep(s.delay) {
			s.spine.Set(shootingStarPreShooting)
		}
	}
}

type lavaSteamNerve uint8

const (
	lavaSteamWait lavaSteamNerve = iota
	lavaSteamSteam
)

func (n lavaSteamNerve) String() string {
	if n == lavaSteamSteam {
		return "Steam"
	}
	return "Wait"
}

// LavaSteam shows a shrinking warning sign and then vents steam.
type LavaSteam struct {
	actor.Actor
	EffectScale r3.Vec

	spine nerve.Spine[lavaSteamNerve]
}

func NewLavaSteam(env actor.Env, p components.Placement) *LavaSteam {
	l := &LavaSteam{Actor: actor.NewActor(p)}
	l.InitDefaultPos()
	useModel(env, &l.Actor, "LavaSteam")
	l.InitEffectKeeper(env, "")
	if l.Effects != nil {
		l.Effects.SetHostSRT("Sign", &l.Translation, &l.Rotation, &l.EffectScale)
	}
	l.spine.Init(lavaSteamWait)
	l.Spine = &l.spine
	l.ConnectToScene(actor.BucketNoSilhouettedMapObj)
	return l
}

// signScale eases the sign out over the last frames before it is removed.
// The ease input runs negative past 0x5a, hence the clamp.
func signScale(step float64) float64 {
	return geom.Clamp(geom.EaseIn((0x5a-step)*0.125, 0.001, 1, 1), 0.001, 1)
}

func (l *LavaSteam) Movement(*actor.Frame) {
	switch l.spine.Current() {
	case lavaSteamWait:
		if l.spine.IsFirstStep() {
			l.EmitEffect("Sign")
			l.EffectScale = r3.Vec{X: 1, Y: 1, Z: 1}
		}
		if l.spine.IsGreaterStep(0x52) {
			s := signScale(l.spine.Step())
			l.EffectScale = r3.Vec{X: s, Y: s, Z: s}
		}
		if l.spine.IsGreaterStep(0x5a) {
			l.ForceDeleteEffect("Sign")
		}
		if l.spine.IsGreaterStep(0x78) {
			l.spine.Set(lavaSteamSteam)
		}
	case lavaSteamSteam:
		if l.spine.IsFirstStep() {
			l.EmitEffect("Steam")
		}
		if l.spine.IsGreaterStep(0x5a) {
			l.DeleteEffect("Steam")
			l.spine.Set(lavaSteamWait)
		}
	}
}

type airNerve uint8

const (
	airIn airNerve = iota
	airOut
)

func (n airNerve) String() string {
	if n == airOut {
		return "Out"
	}
	return "In"
}

// Air is the atmosphere shell. It fades out once the camera is far enough
// away and back in when it returns; the gap between the two radii keeps it
// from flickering. PriorDrawAir is the same object.
type Air struct {
	actor.Actor
	spine     nerve.Spine[airNerve]
	inDistSq  float64
	outDistSq float64
}

func NewAir(env actor.Env, p components.Placement) *Air {
	a := &Air{Actor: actor.NewActor(p)}
	a.InitDefaultPos()
	a.InitModel(env, a.ObjName())
	a.ConnectToScene(actor.BucketAir)

	t := p.ArgOr(0, -1)
	if t < 0 {
		t = 70
	}
	a.inDistSq = math.Pow(100*t, 2)
	a.outDistSq = math.Pow(100*(20+t), 2)

	a.TryStartAllAnim(a.ObjName())
	a.spine.Init(airIn)
	a.Spine = &a.spine
	return a
}

func (a *Air) Movement(f *actor.Frame) {
	if f.Camera == nil {
		return
	}
	d := a.SqDistanceTo(f.Camera.Position())
	switch a.spine.Current() {
	case airOut:
		if d < a.inDistSq && a.TryStartAllAnim("Appear") {
			a.spine.Set(airIn)
		}
	case airIn:
		if d > a.outDistSq && a.TryStartAllAnim("Disappear") {
			a.spine.Set(airOut)
		}
	}
}

// Sky is a skybox centred on the camera.
type Sky struct {
	actor.Actor
}

func NewSky(env actor.Env, p components.Placement) *Sky {
	s := &Sky{Actor: actor.NewActor(p)}
	s.InitDefaultPos()
	s.InitModel(env, s.ObjName())
	s.ConnectToScene(actor.BucketSky)
	s.TryStartAllAnim(s.Name)
	return s
}

func (s *Sky) Movement(f *actor.Frame) {
	if f.Camera != nil {
		s.Translation = f.Camera.Position()
	}
}

type palmIslandNerve uint8

const (
	palmIslandWait palmIslandNerve = iota
	palmIslandFloat
)

func (n palmIslandNerve) String() string {
	if n == palmIslandFloat {
		return "Float"
	}
	return "Wait"
}

// PalmIsland bobs on the water after a random delay, leaving its ripple
// where it started.
type PalmIsland struct {
	actor.Actor
	spine  nerve.Spine[palmIslandNerve]
	delay  float64
	ripple r3.Vec
}

func NewPalmIsland(env actor.Env, p components.Placement) *PalmIsland {
	pi := &PalmIsland{Actor: actor.NewActor(p)}
	pi.InitDefaultPos()
	useModel(env, &pi.Actor, "PalmIsland")
	pi.ConnectToScene(actor.BucketMapObj)
	pi.InitEffectKeeper(env, "")
	pi.delay = float64(geom.RandomInt(0, 60))
	pi.spine.Init(palmIslandWait)
	pi.Spine = &pi.spine

	_, up, _ := pi.Axes()
	pi.Gravity = geom.Negate(up)
	return pi
}

func (pi *PalmIsland) Movement(*actor.Frame) {
	switch pi.spine.Current() {
	case palmIslandWait:
		if pi.spine.IsGreaterStep(pi.delay) {
			pi.spine.Set(palmIslandFloat)
		}
	case palmIslandFloat:
		if pi.spine.IsFirstStep() {
			pi.ripple = pi.Translation
			pi.EmitEffect("Ripple")
			if pi.Effects != nil {
				pi.Effects.SetHostSRT("Ripple", &pi.ripple, nil, nil)
			}
		}
		theta := geom.DegToRad * (90 + 1.44*pi.spine.Step())
		pi.Velocity = r3.Scale(math.Sin(theta)*1.44, pi.Gravity)
	}
}
