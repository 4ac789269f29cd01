package actors

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/nerve"
)

// SimpleMapObj is a static map object with optional colour and texture frames.
type SimpleMapObj struct {
	actor.MapObj
}

func NewSimpleMapObj(env actor.Env, p components.Placement) *SimpleMapObj {
	o := &SimpleMapObj{}
	info := actor.NewMapObjInitInfo()
	info.SetupSimpleMapObj()
	info.SetupColorChangeArg0(&p)
	info.SetupTextureChangeArg1(&p)
	actor.InitMapObj(env, &o.MapObj, p, info)
	return o
}

// SimpleEnvironmentObj is a SimpleMapObj drawn with the environment.
type SimpleEnvironmentObj struct {
	actor.MapObj
}

func NewSimpleEnvironmentObj(env actor.Env, p components.Placement) *SimpleEnvironmentObj {
	o := &SimpleEnvironmentObj{}
	info := actor.NewMapObjInitInfo()
	info.SetupSimpleMapObj()
	info.Bucket = actor.BucketEnvironment
	actor.InitMapObj(env, &o.MapObj, p, info)
	return o
}

type CollapsePlane struct {
	actor.MapObj
}

func NewCollapsePlane(env actor.Env, p components.Placement) *CollapsePlane {
	o := &CollapsePlane{}
	info := actor.NewMapObjInitInfo()
	info.ConnectToScene = true
	actor.InitMapObj(env, &o.MapObj, p, info)
	return o
}

// RotateMoveObj spins about one axis from the first frame when its move
// condition is unconditional.
type RotateMoveObj struct {
	actor.MapObj
}

func NewRotateMoveObj(env actor.Env, p components.Placement) *RotateMoveObj {
	o := &RotateMoveObj{}
	info := actor.NewMapObjInitInfo()
	info.SetupSimpleMapObj()
	info.Rotator = true
	info.SetupColorChangeArg0(&p)
	info.SetupTextureChangeArg1(&p)
	actor.InitMapObj(env, &o.MapObj, p, info)

	if moveCondition(&p) == moveUnconditionally {
		o.StartMapPartsFunctions()
	}
	return o
}

type railMoveObjNerve uint8

const (
	railMoveObjMove railMoveObjNerve = iota
	railMoveObjDone
	railMoveObjWaitForPlayerOn
)

var railMoveObjNerveNames = [...]string{"Move", "Done", "WaitForPlayerOn"}

func (n railMoveObjNerve) String() string { return railMoveObjNerveNames[n] }

// RailMoveObj follows its rail once and stops at the end of an open rail.
type RailMoveObj struct {
	actor.MapObj
	spine      nerve.Spine[railMoveObjNerve]
	wasWorking bool
}

func NewRailMoveObj(env actor.Env, p components.Placement) *RailMoveObj {
	o := &RailMoveObj{}
	info := actor.NewMapObjInitInfo()
	info.ConnectToScene = true
	info.InitEffect = true
	info.RailMover = true
	info.InitNerve = func() {
		o.spine.Init(railMoveObjMove)
		o.Spine = &o.spine
	}
	actor.InitMapObj(env, &o.MapObj, p, info)

	if !p.IsConnectedWithRail() {
		o.spine.Set(railMoveObjDone)
	}
	if moveCondition(&p) == moveWaitForPlayerOn {
		o.spine.Set(railMoveObjWaitForPlayerOn)
	}
	return o
}

func (o *RailMoveObj) Movement(f *actor.Frame) {
	o.MapObj.Movement(f)
	if o.spine.Current() != railMoveObjMove {
		return
	}
	if o.spine.IsFirstStep() {
		o.StartMapPartsFunctions()
	}

	working := o.RailMover.IsWorking()
	if working && !o.wasWorking {
		o.TryStartBck("Move")
	}
	o.wasWorking = working

	if o.RailMover.IsReachedEnd() {
		if !o.RailMover.IsDone() || !o.endMove() {
			o.doAtEndPoint()
		} else {
			o.spine.Set(railMoveObjDone)
		}
	}
}

func (o *RailMoveObj) endMove() bool {
	o.doAtEndPoint()
	return true
}

// doAtEndPoint freezes the move animation on its current frame.
func (o *RailMoveObj) doAtEndPoint() {
	if o.IsBckPlaying("Move") && o.Model != nil {
		o.SetAnimFrameAndStop(actor.Bck, o.Model.FrameMax(actor.Bck))
	}
}

func (o *RailMoveObj) ReceiveMessage(msg actor.Message, _, _ *actor.HitSensor) bool {
	if msg == actor.MsgRailMoverVanish && o.spine.Current() == railMoveObjMove {
		o.MakeActorDead()
		return true
	}
	return false
}

var astroDomeSuffixes = [...]string{"Observatory", "Well", "Kitchen", "BedRoom", "Machine", "Tower"}

// astroModelName resolves the per-dome model of the dome entrances and star
// plates. Other objects use their own name.
func astroModelName(objName string, domeID int) string {
	switch objName {
	case "AstroDomeEntrance", "AstroStarPlate":
		if domeID < 1 || domeID > len(astroDomeSuffixes) {
			panic(fmt.Sprintf("actors: %s needs a dome id in 1..%d, got %d", objName, len(astroDomeSuffixes), domeID))
		}
		return objName + astroDomeSuffixes[domeID-1]
	}
	return objName
}

// AstroMapObj is an observatory map object shown in its revived state.
type AstroMapObj struct {
	actor.MapObj
}

func NewAstroMapObj(env actor.Env, p components.Placement) *AstroMapObj {
	o := &AstroMapObj{}
	info := actor.NewMapObjInitInfo()
	info.ModelName = astroModelName(p.Name, p.ArgInt(0, components.Unset))
	info.ConnectToScene = true
	info.InitEffect = true
	info.EffectGroup = p.Name
	switch p.Name {
	case "AstroRotateStepA", "AstroRotateStepB", "AstroDecoratePartsA":
		info.Rotator = true
	}
	actor.InitMapObj(env, &o.MapObj, p, info)

	o.TryStartAllAnim("Open")
	o.tryStartAllAnimAndEffect("AliveWait")
	if o.Rotator != nil {
		o.StartMapPartsFunctions()
	}
	o.setStateAlive()
	return o
}

func (o *AstroMapObj) tryStartAllAnimAndEffect(name string) {
	o.TryStartAllAnim(name)
	if o.IsObjectName("AstroDomeEntranceKitchen") {
		o.EmitEffect("KitchenSmoke")
	}
	if o.IsRegisteredEffect(name) {
		o.EmitEffect(name)
	}
}

func (o *AstroMapObj) setStateAlive() {
	o.TryStartAllAnim("Revival")
	o.tryStartAllAnimAndEffect("AliveWait")
	o.TryStartAllAnim("Open")
}

func RequestAstroMapObjArchives(env actor.Env, p *components.Placement) {
	env.Archives().RequestObjectData(astroModelName(p.Name, p.ArgInt(0, components.Unset)))
}

type AstroCore struct {
	actor.MapObj
}

func NewAstroCore(env actor.Env, p components.Placement) *AstroCore {
	o := &AstroCore{}
	info := actor.NewMapObjInitInfo()
	info.SetupSimpleMapObj()
	actor.InitMapObj(env, &o.MapObj, p, info)
	o.TryStartAllAnim("Revival4")
	return o
}

// UFOKinokoUnderConstruction always shows the finished landing model.
type UFOKinokoUnderConstruction struct {
	actor.MapObj
}

func NewUFOKinokoUnderConstruction(env actor.Env, p components.Placement) *UFOKinokoUnderConstruction {
	o := &UFOKinokoUnderConstruction{}
	info := actor.NewMapObjInitInfo()
	info.SetupSimpleMapObj()
	info.SetupColorChangeArg0(&p)
	info.SetupTextureChangeArg1(&p)
	info.ModelName = "UFOKinokoLandingAstro"
	actor.InitMapObj(env, &o.MapObj, p, info)
	return o
}

// WaveFloatingForce is a sine bob with a random starting phase.
type WaveFloatingForce struct {
	frequency float64 // frames per period
	amplitude float64
	theta     float64
}

func NewWaveFloatingForce(frequency, amplitude float64) *WaveFloatingForce {
	return &WaveFloatingForce{
		frequency: frequency,
		amplitude: amplitude,
		theta:     geom.RandomFloat(0, geom.Tau),
	}
}

func (w *WaveFloatingForce) Update(deltaFrames float64) {
	w.theta = math.Mod(w.theta+geom.Tau/w.frequency*deltaFrames, geom.Tau)
}

func (w *WaveFloatingForce) Value() float64 {
	return w.amplitude * math.Sin(w.theta)
}

type floaterParams struct {
	frequency, amplitude    float64
	rippleStop, rippleStart float64
}

var floaterTable = map[string]floaterParams{
	"OceanPierFloaterA":   {frequency: 300, amplitude: 30, rippleStop: 140, rippleStart: 120},
	"OceanHexagonFloater": {frequency: 330, amplitude: 50, rippleStop: 150, rippleStart: 100},
}

// OceanWaveFloater bobs on the water surface and ripples while sunk.
type OceanWaveFloater struct {
	actor.MapObj
	wave     *WaveFloatingForce
	params   floaterParams
	rippling bool
}

func NewOceanWaveFloater(env actor.Env, p components.Placement) *OceanWaveFloater {
	params, ok := floaterTable[p.Name]
	if !ok {
		panic("actors: unknown ocean floater " + p.Name)
	}
	o := &OceanWaveFloater{params: params}
	info := actor.NewMapObjInitInfo()
	info.ConnectToScene = true
	info.InitEffect = true
	actor.InitMapObj(env, &o.MapObj, p, info)

	o.wave = NewWaveFloatingForce(params.frequency, params.amplitude)
	if o.Effects != nil {
		o.Effects.SetHostSRT("Ripple", &o.Translation, nil, nil)
	}
	_, up, _ := o.Axes()
	o.Gravity = geom.Negate(up)
	return o
}

// sinkDepth is the signed distance of the drawn position below the placed one.
func (o *OceanWaveFloater) sinkDepth() float64 {
	d := r3.Sub(o.Translation, o.BaseMtx.T)
	s := r3.Dot(d, o.Gravity)
	if s == 0 {
		return 0
	}
	return r3.Norm(d) * math.Copysign(1, s)
}

func (o *OceanWaveFloater) Movement(f *actor.Frame) {
	o.MapObj.Movement(f)
	o.wave.Update(f.DeltaFrames)

	depth := o.sinkDepth()
	if depth <= o.params.rippleStop || !o.rippling {
		if depth < o.params.rippleStart && !o.rippling {
			o.EmitEffect("Ripple")
			o.rippling = true
		}
	} else {
		o.DeleteEffect("Ripple")
		o.rippling = false
	}
}

// CalcAndSetBaseMtx displaces the drawn model along gravity. The logical
// translation never moves.
func (o *OceanWaveFloater) CalcAndSetBaseMtx(f *actor.Frame) {
	o.MapObj.CalcAndSetBaseMtx(f)
	o.BaseMtx = o.BaseMtx.Translate(r3.Scale(o.wave.Value(), o.Gravity))
}

// IsRippling reports whether the ripple emitter is on.
func (o *OceanWaveFloater) IsRippling() bool { return o.rippling }

type WoodBox struct {
	actor.Actor
}

func NewWoodBox(env actor.Env, p components.Placement) *WoodBox {
	b := &WoodBox{Actor: actor.NewActor(p)}
	b.InitDefaultPos()
	useModel(env, &b.Actor, "WoodBox")
	b.ConnectToScene(actor.BucketMapObjStrongLight)
	b.InitLightCtrl()
	b.InitEffectKeeper(env, "")
	return b
}

func (b *WoodBox) Movement(*actor.Frame) {}

type SurprisedGalaxy struct {
	actor.Actor
}

func NewSurprisedGalaxy(env actor.Env, p components.Placement) *SurprisedGalaxy {
	g := &SurprisedGalaxy{Actor: actor.NewActor(p)}
	g.InitDefaultPos()
	useModel(env, &g.Actor, "MiniSurprisedGalaxy")
	g.ConnectToScene(actor.BucketMapObj)
	g.StartAction("MiniSurprisedGalaxy")
	return g
}

func (g *SurprisedGalaxy) Movement(*actor.Frame) {}

// CrystalCage comes in three sizes; only the large one has effects.
type CrystalCage struct {
	actor.Actor
	Size byte
}

func NewCrystalCage(env actor.Env, p components.Placement) *CrystalCage {
	c := &CrystalCage{Actor: actor.NewActor(p)}
	switch p.Name {
	case "CrystalCageS":
		c.Size = 'S'
	case "CrystalCageM":
		c.Size = 'M'
	case "CrystalCageL":
		c.Size = 'L'
	default:
		panic("actors: unknown crystal cage " + p.Name)
	}
	c.InitDefaultPos()
	c.InitModel(env, c.ObjName())
	c.ConnectToScene(actor.BucketCrystal)
	if c.Size == 'L' {
		c.InitEffectKeeper(env, "")
	}
	return c
}

func (c *CrystalCage) Movement(*actor.Frame) {}

var spinDriverColors = map[string]int{
	"SuperSpinDriverYellow": 0,
	"SuperSpinDriverGreen":  1,
	"SuperSpinDriverPink":   2,
}

// SuperSpinDriver is the launch star, coloured by its object name.
type SuperSpinDriver struct {
	actor.Actor
	Color int
}

func NewSuperSpinDriver(env actor.Env, p components.Placement) *SuperSpinDriver {
	color, ok := spinDriverColors[p.Name]
	if !ok {
		panic("actors: unknown spin driver " + p.Name)
	}
	d := &SuperSpinDriver{Actor: actor.NewActor(p), Color: color}
	d.InitDefaultPos()
	useModel(env, &d.Actor, "SuperSpinDriver")
	d.ConnectToScene(actor.BucketNoSilhouettedMapObj)

	d.StartAndStopAt(actor.Btp, "SuperSpinDriver", float64(color))
	switch color {
	case 0:
		d.StartBrk("Yellow")
	case 1:
		d.StartBrk("Green")
	default:
		d.StartBrk("Pink")
	}
	d.StartBck("Wait")
	return d
}

func (d *SuperSpinDriver) Movement(*actor.Frame) {}

type treasureBoxType uint8

const (
	treasureBoxNormal treasureBoxType = iota
	treasureBoxCracked
	treasureBoxGold
)

func treasureBoxTypeOf(name string) treasureBoxType {
	switch {
	case strings.Contains(name, "TreasureBoxCracked"):
		return treasureBoxCracked
	case strings.Contains(name, "TreasureBoxGold"):
		return treasureBoxGold
	}
	return treasureBoxNormal
}

var treasureBoxModels = [...]string{"TreasureBox", "TreasureBoxCracked", "TreasureBoxGold"}

type treasureBoxNerve uint8

const (
	treasureBoxWait treasureBoxNerve = iota
	treasureBoxAlwaysOpen
)

func (n treasureBoxNerve) String() string {
	if n == treasureBoxAlwaysOpen {
		return "AlwaysOpen"
	}
	return "Wait"
}

// TreasureBox is a closed chest that glints while it waits.
type TreasureBox struct {
	actor.Actor
	spine nerve.Spine[treasureBoxNerve]
	kind  treasureBoxType
}

func NewTreasureBox(env actor.Env, p components.Placement) *TreasureBox {
	b := &TreasureBox{Actor: actor.NewActor(p), kind: treasureBoxTypeOf(p.Name)}
	b.InitDefaultPos()
	useModel(env, &b.Actor, treasureBoxModels[b.kind])
	b.ConnectToScene(actor.BucketMapObjStrongLight)
	b.InitEffectKeeper(env, "")

	if p.ArgInt(2, 0) == 2 {
		b.spine.Init(treasureBoxAlwaysOpen)
	} else {
		b.spine.Init(treasureBoxWait)
	}
	b.Spine = &b.spine
	return b
}

func (b *TreasureBox) Movement(*actor.Frame) {
	if b.spine.Current() != treasureBoxWait || !b.spine.IsFirstStep() {
		return
	}
	switch b.kind {
	case treasureBoxCracked:
		b.StartBrk("Wait")
		b.EmitEffect("Light")
	case treasureBoxGold:
		b.EmitEffect("Gold")
	}
}

func RequestTreasureBoxArchives(env actor.Env, p *components.Placement) {
	env.Archives().RequestObjectData(treasureBoxModels[treasureBoxTypeOf(p.Name)])
}
