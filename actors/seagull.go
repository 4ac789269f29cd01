package actors

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/nerve"
)

// seaGullPointSpacing is the rail distance between chase points.
const seaGullPointSpacing = 500

// SeaGullGroup samples its rail into chase points the flock circles between.
type SeaGullGroup struct {
	actor.Actor
	Points   []r3.Vec
	SeaGulls []*SeaGull
}

func NewSeaGullGroup(env actor.Env, p components.Placement) *SeaGullGroup {
	g := &SeaGullGroup{Actor: actor.NewActor(p)}
	count := p.ArgInt(0, 10)

	g.InitRailRider(env)
	g.Translation = g.Rail.CurrentPos
	total := g.Rail.TotalLength()
	n := int(total/seaGullPointSpacing) + 1
	dist := total / float64(n)
	g.Points = make([]r3.Vec, n)
	for i := range g.Points {
		g.Points[i] = g.Rail.PosAtCoord(dist * float64(i))
	}

	g.SeaGulls = make([]*SeaGull, 0, max(count, 0))
	for i := 0; i < count; i++ {
		s := newSeaGull(env, g, p)
		g.SeaGulls = append(g.SeaGulls, s)
		g.AddPart(s)
	}
	g.ConnectToScene(actor.BucketNone)
	return g
}

func (g *SeaGullGroup) Movement(*actor.Frame) {}

// UpdatePosInfoIndex steps a chase point index forwards, or backwards when
// reverse is set, wrapping at either end.
func (g *SeaGullGroup) UpdatePosInfoIndex(index int, reverse bool) int {
	step := 1
	if reverse {
		step = -1
	}
	return geom.ModInt(index+step, len(g.Points))
}

type seaGullNerve uint8

const (
	seaGullHoverFront seaGullNerve = iota
	seaGullHoverLeft
	seaGullHoverRight
)

var seaGullNerveNames = [...]string{"HoverFront", "HoverLeft", "HoverRight"}

func (n seaGullNerve) String() string { return seaGullNerveNames[n] }

// Flight tuning.
const (
	seaGullMaxBank        = 30
	seaGullThrust         = 0.05
	seaGullSink           = 0.005
	seaGullClimb          = 0.04
	seaGullCruiseHeight   = 500
	seaGullMaintainFrames = 300
	seaGullMaxSpeed       = 10
	seaGullRetargetFrames = 180
)

// SeaGull banks left and right towards its current chase point, sinking
// slowly and climbing in bursts to hold height.
type SeaGull struct {
	actor.Actor
	AxisX, AxisY, AxisZ r3.Vec
	Bank                float64
	ChaseIndex          int

	group          *SeaGullGroup
	spine          nerve.Spine[seaGullNerve]
	up             r3.Vec
	reverse        bool
	retarget       float64
	hoverStep      float64
	flyUp          float64
	maintainHeight float64
}

func newSeaGull(env actor.Env, g *SeaGullGroup, p components.Placement) *SeaGull {
	s := &SeaGull{Actor: actor.NewActor(p), group: g}
	s.InitDefaultPos()
	s.AxisX, s.AxisY, s.AxisZ = s.Axes()
	s.up = s.AxisY

	useModel(env, &s.Actor, "SeaGull")
	s.StartBck("Fly")
	s.ConnectToScene(actor.BucketEnvironment)

	coord := geom.RandomFloat(1, g.Rail.TotalLength()-1)
	s.ChaseIndex = int(coord / seaGullPointSpacing)
	s.Translation = g.Rail.PosAtCoord(coord)

	s.reverse = geom.IsHalfProbability()
	s.retarget = float64(geom.RandomInt(0, 180))
	s.ChaseIndex = g.UpdatePosInfoIndex(s.ChaseIndex, s.reverse)

	z := r3.Add(r3.Scale(geom.RandomFloat(-1, 1), s.AxisX), r3.Scale(geom.RandomFloat(-1, 1), s.AxisZ))
	s.AxisZ = geom.NormalizeOr(z, s.AxisZ)

	s.spine.Init(seaGullHoverFront)
	s.Spine = &s.spine
	return s
}

func (s *SeaGull) chasePoint() r3.Vec { return s.group.Points[s.ChaseIndex] }

func (s *SeaGull) updateHover() {
	if math.Abs(s.Bank) > 0.01 {
		s.Bank = geom.ClampRange(s.Bank, seaGullMaxBank)
		s.AxisY = geom.Rotation(s.AxisZ, s.Bank*geom.DegToRad).ApplyDir(s.up)
		s.AxisZ = geom.Rotation(s.up, -0.01*s.Bank*geom.DegToRad).ApplyDir(s.AxisZ)
	}

	s.Velocity = r3.Add(s.Velocity, r3.Scale(seaGullThrust, s.AxisZ))

	if s.flyUp < 1 {
		s.Velocity.Y -= seaGullSink
		dist := r3.Dot(r3.Sub(s.chasePoint(), s.Translation), s.up)
		if dist >= seaGullCruiseHeight {
			s.maintainHeight--
			if dist > seaGullCruiseHeight || s.maintainHeight < 1 {
				s.flyUp = float64(geom.RandomInt(30, 180))
			}
		} else {
			s.maintainHeight = seaGullMaintainFrames
		}
		return
	}
	s.Velocity = r3.Add(s.Velocity, r3.Scale(seaGullClimb, s.AxisY))
	s.flyUp--
	if s.flyUp < 1 {
		s.maintainHeight = float64(geom.RandomInt(60, 300))
	}
}

func (s *SeaGull) Movement(f *actor.Frame) {
	dt := f.DeltaFrames
	switch s.spine.Current() {
	case seaGullHoverFront:
		if s.spine.IsFirstStep() {
			s.hoverStep = float64(geom.RandomInt(0, 60))
		}
		s.Bank *= 0.995 * dt
		if s.spine.IsGreaterStep(s.hoverStep) {
			d := r3.Sub(s.chasePoint(), s.Translation)
			if r3.Norm2(d) > 500 {
				if r3.Dot(s.AxisX, d) <= 0 {
					s.spine.Set(seaGullHoverRight)
				} else {
					s.spine.Set(seaGullHoverLeft)
				}
			}
		}
	case seaGullHoverLeft:
		if s.spine.IsFirstStep() {
			s.hoverStep = float64(geom.RandomInt(60, 120))
		}
		s.Bank -= 0.1 * dt
		if s.spine.IsGreaterStep(s.hoverStep) {
			s.spine.Set(seaGullHoverFront)
		}
	case seaGullHoverRight:
		if s.spine.IsFirstStep() {
			s.hoverStep = float64(geom.RandomInt(60, 120))
		}
		s.Bank += 0.1 * dt
		if s.spine.IsGreaterStep(s.hoverStep) {
			s.spine.Set(seaGullHoverFront)
		}
	}

	s.updateHover()
	s.Velocity = geom.ClampLength(s.Velocity, seaGullMaxSpeed)

	s.AxisX = r3.Unit(r3.Cross(s.AxisY, s.AxisZ))
	s.AxisY = r3.Unit(r3.Cross(s.AxisZ, s.AxisX))

	s.retarget--
	if s.retarget < 1 {
		s.ChaseIndex = s.group.UpdatePosInfoIndex(s.ChaseIndex, s.reverse)
		s.retarget = seaGullRetargetFrames
	}
}

func (s *SeaGull) CalcAndSetBaseMtx(*actor.Frame) {
	s.BaseMtx.SetAxes(s.AxisX, s.AxisY, s.AxisZ)
	s.BaseMtx.T = s.Translation
}
