package actors

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
)

// CoconutTreeLeafGroup sways one leaf per joint of its model, the last joint
// excepted. Gusts get stronger the farther away the camera is.
type CoconutTreeLeafGroup struct {
	actor.Actor
	Leaves []*CoconutTreeLeaf

	treeZ r3.Vec
}

func NewCoconutTreeLeafGroup(env actor.Env, p components.Placement) *CoconutTreeLeafGroup {
	g := &CoconutTreeLeafGroup{Actor: actor.NewActor(p), treeZ: geom.AxisZ}
	g.InitDefaultPos()
	useModel(env, &g.Actor, "CoconutTreeLeaf")
	g.ConnectToScene(actor.BucketMapObj)
	if g.Model == nil {
		return g
	}

	g.CalcDefaultMtx()
	g.Model.UpdateJoints(g.BaseMtx)
	n := g.Model.JointCount() - 1
	g.Leaves = make([]*CoconutTreeLeaf, 0, max(n, 0))
	for i := 0; i < n; i++ {
		g.Leaves = append(g.Leaves, newCoconutTreeLeaf(*g.Model.JointMtx(i), g.treeZ))
	}
	return g
}

// gust returns the impulse along the tree Z axis and the vertical jitter for
// a camera at dist.
func gust(dist float64) (z, x float64) {
	switch {
	case dist > 5000:
		return 0.05, 0.03
	case dist > 3000:
		return 0.03, 0.01
	default:
		return 0.02, 0.005
	}
}

func (g *CoconutTreeLeafGroup) Movement(f *actor.Frame) {
	var dist float64
	if f.Camera != nil {
		dist = r3.Norm(r3.Sub(f.Camera.Position(), g.Translation))
	}
	z, x := gust(dist)
	for _, l := range g.Leaves {
		l.update(z, x, f.DeltaFrames)
	}
}

// CalcJoints writes the leaves back over the posed joints.
func (g *CoconutTreeLeafGroup) CalcJoints(*actor.Frame) {
	for i, l := range g.Leaves {
		*g.Model.JointMtx(i) = l.Mtx
	}
}

// CoconutTreeLeaf is a damped spring pulling a point ahead of the leaf back
// to its rest position. The leaf matrix points at that point.
type CoconutTreeLeaf struct {
	Mtx geom.Mtx

	trans    r3.Vec
	up       r3.Vec
	treeZ    r3.Vec
	chase    r3.Vec
	current  r3.Vec
	velocity r3.Vec
	accel    r3.Vec

	accelCounter float64
	waitCounter  float64
}

func newCoconutTreeLeaf(joint geom.Mtx, treeZ r3.Vec) *CoconutTreeLeaf {
	_, y, z := joint.Axes()
	l := &CoconutTreeLeaf{
		Mtx:   joint,
		trans: joint.T,
		up:    y,
		treeZ: treeZ,
	}
	l.chase = r3.Add(l.trans, r3.Scale(100, z))
	l.current = l.chase
	return l
}

const (
	leafSink  = 0.005
	leafDrag  = 0.99
	leafChase = 0.001
)

func (l *CoconutTreeLeaf) update(scaleZ, scaleX, dt float64) {
	if l.accelCounter < 1 {
		l.waitCounter--
		if l.waitCounter < 1 {
			l.accel = r3.Add(r3.Scale(scaleZ, l.treeZ), r3.Scale(scaleX*geom.RandomFloat(-1, 1), l.up))
			l.accelCounter = geom.RandomFloat(10, 30)
		}
	} else {
		l.velocity = r3.Add(l.velocity, l.accel)
		l.accelCounter--
		if l.accelCounter < 1 {
			l.waitCounter = float64(geom.RandomInt(15, 150))
		}
	}

	l.velocity = r3.Sub(l.velocity, r3.Scale(leafSink, l.up))
	mag := -r3.Dot(l.chase, l.treeZ)
	l.velocity = r3.Add(l.velocity, r3.Scale(leafChase, r3.Sub(l.chase, l.current)))
	l.velocity = r3.Scale(leafDrag, l.velocity)
	l.current = r3.Add(l.current, r3.Scale(dt, l.velocity))

	z := geom.NormalizeOr(r3.Sub(l.current, l.trans), geom.AxisZ)
	x := geom.NormalizeOr(r3.Cross(r3.Add(l.up, r3.Scale(0.01*mag, l.treeZ)), z), geom.AxisX)
	y := r3.Unit(r3.Cross(z, x))
	l.Mtx.SetAxes(x, y, z)
}
