// Package camera provides the scripted viewpoint actors track and cull
// against.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/geom"
)

// Orbit circles a fixed centre at constant height, always looking at it.
type Orbit struct {
	Center       r3.Vec
	Radius       float64
	Height       float64
	PeriodFrames float64
	Far          float64

	// Half angles of the view cone, vertical and horizontal
	halfV, halfH float64

	angle float64 // radians
	pos   r3.Vec
	frame geom.Mtx
}

// NewOrbit creates an orbit camera at angle zero.
func NewOrbit(cfg config.CameraConfig) *Orbit {
	halfV := cfg.FovDeg * 0.5 * geom.DegToRad
	aspect := cfg.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	o := &Orbit{
		Center:       r3.Vec{X: cfg.Center[0], Y: cfg.Center[1], Z: cfg.Center[2]},
		Radius:       cfg.Radius,
		Height:       cfg.Height,
		PeriodFrames: cfg.PeriodFrames,
		Far:          cfg.Far,
		halfV:        halfV,
		halfH:        math.Atan(math.Tan(halfV) * aspect),
	}
	o.place()
	return o
}

// Advance moves the camera along its orbit by deltaFrames.
func (o *Orbit) Advance(deltaFrames float64) {
	if o.PeriodFrames <= 0 {
		return
	}
	o.SetAngle(o.angle + geom.Tau*deltaFrames/o.PeriodFrames)
}

// SetAngle places the camera at angle radians around the centre.
func (o *Orbit) SetAngle(angle float64) {
	o.angle = geom.Wrap(angle, geom.Tau)
	o.place()
}

// Angle returns the orbit angle in radians.
func (o *Orbit) Angle() float64 { return o.angle }

func (o *Orbit) place() {
	o.pos = r3.Add(o.Center, r3.Vec{
		X: o.Radius * math.Sin(o.angle),
		Y: o.Height,
		Z: o.Radius * math.Cos(o.angle),
	})
	o.frame = geom.MakeFrontUpPos(r3.Sub(o.Center, o.pos), geom.AxisY, o.pos)
}

func (o *Orbit) Position() r3.Vec { return o.pos }
func (o *Orbit) Up() r3.Vec { return o.frame.Y }
func (o *Orbit) Front() r3.Vec { return o.frame.Z }

// ContainsSphere reports whether any part of the sphere lies inside the view
// cone and in front of the far plane.
func (o *Orbit) ContainsSphere(center r3.Vec, radius float64) bool {
	d := r3.Sub(center, o.pos)
	depth := r3.Dot(d, o.frame.Z)
	if depth+radius < 0 {
		return false
	}
	if o.Far > 0 && depth-radius > o.Far {
		return false
	}
	if r3.Norm2(d) <= radius*radius {
		return true
	}
	x := r3.Dot(d, o.frame.X)
	y := r3.Dot(d, o.frame.Y)
	return inCone(x, depth, o.halfH, radius) && inCone(y, depth, o.halfV, radius)
}

// inCone tests a sphere against a symmetric wedge of half angle half, using
// its lateral offset lat at the given depth.
func inCone(lat, depth, half, radius float64) bool {
	return math.Abs(lat)*math.Cos(half)-depth*math.Sin(half) <= radius
}
