package rail

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Rider is one actor's position along a shared Rail.
type Rider struct {
	rail       Rail
	coord      float64
	speed      float64
	goingToEnd bool

	CurrentPos     r3.Vec
	CurrentDir     r3.Vec // tangent, negated while heading to the start
	CurrentPointID int    // last control point passed
}

// NewRider binds a new rider to r at coordinate 0, heading to the end.
func NewRider(r Rail) *Rider {
	rd := &Rider{rail: r, goingToEnd: true}
	rd.sync()
	return rd
}

// Rail returns the bound rail geometry.
func (r *Rider) Rail() Rail { return r.rail }

// Coord returns the current coordinate.
func (r *Rider) Coord() float64 { return r.coord }

// Speed returns the per-move distance.
func (r *Rider) Speed() float64 { return r.speed }

// SetCoord moves the rider to coord, wrapping on loops and clamping otherwise.
func (r *Rider) SetCoord(coord float64) {
	r.coord = r.normalize(coord)
	r.sync()
}

// SetSpeed sets the distance covered by Move. Direction is kept separately.
func (r *Rider) SetSpeed(v float64) { r.speed = math.Abs(v) }

// Move advances the rider by its speed in its direction.
func (r *Rider) Move() {
	if r.goingToEnd {
		r.SetCoord(r.coord + r.speed)
	} else {
		r.SetCoord(r.coord - r.speed)
	}
}

// Reverse flips the travel direction.
func (r *Rider) Reverse() {
	r.goingToEnd = !r.goingToEnd
	r.sync()
}

// IsGoingToEnd reports whether the rider travels towards the rail end.
func (r *Rider) IsGoingToEnd() bool { return r.goingToEnd }

// MoveToNearestPos snaps the rider to the rail point nearest pos.
func (r *Rider) MoveToNearestPos(pos r3.Vec) {
	r.SetCoord(r.rail.NearestCoord(pos))
}

// MoveToNearestPoint snaps the rider to the control point nearest pos.
func (r *Rider) MoveToNearestPoint(pos r3.Vec) {
	best, bestDist := 0, math.Inf(1)
	for i := 0; i < r.rail.PointCount(); i++ {
		if d := r3.Norm2(r3.Sub(pos, r.rail.PointPos(i))); d < bestDist {
			best, bestDist = i, d
		}
	}
	r.SetCoord(r.rail.PointCoord(best))
}

// IsReachedGoal reports whether an open rail has been run to its end in the
// current direction. Loops never reach a goal.
func (r *Rider) IsReachedGoal() bool {
	if r.rail.IsLoop() {
		return false
	}
	if r.goingToEnd {
		return r.coord >= r.rail.TotalLength()
	}
	return r.coord <= 0
}

func (r *Rider) IsLoop() bool { return r.rail.IsLoop() }
func (r *Rider) TotalLength() float64 { return r.rail.TotalLength() }
func (r *Rider) PartLength(i int) float64 { return r.rail.PartLength(i) }
func (r *Rider) PointCount() int { return r.rail.PointCount() }
func (r *Rider) StartPos() r3.Vec { return r.rail.PointPos(0) }
func (r *Rider) PosAtCoord(coord float64) r3.Vec { return r.rail.PosAt(r.normalize(coord)) }
func (r *Rider) DirAtCoord(coord float64) r3.Vec { return r.rail.DirAt(r.normalize(coord)) }

// EndPos returns the last control point.
func (r *Rider) EndPos() r3.Vec {
	return r.rail.PointPos(r.rail.PointCount() - 1)
}

func (r *Rider) normalize(coord float64) float64 {
	l := r.rail.TotalLength()
	if r.rail.IsLoop() {
		if l == 0 {
			return 0
		}
		c := math.Mod(coord, l)
		if c < 0 {
			c += l
		}
		return c
	}
	return math.Max(0, math.Min(coord, l))
}

func (r *Rider) sync() {
	r.CurrentPos = r.rail.PosAt(r.coord)
	r.CurrentDir = r.rail.DirAt(r.coord)
	if !r.goingToEnd {
		r.CurrentDir = r3.Scale(-1, r.CurrentDir)
	}
	r.CurrentPointID = 0
	for i := r.rail.PointCount() - 1; i >= 0; i-- {
		if r.rail.PointCoord(i) <= r.coord {
			r.CurrentPointID = i
			break
		}
	}
}
