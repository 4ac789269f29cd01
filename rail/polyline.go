package rail

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Polyline is a Rail made of straight parts between control points. A loop
// polyline has an extra closing part from the last point back to the first.
type Polyline struct {
	points []r3.Vec
	coords []float64 // coordinate of each point along the rail
	loop   bool
	total  float64
}

// NewPolyline builds a rail through points. At least two points are needed.
func NewPolyline(points []r3.Vec, loop bool) (*Polyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("rail needs at least 2 points, got %d", len(points))
	}
	p := &Polyline{
		points: append([]r3.Vec(nil), points...),
		coords: make([]float64, len(points)),
		loop:   loop,
	}
	for i := 1; i < len(points); i++ {
		p.coords[i] = p.coords[i-1] + r3.Norm(r3.Sub(points[i], points[i-1]))
	}
	p.total = p.coords[len(points)-1]
	if loop {
		p.total += r3.Norm(r3.Sub(points[0], points[len(points)-1]))
	}
	return p, nil
}

func (p *Polyline) TotalLength() float64 { return p.total }
func (p *Polyline) IsLoop() bool { return p.loop }
func (p *Polyline) PointCount() int { return len(p.points) }
func (p *Polyline) PointPos(i int) r3.Vec { return p.points[i] }
func (p *Polyline) PointCoord(i int) float64 { return p.coords[i] }

func (p *Polyline) partCount() int {
	if p.loop {
		return len(p.points)
	}
	return len(p.points) - 1
}

// part returns the end points of part i.
func (p *Polyline) part(i int) (a, b r3.Vec) {
	return p.points[i], p.points[(i+1)%len(p.points)]
}

// PartLength returns the length of part i.
func (p *Polyline) PartLength(i int) float64 {
	a, b := p.part(i)
	return r3.Norm(r3.Sub(b, a))
}

// partAt returns the part containing coord and the distance into it.
func (p *Polyline) partAt(coord float64) (int, float64) {
	coord = math.Max(0, math.Min(coord, p.total))
	i := sort.SearchFloat64s(p.coords, coord)
	// SearchFloat64s returns the first point with coords >= coord.
	if i >= len(p.coords) || p.coords[i] > coord {
		i--
	}
	if i < 0 {
		i = 0
	}
	if i >= p.partCount() {
		i = p.partCount() - 1
	}
	return i, coord - p.coords[i]
}

// PosAt returns the position at coord.
func (p *Polyline) PosAt(coord float64) r3.Vec {
	i, d := p.partAt(coord)
	a, b := p.part(i)
	l := r3.Norm(r3.Sub(b, a))
	if l == 0 {
		return a
	}
	return r3.Add(a, r3.Scale(d/l, r3.Sub(b, a)))
}

// DirAt returns the unit tangent at coord, pointing towards the rail end.
func (p *Polyline) DirAt(coord float64) r3.Vec {
	i, _ := p.partAt(coord)
	a, b := p.part(i)
	d := r3.Sub(b, a)
	if r3.Norm2(d) == 0 {
		return r3.Vec{Z: 1}
	}
	return r3.Unit(d)
}

// NearestCoord returns the coordinate of the point on the rail closest to pos.
func (p *Polyline) NearestCoord(pos r3.Vec) float64 {
	best, bestDist := 0.0, math.Inf(1)
	for i := 0; i < p.partCount(); i++ {
		a, b := p.part(i)
		ab := r3.Sub(b, a)
		l2 := r3.Norm2(ab)
		t := 0.0
		if l2 > 0 {
			t = math.Max(0, math.Min(1, r3.Dot(r3.Sub(pos, a), ab)/l2))
		}
		q := r3.Add(a, r3.Scale(t, ab))
		if d := r3.Norm2(r3.Sub(pos, q)); d < bestDist {
			bestDist = d
			best = p.coords[i] + t*math.Sqrt(l2)
		}
	}
	return best
}
