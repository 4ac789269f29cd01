// Package systems provides the headless collaborators the actors run on:
// animation playback, effect keepers, archive bookkeeping and the hit sensor
// grid.
package systems

import (
	"math"
	"slices"

	"github.com/kamstrup/intmap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
)

// MaxQueryResults caps the contacts reported for one sensor per pass.
// This prevents density spikes from causing unbounded work.
const MaxQueryResults = 128

// Contact is an ordered pair of overlapping sensors. Each overlap is
// reported once from each side.
type Contact struct {
	Self, Other *actor.HitSensor
}

// SensorGrid buckets hit sensors into sparse 3D cells for overlap queries.
type SensorGrid struct {
	cellSize  float64
	cells     *intmap.Map[uint64, []int32]
	sensors   []*actor.HitSensor
	pos       []r3.Vec
	maxRadius float64
	scratch   []int32
}

// NewSensorGrid creates a grid with cubic cells of cellSize units.
func NewSensorGrid(cellSize float64) *SensorGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &SensorGrid{
		cellSize: cellSize,
		cells:    intmap.New[uint64, []int32](256),
	}
}

// Clear removes all sensors from the grid.
func (g *SensorGrid) Clear() {
	g.cells.Clear()
	g.sensors = g.sensors[:0]
	g.pos = g.pos[:0]
	g.maxRadius = 0
}

// Len returns the number of inserted sensors.
func (g *SensorGrid) Len() int { return len(g.sensors) }

// Insert adds a sensor at its current world position.
func (g *SensorGrid) Insert(s *actor.HitSensor) {
	p := s.Pos()
	idx := int32(len(g.sensors))
	g.sensors = append(g.sensors, s)
	g.pos = append(g.pos, p)
	if s.Radius > g.maxRadius {
		g.maxRadius = s.Radius
	}
	key := cellKey(g.cell(p))
	list, _ := g.cells.Get(key)
	g.cells.Put(key, append(list, idx))
}

// Contacts appends every overlapping pair to dst. Sensors of the same owner
// never touch. Pairs come out in insertion order of Self, then of Other.
func (g *SensorGrid) Contacts(dst []Contact) []Contact {
	reach := int(math.Ceil(2*g.maxRadius/g.cellSize))
	for i, s := range g.sensors {
		g.scratch = g.near(g.scratch[:0], g.pos[i], reach)
		slices.Sort(g.scratch)
		found := 0
		for _, j := range g.scratch {
			if int(j) == i {
				continue
			}
			o := g.sensors[j]
			if o.Owner.Base() == s.Owner.Base() {
				continue
			}
			r := s.Radius + o.Radius
			if r3.Norm2(r3.Sub(g.pos[j], g.pos[i])) > r*r {
				continue
			}
			dst = append(dst, Contact{Self: s, Other: o})
			found++
			if found >= MaxQueryResults {
				break
			}
		}
	}
	return dst
}

// QueryRadius appends the sensors whose spheres reach within radius of p.
func (g *SensorGrid) QueryRadius(dst []*actor.HitSensor, p r3.Vec, radius float64) []*actor.HitSensor {
	reach := int(math.Ceil((radius+g.maxRadius)/g.cellSize))
	g.scratch = g.near(g.scratch[:0], p, reach)
	slices.Sort(g.scratch)
	for _, j := range g.scratch {
		r := radius + g.sensors[j].Radius
		if r3.Norm2(r3.Sub(g.pos[j], p)) <= r*r {
			dst = append(dst, g.sensors[j])
			if len(dst) >= MaxQueryResults {
				break
			}
		}
	}
	return dst
}

func (g *SensorGrid) near(dst []int32, p r3.Vec, reach int) []int32 {
	cx, cy, cz := g.cell(p)
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			for dz := -reach; dz <= reach; dz++ {
				if list, ok := g.cells.Get(cellKey(cx+dx, cy+dy, cz+dz)); ok {
					dst = append(dst, list...)
				}
			}
		}
	}
	return dst
}

func (g *SensorGrid) cell(p r3.Vec) (int, int, int) {
	return int(math.Floor(p.X / g.cellSize)),
		int(math.Floor(p.Y / g.cellSize)),
		int(math.Floor(p.Z / g.cellSize))
}

// cellKey packs three signed cell coordinates into 21 bits each.
func cellKey(x, y, z int) uint64 {
	const mask = 1<<21 - 1
	return uint64(x&mask)<<42 | uint64(y&mask)<<21 | uint64(z&mask)
}
