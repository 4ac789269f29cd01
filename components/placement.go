package components

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/geom"
)

// Unset marks a placement argument or switch id that was not authored.
const Unset = -1

// Placement is the per-actor record an actor is constructed from.
type Placement struct {
	ID          int
	Name        string
	ModelName   string // empty means Name
	Translation r3.Vec
	Rotation    r3.Vec // radians
	Scale       r3.Vec
	Args        [config.NumArgs]float64
	RailName    string
	SwAppear    int
	SwA         int
	SwB         int

	// MoveConditionType gates rotators and rail movers. It is its own column,
	// not a positional argument.
	MoveConditionType int
}

// NewPlacement converts a loaded object record.
func NewPlacement(o config.ObjectSpec, id int) Placement {
	p := Placement{
		ID:          id,
		Name:        o.Name,
		ModelName:   o.Model,
		Translation: vec(o.Translation),
		Rotation:    r3.Scale(geom.DegToRad, vec(o.Rotation)),
		Scale:       vec(o.Scale),
		RailName:    o.Rail,
		SwAppear:    switchID(o.SwAppear),
		SwA:         switchID(o.SwA),
		SwB:         switchID(o.SwB),

		MoveConditionType: o.MoveCondition,
	}
	if p.Scale == (r3.Vec{}) {
		p.Scale = r3.Vec{X: 1, Y: 1, Z: 1}
	}
	for i := range p.Args {
		p.Args[i] = Unset
		if i < len(o.Args) {
			p.Args[i] = o.Args[i]
		}
	}
	return p
}

// NewPlacementAt builds a bare placement for objects spawned by code rather than authored.
func NewPlacementAt(name string, trans r3.Vec) Placement {
	p := Placement{
		ID:          Unset,
		Name:        name,
		Translation: trans,
		Scale:       r3.Vec{X: 1, Y: 1, Z: 1},
		SwAppear:    Unset,
		SwA:         Unset,
		SwB:         Unset,
	}
	for i := range p.Args {
		p.Args[i] = Unset
	}
	return p
}

// Arg returns argument i and whether it was set.
func (p *Placement) Arg(i int) (float64, bool) {
	if i < 0 || i >= len(p.Args) || p.Args[i] == Unset {
		return Unset, false
	}
	return p.Args[i], true
}

// ArgOr returns argument i, or def when it is unset.
func (p *Placement) ArgOr(i int, def float64) float64 {
	if v, ok := p.Arg(i); ok {
		return v
	}
	return def
}

// ArgInt returns argument i truncated to an int, or def when it is unset.
func (p *Placement) ArgInt(i int, def int) int {
	if v, ok := p.Arg(i); ok {
		return int(v)
	}
	return def
}

// ArgBool reports whether argument i is set.
func (p *Placement) ArgBool(i int) bool {
	_, ok := p.Arg(i)
	return ok
}

// IsConnectedWithRail reports whether the placement names a rail.
func (p *Placement) IsConnectedWithRail() bool {
	return p.RailName != ""
}

// IsValidSwAppear reports whether an appear switch is bound.
func (p *Placement) IsValidSwAppear() bool {
	return p.SwAppear != Unset
}

// ObjName returns the model archive the placement asks for.
func (p *Placement) ObjName() string {
	if p.ModelName != "" {
		return p.ModelName
	}
	return p.Name
}

func vec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

func switchID(p *int) int {
	if p == nil {
		return Unset
	}
	return *p
}
