package components

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/config"
)

func TestNewPlacementDefaults(t *testing.T) {
	p := NewPlacement(config.ObjectSpec{Name: "Coin", Args: []float64{3}}, 7)

	if p.ID != 7 {
		t.Errorf("expected id 7, got %d", p.ID)
	}
	if p.Scale != (r3.Vec{X: 1, Y: 1, Z: 1}) {
		t.Errorf("expected unit scale, got %v", p.Scale)
	}
	if v, ok := p.Arg(0); !ok || v != 3 {
		t.Errorf("expected arg0 3, got %f (%v)", v, ok)
	}
	if p.ArgBool(1) {
		t.Error("missing args should be unset")
	}
	if p.ArgOr(5, 42) != 42 {
		t.Errorf("expected default 42, got %f", p.ArgOr(5, 42))
	}
	if p.IsValidSwAppear() {
		t.Error("switch should be unset")
	}
	if p.ObjName() != "Coin" {
		t.Errorf("expected ObjName Coin, got %s", p.ObjName())
	}
}

func TestNewPlacementConvertsDegrees(t *testing.T) {
	sw := 4
	p := NewPlacement(config.ObjectSpec{
		Name:     "EarthenPipeInWater",
		Model:    "EarthenPipe",
		Rotation: [3]float64{0, 90, 180},
		Rail:     "r",
		SwAppear: &sw,
	}, 0)

	if !scalar.EqualWithinAbs(p.Rotation.Y, 1.5707963, 1e-6) {
		t.Errorf("expected 90 degrees as radians, got %f", p.Rotation.Y)
	}
	if p.ObjName() != "EarthenPipe" {
		t.Errorf("model override ignored, got %s", p.ObjName())
	}
	if !p.IsConnectedWithRail() || p.SwAppear != 4 {
		t.Errorf("expected rail and switch, got %q %d", p.RailName, p.SwAppear)
	}
}

func TestArgOutOfRange(t *testing.T) {
	p := NewPlacementAt("Coin", r3.Vec{})
	if _, ok := p.Arg(config.NumArgs); ok {
		t.Error("index past the arg table must be unset")
	}
	if p.ArgInt(-1, 9) != 9 {
		t.Error("negative index must fall back to the default")
	}
}

func TestMoveConditionIsNotAnArg(t *testing.T) {
	p := NewPlacement(config.ObjectSpec{Name: "RotateMoveObj", Args: []float64{3}, MoveCondition: 1}, 0)

	if p.MoveConditionType != 1 {
		t.Errorf("expected move condition 1, got %d", p.MoveConditionType)
	}
	if p.ArgInt(0, Unset) != 3 {
		t.Errorf("expected arg0 3, got %d", p.ArgInt(0, Unset))
	}
	if q := NewPlacementAt("Box", r3.Vec{}); q.MoveConditionType != 0 {
		t.Errorf("expected unconditional default, got %d", q.MoveConditionType)
	}
}
