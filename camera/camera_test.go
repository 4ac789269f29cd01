package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/config"
)

func testOrbit() *Orbit {
	return NewOrbit(config.CameraConfig{
		Radius:       1000,
		Height:       0,
		PeriodFrames: 400,
		FovDeg:       60,
		Aspect:       1,
		Far:          5000,
	})
}

func near(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < 1e-6
}

func TestOrbitStartsOnPositiveZ(t *testing.T) {
	o := testOrbit()

	if !near(o.Position(), r3.Vec{Z: 1000}) {
		t.Errorf("expected position (0, 0, 1000), got %v", o.Position())
	}
	if !near(o.Front(), r3.Vec{Z: -1}) {
		t.Errorf("expected front (0, 0, -1), got %v", o.Front())
	}
	if !near(o.Up(), r3.Vec{Y: 1}) {
		t.Errorf("expected up (0, 1, 0), got %v", o.Up())
	}
}

func TestOrbitAdvanceQuarter(t *testing.T) {
	o := testOrbit()
	o.Advance(100)

	if math.Abs(o.Angle()-math.Pi/2) > 1e-9 {
		t.Errorf("expected angle pi/2, got %f", o.Angle())
	}
	if !near(o.Position(), r3.Vec{X: 1000}) {
		t.Errorf("expected position (1000, 0, 0), got %v", o.Position())
	}
}

func TestOrbitFullPeriodWraps(t *testing.T) {
	o := testOrbit()
	for i := 0; i < 400; i++ {
		o.Advance(1)
	}
	if !near(o.Position(), r3.Vec{Z: 1000}) {
		t.Errorf("expected to return to start, got %v", o.Position())
	}
}

func TestOrbitFrameOrthonormal(t *testing.T) {
	o := testOrbit()
	o.Advance(37)
	if d := r3.Dot(o.Up(), o.Front()); math.Abs(d) > 1e-9 {
		t.Errorf("expected up and front orthogonal, dot=%f", d)
	}
	if n := r3.Norm(o.Front()); math.Abs(n-1) > 1e-9 {
		t.Errorf("expected unit front, got %f", n)
	}
}

func TestContainsSphere(t *testing.T) {
	o := testOrbit()

	tests := []struct {
		name   string
		center r3.Vec
		radius float64
		want   bool
	}{
		{"centre", r3.Vec{}, 10, true},
		{"behind", r3.Vec{Z: 2000}, 10, false},
		{"beyond far", r3.Vec{Z: -5000}, 10, false},
		{"far edge reaches", r3.Vec{Z: -4005}, 10, true},
		{"outside cone", r3.Vec{X: 900}, 10, false},
		{"cone edge reaches", r3.Vec{X: 600}, 50, true},
		{"around eye", r3.Vec{Z: 1000}, 1, true},
	}
	for _, tc := range tests {
		if got := o.ContainsSphere(tc.center, tc.radius); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
