package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func vecNear(t *testing.T, want, got r3.Vec, msg string) {
	t.Helper()
	if r3.Norm(r3.Sub(want, got)) > 1e-6 {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func assertOrthonormalRightHanded(t *testing.T, m Mtx) {
	t.Helper()
	assert.InDelta(t, 1, r3.Norm(m.X), 1e-9)
	assert.InDelta(t, 1, r3.Norm(m.Y), 1e-9)
	assert.InDelta(t, 1, r3.Norm(m.Z), 1e-9)
	assert.InDelta(t, 0, r3.Dot(m.X, m.Y), 1e-9)
	assert.InDelta(t, 0, r3.Dot(m.Y, m.Z), 1e-9)
	assert.InDelta(t, 0, r3.Dot(m.Z, m.X), 1e-9)
	assert.InDelta(t, 1, m.Basis().Det(), 1e-9, "basis must be right-handed")
}

func TestMakeFrontUpPosKeepsFront(t *testing.T) {
	front := r3.Vec{X: 1, Y: 0.3, Z: 0.2}
	m := MakeFrontUpPos(front, AxisY, r3.Vec{X: 5})

	assertOrthonormalRightHanded(t, m)
	vecNear(t, r3.Unit(front), m.Z, "front")
	assert.Greater(t, m.Y.Y, 0.0, "up should stay roughly up")
	vecNear(t, r3.Vec{X: 5}, m.T, "translation")
}

func TestMakeUpFrontPosKeepsUp(t *testing.T) {
	up := r3.Vec{X: 0.1, Y: 1, Z: 0}
	m := MakeUpFrontPos(up, AxisZ, r3.Vec{})

	assertOrthonormalRightHanded(t, m)
	vecNear(t, r3.Unit(up), m.Y, "up")
	assert.Greater(t, m.Z.Z, 0.0)
}

func TestFromGravityAndZAxis(t *testing.T) {
	m := FromGravityAndZAxis(r3.Vec{Y: -1}, r3.Vec{X: 1}, r3.Vec{})
	vecNear(t, AxisY, m.Y, "up opposes gravity")
	vecNear(t, AxisX, m.Z, "front")
	vecNear(t, r3.Vec{Z: -1}, m.X, "right")
}

func TestFrameParallelInputs(t *testing.T) {
	m := MakeFrontUpPos(AxisY, AxisY, r3.Vec{})
	assertOrthonormalRightHanded(t, m)
}

func TestMulComposesApply(t *testing.T) {
	a := FromSRT(r3.Vec{X: 2, Y: 2, Z: 2}, r3.Vec{Y: math.Pi / 2}, r3.Vec{X: 1})
	b := FromTR(r3.Vec{X: 0.3}, r3.Vec{Z: 4})
	p := r3.Vec{X: 1, Y: 2, Z: 3}

	vecNear(t, a.Apply(b.Apply(p)), Mul(a, b).Apply(p), "composition")
}

func TestTranslateIsLocal(t *testing.T) {
	m := FromTR(r3.Vec{Y: math.Pi / 2}, r3.Vec{X: 10})
	got := m.Translate(r3.Vec{Z: 1}).T
	vecNear(t, r3.Vec{X: 11}, got, "local +Z maps to world +X after a 90 degree yaw")
}

func TestScaleScalarLeavesTranslation(t *testing.T) {
	m := Identity().Translate(r3.Vec{Y: 3}).ScaleScalar(0.5)
	vecNear(t, r3.Vec{X: 0.5}, m.X, "scaled axis")
	vecNear(t, r3.Vec{Y: 3}, m.T, "translation")
}

func TestKillElement(t *testing.T) {
	rest, m := KillElement(r3.Vec{X: 1, Y: 2, Z: 0}, AxisY)
	assert.InDelta(t, 2, m, tol)
	vecNear(t, r3.Vec{X: 1}, rest, "remainder")
}

func TestRotateDegree(t *testing.T) {
	got := RotateDegree(AxisX, AxisY, 90)
	vecNear(t, r3.Vec{Z: -1}, got, "x about y by 90")
	vecNear(t, AxisX, RotateDegree(AxisX, r3.Vec{}, 45), "zero axis")
}

func TestClampLength(t *testing.T) {
	got := ClampLength(r3.Vec{X: 30, Y: 40}, 10)
	assert.InDelta(t, 10, r3.Norm(got), tol)
	vecNear(t, r3.Vec{X: 1}, ClampLength(r3.Vec{X: 1}, 10), "short vector untouched")
}

func TestEasing(t *testing.T) {
	assert.InDelta(t, 0.001, EaseIn(0, 0.001, 1, 1), tol)
	assert.InDelta(t, 1, EaseIn(1, 0.001, 1, 1), tol)
	assert.InDelta(t, 1, EaseOut(0, 0, 1, 1), tol)
	assert.InDelta(t, 0, EaseOut(1, 0, 1, 1), tol)
}

func TestEasingShape(t *testing.T) {
	const steps = 100
	prevIn, prevOut := EaseIn(0, 2, 10, 30), EaseOut(0, 2, 10, 30)
	for i := 1; i <= steps; i++ {
		x := 30 * float64(i) / steps
		in, out := EaseIn(x, 2, 10, 30), EaseOut(x, 2, 10, 30)
		assert.GreaterOrEqual(t, in, prevIn, "ease in rises at %v", x)
		assert.LessOrEqual(t, out, prevOut, "ease out falls at %v", x)
		// The curves mirror each other about the midpoint of a and b.
		assert.InDelta(t, 12, in+out, tol, "at %v", x)
		prevIn, prevOut = in, out
	}
	// Ease in starts slowly.
	assert.Less(t, EaseIn(15, 2, 10, 30), 6.0)
	assert.Greater(t, EaseOut(15, 2, 10, 30), 6.0)
}

func TestWrapAndMod(t *testing.T) {
	assert.InDelta(t, 1, Wrap(Tau+1, Tau), tol)
	assert.InDelta(t, Tau-1, Wrap(-1, Tau), tol)
	assert.Equal(t, 4, ModInt(-1, 5))
	assert.Equal(t, 0, ModInt(5, 5))
}

func TestRandomRanges(t *testing.T) {
	Seed(7)
	for i := 0; i < 1000; i++ {
		n := RandomInt(15, 150)
		if n < 15 || n >= 150 {
			t.Fatalf("RandomInt out of range: %d", n)
		}
		f := RandomFloat(-2, 2)
		if f < -2 || f >= 2 {
			t.Fatalf("RandomFloat out of range: %f", f)
		}
	}
	assert.Equal(t, 3, RandomInt(3, 3))
}

func TestSeedIsDeterministic(t *testing.T) {
	Seed(42)
	a := RandomVector(10)
	Seed(42)
	b := RandomVector(10)
	assert.Equal(t, a, b)
}

func TestIsNearZero(t *testing.T) {
	assert.True(t, IsNearZero(r3.Vec{X: 0.0005}, 0.001))
	assert.False(t, IsNearZero(r3.Vec{Z: 0.01}, 0.001))
}
