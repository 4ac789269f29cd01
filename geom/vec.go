// Package geom holds the vector, matrix and scalar helpers shared by actors.
//
// Vectors are gonum r3.Vec values. Matrices are affine transforms stored as
// three basis columns plus a translation.
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Angle conversion factors.
const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
	Tau      = 2 * math.Pi
)

// Unit axes.
var (
	AxisX = r3.Vec{X: 1}
	AxisY = r3.Vec{Y: 1}
	AxisZ = r3.Vec{Z: 1}
)

// Lerp interpolates a..b by t.
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// LerpF interpolates scalars a..b by t.
func LerpF(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Negate returns -v.
func Negate(v r3.Vec) r3.Vec {
	return r3.Scale(-1, v)
}

// IsNearZero reports whether every component of v lies within eps of zero.
func IsNearZero(v r3.Vec, eps float64) bool {
	return scalar.EqualWithinAbs(v.X, 0, eps) &&
		scalar.EqualWithinAbs(v.Y, 0, eps) &&
		scalar.EqualWithinAbs(v.Z, 0, eps)
}

// NormalizeOr returns the unit vector of v, or fallback when v is zero.
func NormalizeOr(v, fallback r3.Vec) r3.Vec {
	if r3.Norm2(v) == 0 {
		return fallback
	}
	return r3.Unit(v)
}

// KillElement removes the component of a along b (b assumed unit) and
// returns the remainder together with the removed magnitude.
func KillElement(a, b r3.Vec) (r3.Vec, float64) {
	m := r3.Dot(a, b)
	return r3.Sub(a, r3.Scale(m, b)), m
}

// RotateDegree rotates v by deg degrees about axis. A zero axis leaves v
// unchanged.
func RotateDegree(v, axis r3.Vec, deg float64) r3.Vec {
	if r3.Norm2(axis) == 0 || deg == 0 {
		return v
	}
	return r3.Rotate(v, deg*DegToRad, axis)
}

// ClampLength scales v down so that its length does not exceed max.
func ClampLength(v r3.Vec, max float64) r3.Vec {
	n := r3.Norm(v)
	if n <= max || n == 0 {
		return v
	}
	return r3.Scale(max/n, v)
}

// DistanceSq returns the squared distance between a and b.
func DistanceSq(a, b r3.Vec) float64 {
	return r3.Norm2(r3.Sub(a, b))
}
