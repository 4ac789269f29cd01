package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mtx is an affine transform. X, Y and Z are the basis columns (right, up
// and front for an actor frame) and T is the translation.
type Mtx struct {
	X, Y, Z r3.Vec
	T       r3.Vec
}

// Identity returns the identity transform.
func Identity() Mtx {
	return Mtx{X: AxisX, Y: AxisY, Z: AxisZ}
}

// Basis returns the 3x3 linear part as a gonum matrix.
func (m Mtx) Basis() *r3.Mat {
	return r3.NewMat([]float64{
		m.X.X, m.Y.X, m.Z.X,
		m.X.Y, m.Y.Y, m.Z.Y,
		m.X.Z, m.Y.Z, m.Z.Z,
	})
}

// FromBasis builds a transform from a 3x3 matrix and a translation.
func FromBasis(b *r3.Mat, t r3.Vec) Mtx {
	return Mtx{X: b.VecCol(0), Y: b.VecCol(1), Z: b.VecCol(2), T: t}
}

// Mul returns a*b, so that Mul(a, b).Apply(p) == a.Apply(b.Apply(p)).
func Mul(a, b Mtx) Mtx {
	var basis r3.Mat
	basis.Mul(a.Basis(), b.Basis())
	return FromBasis(&basis, a.Apply(b.T))
}

// Apply transforms point p.
func (m Mtx) Apply(p r3.Vec) r3.Vec {
	return r3.Add(m.ApplyDir(p), m.T)
}

// ApplyDir transforms direction v, ignoring translation.
func (m Mtx) ApplyDir(v r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(v.X, m.X), r3.Scale(v.Y, m.Y)), r3.Scale(v.Z, m.Z))
}

// Translate post-multiplies by a translation expressed in local space.
func (m Mtx) Translate(local r3.Vec) Mtx {
	m.T = m.Apply(local)
	return m
}

// ScaleScalar scales the linear part by s, leaving the translation.
func (m Mtx) ScaleScalar(s float64) Mtx {
	m.X = r3.Scale(s, m.X)
	m.Y = r3.Scale(s, m.Y)
	m.Z = r3.Scale(s, m.Z)
	return m
}

// SetAxes replaces the basis columns.
func (m *Mtx) SetAxes(x, y, z r3.Vec) {
	m.X, m.Y, m.Z = x, y, z
}

// Axes returns the basis columns.
func (m Mtx) Axes() (x, y, z r3.Vec) {
	return m.X, m.Y, m.Z
}

// Rotation returns the rotation by radians about the given unit axis.
func Rotation(axis r3.Vec, radians float64) Mtx {
	if radians == 0 {
		return Identity()
	}
	return FromBasis(r3.NewRotation(radians, axis).Mat(), r3.Vec{})
}

// RotateY returns the rotation about the Y axis.
func RotateY(radians float64) Mtx {
	return Rotation(AxisY, radians)
}

// FromSRT builds scale, then X, Y, Z Euler rotation (radians), then
// translation.
func FromSRT(scale, rot, trans r3.Vec) Mtx {
	r := Mul(Rotation(AxisZ, rot.Z), Mul(Rotation(AxisY, rot.Y), Rotation(AxisX, rot.X)))
	return Mtx{
		X: r3.Scale(scale.X, r.X),
		Y: r3.Scale(scale.Y, r.Y),
		Z: r3.Scale(scale.Z, r.Z),
		T: trans,
	}
}

// FromTR is FromSRT with unit scale.
func FromTR(rot, trans r3.Vec) Mtx {
	return FromSRT(r3.Vec{X: 1, Y: 1, Z: 1}, rot, trans)
}

// MakeFrontUpPos builds a right-handed orthonormal frame where front is
// kept exactly and up is re-derived.
func MakeFrontUpPos(front, up, pos r3.Vec) Mtx {
	z := NormalizeOr(front, AxisZ)
	x := NormalizeOr(r3.Cross(up, z), perpendicular(z))
	y := r3.Cross(z, x)
	return Mtx{X: x, Y: y, Z: z, T: pos}
}

// MakeUpFrontPos builds a right-handed orthonormal frame where up is kept
// exactly and front is re-derived.
func MakeUpFrontPos(up, front, pos r3.Vec) Mtx {
	y := NormalizeOr(up, AxisY)
	x := NormalizeOr(r3.Cross(y, front), perpendicular(y))
	z := r3.Cross(x, y)
	return Mtx{X: x, Y: y, Z: z, T: pos}
}

// FromGravityAndZAxis builds an up-priority frame whose up opposes gravity.
func FromGravityAndZAxis(gravity, front, pos r3.Vec) Mtx {
	return MakeUpFrontPos(Negate(gravity), front, pos)
}

// perpendicular returns some unit vector orthogonal to unit v.
func perpendicular(v r3.Vec) r3.Vec {
	ref := AxisX
	if math.Abs(v.X) > 0.9 {
		ref = AxisY
	}
	return r3.Unit(r3.Cross(v, ref))
}
