package geom

import "math"

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ClampRange restricts v to [-r, r].
func ClampRange(v, r float64) float64 {
	return Clamp(v, -r, r)
}

// Wrap returns v modulo period, always in [0, period).
func Wrap(v, period float64) float64 {
	r := math.Mod(v, period)
	if r < 0 {
		r += period
	}
	return r
}

// ModInt returns (a + b) % b, which is non-negative for a >= -b.
func ModInt(a, b int) int {
	return (a + b) % b
}

// EaseIn eases from a to b as t runs over [0, duration].
func EaseIn(t, a, b, duration float64) float64 {
	return LerpF(a, b, 1-math.Cos(t/duration*math.Pi*0.5))
}

// EaseOut eases from a to b with the inverse curve of EaseIn.
func EaseOut(t, a, b, duration float64) float64 {
	return LerpF(a, b, math.Cos(t/duration*math.Pi*0.5))
}
