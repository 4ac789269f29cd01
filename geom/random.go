package geom

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
)

var rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

// Seed makes the package random source deterministic.
func Seed(seed uint64) {
	rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Random returns a uniform value in [0, 1).
func Random() float64 {
	return rng.Float64()
}

// RandomFloat returns a uniform value in [min, max).
func RandomFloat(min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// RandomInt returns a uniform integer in [min, max).
func RandomInt(min, max int) int {
	return min + int(rng.Float64()*float64(max-min))
}

// RandomVector returns a vector whose components are uniform in [-r, r).
func RandomVector(r float64) r3.Vec {
	return r3.Vec{
		X: RandomFloat(-r, r),
		Y: RandomFloat(-r, r),
		Z: RandomFloat(-r, r),
	}
}

// IsHalfProbability is a fair coin flip.
func IsHalfProbability() bool {
	return rng.Float64() >= 0.5
}
