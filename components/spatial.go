// Package components defines the capability blocks an actor is assembled from.
package components

import "gonum.org/v1/gonum/spatial/r3"

// Transform represents an actor's placement in the world.
type Transform struct {
	Translation r3.Vec
	Rotation    r3.Vec // radians, applied Z then Y then X
	Scale       r3.Vec
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{Scale: r3.Vec{X: 1, Y: 1, Z: 1}}
}

// Kinematics represents an actor's motion state.
type Kinematics struct {
	Velocity r3.Vec // units per frame
	Gravity  r3.Vec // unit vector, zero when the actor has no gravity
}
