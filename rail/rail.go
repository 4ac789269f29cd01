// Package rail describes authored paths and the per-actor riders that follow
// them.
package rail

import "gonum.org/v1/gonum/spatial/r3"

// Rail is read-only path geometry, shared by every actor bound to it.
type Rail interface {
	TotalLength() float64
	IsLoop() bool
	PointCount() int
	PointPos(i int) r3.Vec
	PointCoord(i int) float64
	// PosAt and DirAt expect a coordinate already wrapped or clamped to
	// [0, TotalLength].
	PosAt(coord float64) r3.Vec
	DirAt(coord float64) r3.Vec
	NearestCoord(pos r3.Vec) float64
	PartLength(i int) float64
}
