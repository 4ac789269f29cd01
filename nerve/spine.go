// Package nerve provides the per-actor state machine used by map actors.
//
// A Spine holds the current nerve (state) and the number of frames spent in
// it. The step counter is measured in frames and advances by the frame delta,
// so it may be fractional when the scene runs at a variable rate.
package nerve

import (
	"fmt"
	"math"
)

// Spine is a nerve holder parameterised by the actor's own nerve enum.
type Spine[N comparable] struct {
	current N
	step    float64
	fresh   bool
	ready   bool
}

// Init sets the initial nerve. It may only be called once.
func (s *Spine[N]) Init(n N) {
	if s.ready {
		panic("nerve: spine initialised twice")
	}
	s.ready = true
	s.Set(n)
}

// Set enters nerve n. The step restarts at 0 even when n is the current nerve.
func (s *Spine[N]) Set(n N) {
	s.current = n
	s.step = 0
	s.fresh = true
}

// Current returns the active nerve.
func (s *Spine[N]) Current() N {
	s.mustBeReady()
	return s.current
}

// Step returns the frames spent in the active nerve.
func (s *Spine[N]) Step() float64 {
	s.mustBeReady()
	return s.step
}

// Ready reports whether Init has been called.
func (s *Spine[N]) Ready() bool { return s.ready }

// Update advances the step by deltaFrames. A nerve entered since the last
// update keeps step 0 for its first processed frame.
func (s *Spine[N]) Update(deltaFrames float64) {
	if !s.ready {
		return
	}
	if s.fresh {
		s.fresh = false
		return
	}
	s.step += deltaFrames
}

// IsFirstStep reports whether this is the first frame of the nerve.
func (s *Spine[N]) IsFirstStep() bool { return s.Step() == 0 }

// IsGreaterStep reports Step() > n.
func (s *Spine[N]) IsGreaterStep(n float64) bool { return s.Step() > n }

// IsGreaterEqualStep reports Step() >= n.
func (s *Spine[N]) IsGreaterEqualStep(n float64) bool { return s.Step() >= n }

// IsLessStep reports Step() < n.
func (s *Spine[N]) IsLessStep(n float64) bool { return s.Step() < n }

// Rate returns Step()/n without clamping, or 1 when n <= 0.
func (s *Spine[N]) Rate(n float64) float64 {
	if n <= 0 {
		return 1
	}
	return s.Step() / n
}

// Value interpolates from..to by the clamped rate over n frames.
func (s *Spine[N]) Value(n, from, to float64) float64 {
	t := math.Min(math.Max(s.Rate(n), 0), 1)
	return from + (to-from)*t
}

// Name formats the current nerve for telemetry. Unready spines report "".
func (s *Spine[N]) Name() string {
	if !s.ready {
		return ""
	}
	return fmt.Sprint(s.current)
}

func (s *Spine[N]) mustBeReady() {
	if !s.ready {
		panic("nerve: spine read before Init")
	}
}
