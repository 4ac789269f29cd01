package actor

import "gonum.org/v1/gonum/spatial/r3"

// Step runs one frame of movement for h: the spine advances, velocity is
// integrated, then the host's own logic runs and its animations advance.
func Step(h Host, f *Frame) {
	a := h.Base()
	if a.Dead {
		return
	}
	if a.Spine != nil {
		a.Spine.Update(f.DeltaFrames)
	}
	a.Translation = r3.Add(a.Translation, r3.Scale(f.DeltaFrames, a.Velocity))

	h.Movement(f)

	if a.Model != nil {
		a.Model.Advance(f.DeltaFrames)
	}
}

// CalcMtx runs the matrix pass for h and poses the model's joints.
func CalcMtx(h Host, f *Frame) {
	a := h.Base()
	if a.Dead {
		return
	}
	if c, ok := h.(MtxCalculator); ok {
		c.CalcAndSetBaseMtx(f)
	} else {
		a.CalcDefaultMtx()
	}
	if a.Model != nil {
		a.Model.UpdateJoints(a.BaseMtx)
		if j, ok := h.(JointCalculator); ok {
			j.CalcJoints(f)
		}
	}
}
