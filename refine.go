package curvefit

import (
	"image"

	"github.com/inklab/curvefit/geom"
)

const (
	// forceStep is the fixed step size applied to the accumulated forces
	// on each iteration.
	forceStep = 6.0 / 9.0
	// endWeight amplifies force contributions near the curve ends, which
	// resists hooking at the endpoints.
	endWeight = 10.0
	// damping pulls the interior controls back toward the chord midpoint
	// by this fraction per iteration.
	damping = 0.03
)

// refine attempts to absorb one new end point into the active segment.
// It sets seg.Status and, on Success, leaves the refined control points
// and final error in place. On FailCorner nothing is touched; on
// FailMaxed the segment is restored to its pre-attempt state exactly.
func (c *Curve) refine(seg *Segment, at image.Point) {
	if c.isCorner(seg, at) {
		seg.Status = FailCorner
		tracer().Infof("corner at %v, freezing segment at %s", at, seg.C3)
		return
	}

	// The rollback snapshot is taken before the segment is touched, so
	// that a budget-exhausted refinement restores the pre-attempt shape
	// exactly, end anchor included.
	snapshot := *seg

	// Extend: move the end anchor and carry C2 along as a first guess.
	oldEnd := seg.C3.Pixel()
	end := geom.FromPixel(at)
	seg.C2 += end - seg.C3
	seg.C3 = end
	c.field.PaintStrip(oldEnd, at)
	c.field.PaintEndCap(at)

	mid := seg.C0.Mid(seg.C3)
	n := c.params.Samples
	converged := false
	for iter := 0; iter < c.params.MaxIterations; iter++ {
		var f1, f2 geom.Pair
		var errsum float64
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			offset := c.field.Query(seg.PointAt(t).Pixel())
			d := offset.Magnitude()
			w1 := t * (1 - t) * (1 - t)
			w2 := t * t * (1 - t)
			if t < 0.1 || t > 0.9 {
				w1 *= endWeight
				w2 *= endWeight
			}
			f1 += offset.Scaled(d * w1)
			f2 += offset.Scaled(d * w2)
			errsum += offset.SquaredMagnitude()
		}
		// Damping: the update step subtracts the force, so adding the
		// midpoint offset here pulls the controls back toward the chord.
		f1 += (seg.C1 - mid).Scaled(damping)
		f2 += (seg.C2 - mid).Scaled(damping)
		if seg.Constrained() {
			// C1 may only move along the inherited tangent.
			f1 = seg.ConstrainTo.Scaled(seg.ConstrainTo.Dot(f1))
		}
		seg.C1 -= f1.Scaled(forceStep)
		seg.C2 -= f2.Scaled(forceStep)
		seg.Err = errsum / float64(n)
		tracer().Debugf("iteration %d: err = %.4g", iter, seg.Err)
		if seg.Err < c.params.ErrThreshold {
			converged = true
			break
		}
	}
	if !converged {
		*seg = snapshot
		seg.Status = FailMaxed
		tracer().Infof("refinement maxed out at %v, segment rolled back", at)
		return
	}
	seg.Status = Success
}
