package curvefit

import (
	"math/cmplx"

	"github.com/inklab/curvefit/geom"
)

// Status classifies the outcome of the last update attempt on a segment.
// A segment starts Unset and never returns to Unset once it has been
// updated; a new segment always starts Unset.
type Status int8

const (
	// Unset marks a freshly created segment with no update attempt yet.
	Unset Status = iota
	// Success means the last point was absorbed within the error bound.
	Success
	// FailCorner means the last point bent the path too sharply; the
	// segment was frozen untouched and a new segment takes over.
	FailCorner
	// FailMaxed means refinement ran out of iterations; the segment keeps
	// its pre-attempt shape and a continuity hint is carried forward.
	FailMaxed
)

func (s Status) String() string {
	switch s {
	case Unset:
		return "Unset"
	case Success:
		return "Success"
	case FailCorner:
		return "FailCorner"
	case FailMaxed:
		return "FailMaxed"
	}
	return "Unknown"
}

// Segment is one cubic Bezier piece of a fitted curve: start anchor C0,
// interior controls C1 and C2, and end anchor C3. The end anchor grows as
// points are added. ConstrainTo, when set, restricts C1 to move along a
// fixed direction from C0, so that a segment following a non-converging
// predecessor joins it smoothly; it is the NaN pair when absent.
type Segment struct {
	C0, C1, C2, C3 geom.Pair
	ConstrainTo    geom.Pair
	Err            float64 // mean squared fit error of the last refinement
	Status         Status
}

func newSegment(at geom.Pair) Segment {
	return Segment{
		C0:          at,
		C1:          at,
		C2:          at,
		C3:          at,
		ConstrainTo: geom.Pair(cmplx.NaN()),
	}
}

// Constrained is a predicate: does this segment carry a continuity
// constraint for its first interior control?
func (s Segment) Constrained() bool {
	return !s.ConstrainTo.IsNaN()
}

// PointAt evaluates the cubic at parameter t in [0,1].
func (s Segment) PointAt(t float64) geom.Pair {
	u := 1 - t
	p := s.C0.Scaled(u * u * u)
	p += s.C1.Scaled(3 * u * u * t)
	p += s.C2.Scaled(3 * u * t * t)
	p += s.C3.Scaled(t * t * t)
	return p
}

// exitSampleT is the parameter used by TangentSampled: the direction from
// the curve point here to the end anchor tracks the curve's true local
// direction better than the analytic end tangent.
const exitSampleT = 0.95

// ExitDir returns the unit direction of travel at the segment's end
// anchor. The result is the NaN pair for a degenerate segment; callers
// must guard with IsNaN.
func (s Segment) ExitDir(mode TangentMode) geom.Pair {
	if mode == TangentAnalytic {
		return (s.C3 - s.C2).Scaled(3).Unit()
	}
	return (s.C3 - s.PointAt(exitSampleT)).Unit()
}
