package curvefit

import (
	"image"
	"math/cmplx"

	"github.com/inklab/curvefit/dfield"
	"github.com/inklab/curvefit/geom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvefit'
func tracer() tracing.Trace {
	return tracing.Select("curvefit")
}

// Curve is an incremental fitter for one freehand stroke: an append-only
// sequence of cubic Bezier segments plus a distance field that is valid
// only for the last (active) segment. Exactly the last segment is mutable;
// earlier segments are frozen once superseded.
//
// A Curve is single-threaded. Independent concurrent strokes need
// independent Curve instances; within one instance there is nothing to
// lock because nothing suspends.
type Curve struct {
	segs   []Segment
	field  *dfield.Field
	params Params
}

// NewCurve creates an empty curve with default tuning.
func NewCurve() *Curve {
	return NewCurveWith(DefaultParams())
}

// NewCurveWith creates an empty curve with the given tuning. Out-of-range
// parameter values are replaced by their defaults.
func NewCurveWith(params Params) *Curve {
	params = params.clamped()
	return &Curve{
		params: params,
		field:  dfield.New(params.FieldRadius),
	}
}

// StartCurve begins a new stroke: the curve is reset to one degenerate
// segment with all four control points at the given pixel, and the
// distance field is cleared.
func (c *Curve) StartCurve(at image.Point) {
	c.segs = c.segs[:0]
	c.segs = append(c.segs, newSegment(geom.FromPixel(at)))
	c.field.Reset()
	tracer().Infof("curve started at %v", at)
}

// AddToCurve ingests the next sample point of the stroke, in arrival
// order, and returns a snapshot of the segment that absorbed it (or, when
// the fit failed twice in a row, of the failed fresh segment). Samples
// closer than the simplification radius to the active end are dropped and
// the active segment is returned unchanged.
//
// A non-Success status from the previous call makes this call start a new
// segment first: unconstrained after FailCorner, constrained to the
// predecessor's exit tangent after FailMaxed.
//
// Panics if StartCurve has not been called.
func (c *Curve) AddToCurve(at image.Point) Segment {
	if len(c.segs) == 0 {
		panic("cannot add to curve before StartCurve")
	}
	active := c.active()
	if (geom.FromPixel(at) - active.C3).Magnitude() < c.params.SimplifyRadius {
		return *active
	}
	return c.addPoint(at, false)
}

func (c *Curve) addPoint(at image.Point, retried bool) Segment {
	active := c.active()
	switch active.Status {
	case FailCorner:
		// A sharp corner forfeits tangent continuity.
		c.pushSegment(geom.Pair(cmplx.NaN()))
		active = c.active()
	case FailMaxed:
		// The failed segment's shape is still a useful direction hint.
		c.pushSegment(active.ExitDir(c.params.TangentMode))
		active = c.active()
	}
	c.refine(active, at)
	if active.Status != Success && !retried {
		// A status transition always retries the same point exactly once,
		// landing it in the freshly prepared segment.
		return c.addPoint(at, true)
	}
	return *active
}

// pushSegment freezes the active segment and appends a new degenerate one
// anchored at its end. The constraint may be the NaN pair (unconstrained);
// the distance field starts over for the new segment.
func (c *Curve) pushSegment(constrain geom.Pair) {
	end := c.active().C3
	seg := newSegment(end)
	seg.ConstrainTo = constrain
	c.segs = append(c.segs, seg)
	c.field.Reset()
	tracer().Infof("segment %d started at %s, constrained: %v",
		len(c.segs)-1, end, seg.Constrained())
}

func (c *Curve) active() *Segment {
	return &c.segs[len(c.segs)-1]
}

// N returns the number of segments fitted so far.
func (c *Curve) N() int {
	return len(c.segs)
}

// Segment returns a snapshot of segment i, in stroke order.
func (c *Curve) Segment(i int) Segment {
	return c.segs[i]
}

// Segments returns a snapshot of all segments fitted so far.
func (c *Curve) Segments() []Segment {
	segs := make([]Segment, len(c.segs))
	copy(segs, c.segs)
	return segs
}

// Params returns the tuning in effect for this curve.
func (c *Curve) Params() Params {
	return c.params
}
