// Package curvefit converts a live stream of raw 2D sample points, as
// produced by freehand pointer input, into a compact sequence of cubic
// Bezier segments that approximate the input within a bounded error.
/*

The fitter ingests one point at a time, strictly in arrival order, and
never revises segments it has already committed. Each stroke maps to one
call of StartCurve followed by one AddToCurve per sample:

   c := curvefit.NewCurve()
   c.StartCurve(image.Pt(0, 0))
   for _, pt := range samples {
       seg := c.AddToCurve(pt)
       // seg is a snapshot of the segment that absorbed pt
   }

Fitting works by painting a sparse distance field (package dfield) around
the polyline drawn so far and nudging the two interior control points of
the active segment with forces sampled from that field, for a bounded
number of iterations. When the direction changes too sharply, or when the
error bound cannot be met within the iteration budget, the active segment
is frozen and a new one takes over; the failed point is retried exactly
once against the fresh segment. Failure is reported through the Status
field of the returned segment, never through errors: FailCorner and
FailMaxed are expected control-flow outcomes, not faults.

Capturing pointer events and rendering the resulting segments are the
caller's business; this package does neither.

A Curve instance is not safe for concurrent use. Every point addition is a
bounded, synchronous computation and independent strokes belong in
independent instances, so there is nothing to lock.

Tracing goes to keys 'curvefit', 'dfield' and 'geom' (see package
schuko/tracing).

# BSD License

All rights reserved.

Please refer to the license file for more information.

*/
package curvefit
