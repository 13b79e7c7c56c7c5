/*
Package dfield implements a sparse distance field over integer pixels.

The field caches, per pixel, the offset vector to the closest known point
of the path painted so far. Painting rasterizes a corridor around each new
path segment with a DDA sweep; querying is a map lookup. This turns the
point-to-polyline distance computation inside the curve fitter's hot loop
into O(1)-average work.

The field is only ever valid for the currently active curve segment.
Starting a new segment resets it.

# BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package dfield

import (
	"image"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/inklab/curvefit/geom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dfield'
func tracer() tracing.Trace {
	return tracing.Select("dfield")
}

// Field is a sparse mapping from integer pixel coordinates to the nearest
// known offset vector toward the painted path. Cells are stored in a sorted
// map keyed by packed coordinates, so strokes may extend into negative
// coordinates freely.
//
// A cell's value only ever improves: a write replaces the stored offset
// only if the candidate is strictly closer (smaller squared magnitude);
// ties keep the existing value.
type Field struct {
	radius int          // corridor half-width R, in pixels
	cells  *treemap.Map // packed pixel coordinate -> geom.Pair offset
}

// New creates an empty field with corridor half-width radius (in pixels).
// A radius below 1 is clamped to 1.
func New(radius int) *Field {
	if radius < 1 {
		radius = 1
	}
	return &Field{
		radius: radius,
		cells:  treemap.NewWith(utils.Int64Comparator),
	}
}

// Pack a pixel coordinate into a single sortable key.
func key(at image.Point) int64 {
	return int64(at.X)<<32 | int64(uint32(at.Y))
}

// Radius returns the corridor half-width R.
func (f *Field) Radius() int {
	return f.radius
}

// Len returns the number of painted cells.
func (f *Field) Len() int {
	return f.cells.Size()
}

// Reset empties the field. Called whenever a new curve segment is started.
func (f *Field) Reset() {
	f.cells.Clear()
}

// stamp writes a candidate offset at a pixel, closer-wins.
func (f *Field) stamp(at image.Point, offset geom.Pair) {
	k := key(at)
	if v, ok := f.cells.Get(k); ok {
		if v.(geom.Pair).SquaredMagnitude() <= offset.SquaredMagnitude() {
			return
		}
	}
	f.cells.Put(k, offset)
}

// lookup returns the stored offset at a pixel, or (R,R) — the maximum
// representable distance — for unpainted cells.
func (f *Field) lookup(at image.Point) geom.Pair {
	if v, ok := f.cells.Get(key(at)); ok {
		return v.(geom.Pair)
	}
	return geom.P(float64(f.radius), float64(f.radius))
}

// PaintStrip rasterizes a corridor of half-width R around the straight
// segment from one pixel to another. The sweep is a DDA: it steps along the
// segment and across it with step counts max(|Δx|,|Δy|) on each axis,
// interpolating a candidate offset vector at every visited pixel.
func (f *Field) PaintStrip(from, to image.Point) {
	a := geom.FromPixel(from)
	b := geom.FromPixel(to)
	dir := b - a
	perp := geom.P(-dir.Y(), dir.X()).Unit()
	if perp.IsNaN() {
		// zero-length segment, nothing to sweep along
		f.PaintEndCap(to)
		return
	}
	w := perp.Scaled(float64(f.radius))
	span := w.Scaled(2)
	hsteps := maxAbs(to.X-from.X, to.Y-from.Y)
	vsteps := int(math.Max(math.Abs(span.X()), math.Abs(span.Y())))
	if hsteps < 1 {
		hsteps = 1
	}
	if vsteps < 1 {
		vsteps = 1
	}
	hstep := dir.Scaled(1 / float64(hsteps))
	vstep := span.Scaled(1 / float64(vsteps))
	for i := 0; i <= hsteps; i++ {
		center := a + hstep.Scaled(float64(i))
		for j := 0; j <= vsteps; j++ {
			offset := w.Scaled(-1) + vstep.Scaled(float64(j))
			f.stamp((center + offset).Pixel(), offset)
		}
	}
	tracer().Debugf("painted strip %v - %v, %d cells", from, to, f.Len())
}

// PaintEndCap stamps a square of side 2R centered on a pixel with literal
// pixel−at offsets, so the open end of the path is never reported as "far"
// before the corridor catches up.
func (f *Field) PaintEndCap(at image.Point) {
	r := f.radius
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			f.stamp(image.Pt(at.X+dx, at.Y+dy), geom.P(float64(dx), float64(dy)))
		}
	}
}

// Query returns the nearest known offset vector at a pixel. The result is
// the per-axis absolute-value minimum of the cell itself and the cell
// directly above, (x,y+1); unpainted cells default to (R,R).
//
// Only the cell above is consulted, never (x,y-1). The fit thresholds were
// calibrated against this asymmetric read, so it stays.
func (f *Field) Query(at image.Point) geom.Pair {
	a := f.lookup(at)
	b := f.lookup(image.Pt(at.X, at.Y+1))
	return geom.P(absMin(a.X(), b.X()), absMin(a.Y(), b.Y()))
}

func maxAbs(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}

func absMin(a, b float64) float64 {
	if math.Abs(b) < math.Abs(a) {
		return b
	}
	return a
}
