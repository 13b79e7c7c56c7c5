package dfield

import (
	"image"
	"testing"

	"github.com/inklab/curvefit/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestQueryDefault(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := New(16)
	if off := f.Query(image.Pt(100, -100)); !off.Equal(geom.P(16, 16)) {
		t.Errorf("Expected unpainted cell to report (16,16), got %v", off)
	}
	if f.Len() != 0 {
		t.Fail()
	}
}

func TestRadiusClamped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if New(0).Radius() != 1 {
		t.Fail()
	}
}

func TestEndCapStampsLiteralOffsets(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := New(3)
	f.PaintEndCap(image.Pt(10, 10))
	assert.Equal(t, 49, f.Len(), "end cap should paint a (2R+1)^2 square")
	assert.True(t, f.Query(image.Pt(10, 10)).Equal(geom.P(0, 0)))
	assert.True(t, f.Query(image.Pt(12, 10)).Equal(geom.P(2, 0)))
	// the read combines with the cell above, (10,9), whose offset (0,-1)
	// is closer on the y axis
	assert.True(t, f.Query(image.Pt(10, 8)).Equal(geom.P(0, -1)))
}

func TestCloserWinsAndTiesKeepExisting(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := New(2)
	f.PaintEndCap(image.Pt(0, 0))
	f.PaintEndCap(image.Pt(4, 0))
	// (1,0) is closer to the first cap; its offset must survive.
	if off := f.Query(image.Pt(1, 0)); !off.Equal(geom.P(1, 0)) {
		t.Errorf("Expected offset (1,0), got %v", off)
	}
	// (2,0) is equidistant; the first writer must survive the tie.
	if off := f.Query(image.Pt(2, 0)); !off.Equal(geom.P(2, 0)) {
		t.Errorf("Expected tie to keep (2,0), got %v", off)
	}
}

func TestStripCenterline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := New(16)
	f.PaintStrip(image.Pt(0, 0), image.Pt(10, 0))
	if off := f.Query(image.Pt(5, 0)); !off.Equal(geom.P(0, 0)) {
		t.Errorf("Expected zero offset on the centerline, got %v", off)
	}
	if off := f.Query(image.Pt(5, 3)); !off.Equal(geom.P(0, 3)) {
		t.Errorf("Expected offset (0,3) above the centerline, got %v", off)
	}
	// below the centerline the cell above wins on the y axis
	if off := f.Query(image.Pt(5, -3)); !off.Equal(geom.P(0, -2)) {
		t.Errorf("Expected offset (0,-2) below the centerline, got %v", off)
	}
}

func TestStripNegativeCoordinates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := New(16)
	f.PaintStrip(image.Pt(0, 0), image.Pt(-8, -8))
	off := f.Query(image.Pt(-4, -4))
	assert.Less(t, off.SquaredMagnitude(), 0.01,
		"centerline pixel in negative quadrant should be near zero, got %v", off)
}

func TestDegenerateStripFallsBackToEndCap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := New(4)
	f.PaintStrip(image.Pt(3, 3), image.Pt(3, 3))
	if off := f.Query(image.Pt(3, 3)); !off.Equal(geom.P(0, 0)) {
		t.Errorf("Expected zero offset at degenerate strip, got %v", off)
	}
}

// The read combines a cell with the cell directly above it, never the one
// below: a query one pixel past the bottom edge of painted ground still
// picks up data, a query one pixel past the top edge does not.
func TestQueryReadsCellAboveOnly(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := New(2)
	f.PaintEndCap(image.Pt(0, 0))
	below := f.Query(image.Pt(0, -3)) // (0,-2) is painted above it
	if !below.Equal(geom.P(0, 2)) {
		t.Errorf("Expected (0,2) just below painted ground, got %v", below)
	}
	above := f.Query(image.Pt(0, 3)) // nothing painted at (0,3) or (0,4)
	if !above.Equal(geom.P(2, 2)) {
		t.Errorf("Expected default (2,2) just above painted ground, got %v", above)
	}
}

func TestReset(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := New(4)
	f.PaintEndCap(image.Pt(0, 0))
	if f.Len() == 0 {
		t.Fatal("expected painted cells before reset")
	}
	f.Reset()
	if f.Len() != 0 {
		t.Fail()
	}
	if off := f.Query(image.Pt(0, 0)); !off.Equal(geom.P(4, 4)) {
		t.Errorf("Expected default offset after reset, got %v", off)
	}
}
