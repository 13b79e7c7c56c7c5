package geom

import (
	"image"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	if !(p + q).IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", p+q)
	}
}

func TestScaledDot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(2, -1).Scaled(3)
	if !p.Equal(P(6, -3)) {
		t.Errorf("Expected (6,-3), got %v", p)
	}
	if d := P(1, 2).Dot(P(3, 4)); d != 11 {
		t.Errorf("Expected dot product 11, got %g", d)
	}
}

func TestMagnitude(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 4)
	if !Is0(p.Magnitude() - 5) {
		t.Errorf("Expected magnitude 5, got %g", p.Magnitude())
	}
	if !Is0(p.SquaredMagnitude() - 25) {
		t.Errorf("Expected squared magnitude 25, got %g", p.SquaredMagnitude())
	}
}

func TestUnit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	u := P(0, -7).Unit()
	if !u.Equal(P(0, -1)) {
		t.Errorf("Expected unit vector (0,-1), got %v", u)
	}
}

func TestUnitOfZeroVectorIsNaN(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	u := Origin.Unit()
	if !u.IsNaN() {
		t.Errorf("Expected NaN pair for unit of zero vector, got %v", u)
	}
}

func TestMid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := P(0, 0).Mid(P(10, 4))
	if !m.Equal(P(5, 2)) {
		t.Errorf("Expected midpoint (5,2), got %v", m)
	}
}

func TestPixelRounding(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if px := P(1.4, -1.6).Pixel(); px != image.Pt(1, -2) {
		t.Errorf("Expected pixel (1,-2), got %v", px)
	}
	if px := P(2.5, 0.49).Pixel(); px != image.Pt(3, 0) {
		t.Errorf("Expected pixel (3,0), got %v", px)
	}
	if !FromPixel(image.Pt(-4, 7)).Equal(P(-4, 7)) {
		t.Fail()
	}
}
