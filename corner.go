package curvefit

import (
	"image"
	"math"

	"github.com/inklab/curvefit/geom"
)

// isCorner reports whether extending seg toward a candidate point would
// bend the path more sharply than the corner angle allows. A degenerate
// (just created) segment is never a corner.
func (c *Curve) isCorner(seg *Segment, at image.Point) bool {
	if seg.C0.Equal(seg.C3) {
		return false
	}
	out := seg.ExitDir(c.params.TangentMode)
	in := (geom.FromPixel(at) - seg.C3).Unit()
	if out.IsNaN() || in.IsNaN() {
		return false
	}
	cos := out.Dot(in)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	angle := math.Acos(cos) / geom.Deg2Rad
	return angle > c.params.CornerAngle
}
