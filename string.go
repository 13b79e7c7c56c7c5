package curvefit

import (
	"fmt"

	"github.com/inklab/curvefit/geom"
)

// AsString renders a fitted curve in MetaPost-flavored notation, e.g.
//
//	(0,0) .. controls (6.6667,0.0000) and (13.3333,0.0000)
//	 .. (20,0)
//
// It is a debugging and tracing aid; consumers render from Segments().
func AsString(c *Curve) string {
	if c == nil || c.N() == 0 {
		return "<empty curve>"
	}
	s := ptstring(c.segs[0].C0, false)
	for i := range c.segs {
		seg := &c.segs[i]
		s += fmt.Sprintf(" .. controls %s and %s\n .. %s",
			ptstring(seg.C1, true), ptstring(seg.C2, true), ptstring(seg.C3, false))
	}
	return s
}

func ptstring(p geom.Pair, iscontrol bool) string {
	if p.IsNaN() {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
