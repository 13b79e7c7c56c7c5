/*
Package geom implements 2D vector algebra for curve fitting:
pairs (points/vectors), pixel rounding, and a handful of numeric
helpers.

# BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package geom

import (
	"fmt"
	"image"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geom'
func tracer() tracing.Trace {
	return tracing.Select("geom")
}

// === Numeric Helpers ========================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type =========================================================

// Pair is a 2D point or vector, backed by a complex number. Addition and
// subtraction of pairs are the native complex operators.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	p = P(Zap(p.X()), Zap(p.Y()))
	return p
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// IsNaN is a predicate: does either coordinate hold a NaN?
// Used to detect the undefined unit vector of a zero-length pair.
func (p Pair) IsNaN() bool {
	return cmplx.IsNaN(p.C())
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Dot returns the dot product of two pairs.
func (p Pair) Dot(p2 Pair) float64 {
	return p.X()*p2.X() + p.Y()*p2.Y()
}

// Magnitude returns the Euclidean length of a pair.
func (p Pair) Magnitude() float64 {
	return cmplx.Abs(p.C())
}

// SquaredMagnitude returns the squared length of a pair. Comparisons of
// distances use this to avoid the square root.
func (p Pair) SquaredMagnitude() float64 {
	return p.X()*p.X() + p.Y()*p.Y()
}

// Unit returns the unit vector pointing in the direction of p.
// The unit vector of a zero-length pair is undefined: the result is a
// NaN pair, which callers must check with IsNaN before use.
func (p Pair) Unit() Pair {
	m := p.Magnitude()
	if Is0(m) {
		tracer().Errorf("unit vector of zero-length pair")
		return Pair(cmplx.NaN())
	}
	return p.Scaled(1 / m)
}

// Mid returns the point halfway between p and p2.
func (p Pair) Mid(p2 Pair) Pair {
	return (p + p2).Scaled(0.5)
}

// === Pixel Conversion =======================================================

// Pixel rounds a pair to the nearest integer pixel.
func (p Pair) Pixel() image.Point {
	return image.Pt(int(math.Round(p.X())), int(math.Round(p.Y())))
}

// FromPixel returns the pair at an integer pixel.
func FromPixel(pt image.Point) Pair {
	return P(float64(pt.X), float64(pt.Y))
}
