package weierstrass

import (
	"fmt"
	"math/big"
)

// Point is an element of a curve group: either the point at infinity (the
// group identity) or an affine coordinate pair. The two cases are distinct
// variants; (0, 0) is an ordinary coordinate pair, not infinity.
//
// Points are immutable values. They are compared with Equal and carry no
// behavior of their own; all arithmetic lives on Curve.
type Point struct {
	x, y *big.Int
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.x == nil
}

// Coordinates returns copies of the affine coordinates. ok is false for the
// point at infinity, which has no coordinates.
func (p Point) Coordinates() (x, y *big.Int, ok bool) {
	if p.IsInfinity() {
		return nil, nil, false
	}
	return new(big.Int).Set(p.x), new(big.Int).Set(p.y), true
}

// Equal reports structural equality: both infinity, or equal coordinates.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
