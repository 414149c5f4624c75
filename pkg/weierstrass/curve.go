package weierstrass

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecdsa/pkg/fields"
)

// Common errors returned by curve operations.
var (
	ErrPointNotOnCurve = errors.New("point is not on the curve")
	ErrSingularCurve   = errors.New("curve parameters are singular")
	ErrInvalidScalar   = errors.New("scalar must be a non-nil integer")
)

// Curve is a short Weierstrass curve y^2 = x^3 + A*x + B over the prime
// field F_P. The parameters are fixed at construction and never mutated, so
// a Curve is safe for concurrent use.
type Curve struct {
	A, B, P *big.Int
}

// NewCurve returns the curve y^2 = x^3 + a*x + b over F_p. The coefficients
// are reduced mod p. Parameter sets with a singular discriminant
// (4a^3 + 27b^2 = 0 mod p) are rejected: they do not define a group.
func NewCurve(a, b, p *big.Int) (*Curve, error) {
	if p == nil || p.Sign() <= 0 {
		return nil, fmt.Errorf("field modulus must be a positive prime, got %v", p)
	}
	if a == nil || b == nil {
		return nil, errors.New("curve coefficients must be non-nil")
	}

	f := fields.New(p)
	c := &Curve{
		A: f.Reduce(a),
		B: f.Reduce(b),
		P: new(big.Int).Set(p),
	}

	// discriminant check: 4a^3 + 27b^2 != 0 mod p
	a3 := f.Mul(f.Mul(c.A, c.A), c.A)
	b2 := f.Mul(c.B, c.B)
	disc := f.Add(f.Mul(big.NewInt(4), a3), f.Mul(big.NewInt(27), b2))
	if disc.Sign() == 0 {
		return nil, ErrSingularCurve
	}

	return c, nil
}

func (c *Curve) field() fields.Fp {
	return fields.New(c.P)
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is a member of every curve group.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}

	f := c.field()
	lhs := f.Mul(p.y, p.y)
	rhs := f.Add(f.Mul(f.Mul(p.x, p.x), p.x), f.Add(f.Mul(c.A, p.x), c.B))
	return lhs.Cmp(rhs) == 0
}

// Negate returns the additive inverse of p, the reflection across the
// x-axis. Infinity is its own inverse.
func (c *Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	return Point{
		x: new(big.Int).Set(p.x),
		y: c.field().Neg(p.y),
	}
}

// Add returns p1 + p2 under the chord-and-tangent group law. Both operands
// must lie on the curve; ErrPointNotOnCurve is returned otherwise.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if !c.IsOnCurve(p1) || !c.IsOnCurve(p2) {
		return Infinity(), ErrPointNotOnCurve
	}
	return c.add(p1, p2)
}

// add implements the group law for operands already known to be on the
// curve. Interior results of scalar multiplication come through here without
// re-validation.
func (c *Curve) add(p1, p2 Point) (Point, error) {
	if p1.IsInfinity() {
		return p2, nil
	}
	if p2.IsInfinity() {
		return p1, nil
	}

	f := c.field()

	if p1.x.Cmp(p2.x) == 0 {
		// Same x: either the same point (tangent case) or an inverse
		// pair summing to infinity. The general slope divides by
		// x2 - x1 = 0, so both must be handled here.
		if p1.y.Cmp(p2.y) == 0 {
			return c.double(p1)
		}
		return Infinity(), nil
	}

	// s = (y2 - y1) / (x2 - x1)
	s, err := f.Div(f.Sub(p2.y, p1.y), f.Sub(p2.x, p1.x))
	if err != nil {
		return Infinity(), err
	}

	x3 := f.Sub(f.Sub(f.Mul(s, s), p1.x), p2.x)
	y3 := f.Sub(f.Mul(s, f.Sub(p1.x, x3)), p1.y)
	return Point{x: x3, y: y3}, nil
}

// Double returns 2p. The operand must lie on the curve.
func (c *Curve) Double(p Point) (Point, error) {
	if !c.IsOnCurve(p) {
		return Infinity(), ErrPointNotOnCurve
	}
	return c.double(p)
}

func (c *Curve) double(p Point) (Point, error) {
	if p.IsInfinity() {
		return Infinity(), nil
	}
	// A point with y = 0 has a vertical tangent and is its own inverse.
	if p.y.Sign() == 0 {
		return Infinity(), nil
	}

	f := c.field()

	// s = (3x^2 + a) / 2y
	num := f.Add(f.Mul(big.NewInt(3), f.Mul(p.x, p.x)), c.A)
	den := f.Mul(big.NewInt(2), p.y)
	s, err := f.Div(num, den)
	if err != nil {
		return Infinity(), err
	}

	x3 := f.Sub(f.Sub(f.Mul(s, s), p.x), p.x)
	y3 := f.Sub(f.Mul(s, f.Sub(p.x, x3)), p.y)
	return Point{x: x3, y: y3}, nil
}

// ScalarMul returns k*p via double-and-add over the bits of k, running in
// time logarithmic in k. k = 0 yields infinity. Negative k is interpreted as
// multiplication of the negated point: k*p = (-k)*(-p).
func (c *Curve) ScalarMul(p Point, k *big.Int) (Point, error) {
	if k == nil {
		return Infinity(), ErrInvalidScalar
	}
	if !c.IsOnCurve(p) {
		return Infinity(), ErrPointNotOnCurve
	}
	if k.Sign() < 0 {
		return c.scalarMul(c.Negate(p), new(big.Int).Neg(k))
	}
	return c.scalarMul(p, k)
}

func (c *Curve) scalarMul(p Point, k *big.Int) (Point, error) {
	acc := Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		var err error
		acc, err = c.double(acc)
		if err != nil {
			return Infinity(), err
		}
		if k.Bit(i) == 1 {
			acc, err = c.add(acc, p)
			if err != nil {
				return Infinity(), err
			}
		}
	}
	return acc, nil
}
