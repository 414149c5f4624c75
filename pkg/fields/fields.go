package fields

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned when an element has no multiplicative inverse,
// i.e. it shares a common factor with the modulus.
var ErrNoInverse = errors.New("element has no modular inverse")

// Fp is the field of integers modulo the prime P.
// Every operation returns a fresh value reduced into [0, P) and never
// mutates its arguments, so values can be shared freely across goroutines.
type Fp struct {
	P *big.Int
}

// New returns the prime field with modulus p.
func New(p *big.Int) Fp {
	return Fp{P: p}
}

// Reduce maps x into [0, P).
func (f Fp) Reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, f.P)
}

// Add returns (x + y) mod P.
func (f Fp) Add(x, y *big.Int) *big.Int {
	sum := new(big.Int).Add(x, y)
	return sum.Mod(sum, f.P)
}

// Sub returns (x - y) mod P. The modulus is added before reduction so the
// intermediate value never goes negative.
func (f Fp) Sub(x, y *big.Int) *big.Int {
	diff := new(big.Int).Sub(x, y)
	diff.Add(diff, f.P)
	return diff.Mod(diff, f.P)
}

// Mul returns (x * y) mod P.
func (f Fp) Mul(x, y *big.Int) *big.Int {
	prod := new(big.Int).Mul(x, y)
	return prod.Mod(prod, f.P)
}

// Neg returns the additive inverse of x, i.e. P - (x mod P), with 0 mapping
// to 0.
func (f Fp) Neg(x *big.Int) *big.Int {
	r := f.Reduce(x)
	if r.Sign() == 0 {
		return r
	}
	return r.Sub(f.P, r)
}

// Inv returns the multiplicative inverse of x via the extended Euclidean
// algorithm. It fails with ErrNoInverse when gcd(x, P) != 1, in particular
// when x is congruent to zero.
func (f Fp) Inv(x *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(x, f.P)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}

// Div returns x * y^-1 mod P.
func (f Fp) Div(x, y *big.Int) (*big.Int, error) {
	inv, err := f.Inv(y)
	if err != nil {
		return nil, err
	}
	return f.Mul(x, inv), nil
}
