package curves

import (
	"crypto/elliptic"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecdsa/pkg/weierstrass"
)

// Group bundles a Weierstrass curve with a distinguished generator G of
// known prime order N. Signature schemes operate on a Group rather than a
// bare curve.
type Group struct {
	Curve *weierstrass.Curve
	G     weierstrass.Point
	N     *big.Int
}

// fromParams builds a Group from standard curve parameters plus the linear
// coefficient a, which elliptic.CurveParams leaves implicit.
func fromParams(params *elliptic.CurveParams, a *big.Int) *Group {
	curve, err := weierstrass.NewCurve(a, params.B, params.P)
	if err != nil {
		// the catalog carries only known-good parameter sets
		panic(fmt.Sprintf("curves: bad parameters for %s: %v", params.Name, err))
	}
	return &Group{
		Curve: curve,
		G:     weierstrass.NewPoint(params.Gx, params.Gy),
		N:     new(big.Int).Set(params.N),
	}
}

// Secp256k1 returns the Bitcoin curve y^2 = x^3 + 7 over its 256-bit prime
// field, with parameters sourced from the decred implementation.
func Secp256k1() *Group {
	return fromParams(secp256k1.S256().Params(), big.NewInt(0))
}

// P256 returns NIST P-256, for which a = p - 3.
func P256() *Group {
	params := elliptic.P256().Params()
	a := new(big.Int).Sub(params.P, big.NewInt(3))
	return fromParams(params, a)
}

// Tiny17 returns the 19-element group of y^2 = x^3 + 2x + 2 over F_17,
// generated by (5, 1). Useful for exercising every branch of the group law
// with hand-checkable numbers; worthless for security.
func Tiny17() *Group {
	curve, err := weierstrass.NewCurve(big.NewInt(2), big.NewInt(2), big.NewInt(17))
	if err != nil {
		panic(fmt.Sprintf("curves: bad parameters for tiny17: %v", err))
	}
	return &Group{
		Curve: curve,
		G:     weierstrass.NewPoint(big.NewInt(5), big.NewInt(1)),
		N:     big.NewInt(19),
	}
}
