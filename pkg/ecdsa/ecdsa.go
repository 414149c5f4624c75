// Package ecdsa implements ECDSA signing and verification over any short
// Weierstrass curve group.
//
// The randomness source is an explicit io.Reader argument on key generation
// and signing, never an implicit global, so the scheme can be driven by
// deterministic readers in tests. Production callers pass crypto/rand.Reader.
package ecdsa

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-ecdsa/pkg/fields"
	"github.com/smallyu/go-ecdsa/pkg/weierstrass"
)

// Common errors returned by the scheme.
var (
	ErrInvalidGenerator  = errors.New("generator is not a finite point on the curve")
	ErrInvalidOrder      = errors.New("group order must be a positive integer")
	ErrInvalidPrivateKey = errors.New("private key must be in [1, n-1]")
	ErrNonceExhausted    = errors.New("nonce retries exhausted")
)

// maxNonceAttempts bounds the retry loop on degenerate nonces (r == 0 or
// s == 0). With honest randomness a single retry is already astronomically
// unlikely on real curves; hitting the cap means the randomness source is
// broken, which must surface as an error rather than a livelock.
const maxNonceAttempts = 128

// Scheme is an ECDSA context: a curve, a generator G and the generator's
// prime order N. It is immutable after construction and safe for concurrent
// use.
type Scheme struct {
	Curve *weierstrass.Curve
	G     weierstrass.Point
	N     *big.Int
}

// KeyPair holds a private scalar D in [1, N-1] and the public point
// Q = D*G.
type KeyPair struct {
	D *big.Int
	Q weierstrass.Point
}

// Signature is an ECDSA signature pair, both components in [1, N-1].
type Signature struct {
	R, S *big.Int
}

// New returns a Scheme for the given curve, generator and order.
func New(curve *weierstrass.Curve, g weierstrass.Point, n *big.Int) (*Scheme, error) {
	if g.IsInfinity() || !curve.IsOnCurve(g) {
		return nil, ErrInvalidGenerator
	}
	if n == nil || n.Sign() <= 0 {
		return nil, ErrInvalidOrder
	}
	return &Scheme{
		Curve: curve,
		G:     g,
		N:     new(big.Int).Set(n),
	}, nil
}

// GenerateKeyPair draws a private key uniformly from [1, N-1] using the
// supplied randomness source and derives the public point. Failures of the
// source propagate to the caller.
func (s *Scheme) GenerateKeyPair(random io.Reader) (*KeyPair, error) {
	d, err := randScalar(random, s.N)
	if err != nil {
		return nil, fmt.Errorf("draw private key: %w", err)
	}

	q, err := s.Curve.ScalarMul(s.G, d)
	if err != nil {
		return nil, err
	}

	return &KeyPair{D: d, Q: q}, nil
}

// PublicKey derives Q = d*G for an existing private key.
func (s *Scheme) PublicKey(d *big.Int) (weierstrass.Point, error) {
	if err := s.checkPrivateKey(d); err != nil {
		return weierstrass.Infinity(), err
	}
	return s.Curve.ScalarMul(s.G, d)
}

// Sign produces a signature over the digest z with private key d. z is
// reduced mod N; callers hashing full messages should pre-truncate with
// HashToInt.
//
// A fresh nonce k is drawn from the randomness source on every attempt and
// never cached or reused; the degenerate outcomes r == 0 and s == 0 are
// retried up to maxNonceAttempts before failing with ErrNonceExhausted.
func (s *Scheme) Sign(random io.Reader, d, z *big.Int) (*Signature, error) {
	if err := s.checkPrivateKey(d); err != nil {
		return nil, err
	}

	fn := fields.New(s.N)
	e := fn.Reduce(z)

	for attempt := 0; attempt < maxNonceAttempts; attempt++ {
		k, err := randScalar(random, s.N)
		if err != nil {
			return nil, fmt.Errorf("draw nonce: %w", err)
		}

		rp, err := s.Curve.ScalarMul(s.G, k)
		if err != nil {
			return nil, err
		}
		rx, _, ok := rp.Coordinates()
		if !ok {
			continue
		}

		r := fn.Reduce(rx)
		if r.Sign() == 0 {
			continue
		}

		// s = k^-1 (z + r*d) mod n; k in [1, n-1] with n prime, so
		// the inverse always exists.
		kInv, err := fn.Inv(k)
		if err != nil {
			return nil, err
		}
		sig := fn.Mul(kInv, fn.Add(e, fn.Mul(r, d)))
		if sig.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: sig}, nil
	}

	return nil, ErrNonceExhausted
}

// Verify reports whether sig is a valid signature over digest z for public
// key q. Malformed inputs (components outside [1, N-1], q off the curve or
// at infinity) and cryptographically failed verification both yield false;
// Verify never returns an error.
func (s *Scheme) Verify(q weierstrass.Point, z *big.Int, sig *Signature) bool {
	if sig == nil || !inRange(sig.R, s.N) || !inRange(sig.S, s.N) {
		return false
	}
	if q.IsInfinity() || !s.Curve.IsOnCurve(q) {
		return false
	}

	fn := fields.New(s.N)

	w, err := fn.Inv(sig.S)
	if err != nil {
		return false
	}
	u1 := fn.Mul(fn.Reduce(z), w)
	u2 := fn.Mul(sig.R, w)

	p1, err := s.Curve.ScalarMul(s.G, u1)
	if err != nil {
		return false
	}
	p2, err := s.Curve.ScalarMul(q, u2)
	if err != nil {
		return false
	}
	sum, err := s.Curve.Add(p1, p2)
	if err != nil {
		return false
	}

	x, _, ok := sum.Coordinates()
	if !ok {
		return false
	}
	return fn.Reduce(x).Cmp(sig.R) == 0
}

func (s *Scheme) checkPrivateKey(d *big.Int) error {
	if !inRange(d, s.N) {
		return ErrInvalidPrivateKey
	}
	return nil
}

// inRange reports whether x is in [1, n-1].
func inRange(x, n *big.Int) bool {
	return x != nil && x.Sign() > 0 && x.Cmp(n) < 0
}

// randScalar draws a uniform integer in [1, n-1] from random.
func randScalar(random io.Reader, n *big.Int) (*big.Int, error) {
	max := new(big.Int).Sub(n, big.NewInt(1))
	k, err := crand.Int(random, max)
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}

// HashToInt converts a message digest to an integer suitable for signing
// over a group of order n: the digest is truncated to n's bit length, as in
// SEC 1 section 4.1.3. Reduction mod n is left to Sign and Verify.
func HashToInt(hash []byte, n *big.Int) *big.Int {
	orderBits := n.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}

	z := new(big.Int).SetBytes(hash)
	if excess := len(hash)*8 - orderBits; excess > 0 {
		z.Rsh(z, uint(excess))
	}
	return z
}
