package fields

import (
	"errors"
	"math/big"
	"testing"
)

func TestAdd(t *testing.T) {
	f := New(big.NewInt(11))

	sum := f.Add(big.NewInt(4), big.NewInt(10))
	if sum.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("4 + 10 mod 11 = %s, want 3", sum)
	}
}

func TestSub(t *testing.T) {
	f := New(big.NewInt(11))

	// no wrap-around
	d := f.Sub(big.NewInt(10), big.NewInt(4))
	if d.Cmp(big.NewInt(6)) != 0 {
		t.Errorf("10 - 4 mod 11 = %s, want 6", d)
	}

	// wraps below zero
	d = f.Sub(big.NewInt(4), big.NewInt(10))
	if d.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("4 - 10 mod 11 = %s, want 5", d)
	}
}

func TestMul(t *testing.T) {
	f := New(big.NewInt(11))

	p := f.Mul(big.NewInt(4), big.NewInt(10))
	if p.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("4 * 10 mod 11 = %s, want 7", p)
	}
}

func TestNeg(t *testing.T) {
	f := New(big.NewInt(11))

	n := f.Neg(big.NewInt(4))
	if n.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("-4 mod 11 = %s, want 7", n)
	}

	if f.Neg(big.NewInt(0)).Sign() != 0 {
		t.Error("-0 should be 0")
	}

	// argument beyond the modulus is reduced first
	n = f.Neg(big.NewInt(15))
	if n.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("-15 mod 11 = %s, want 7", n)
	}
}

func TestInv(t *testing.T) {
	f := New(big.NewInt(11))

	inv, err := f.Inv(big.NewInt(4))
	if err != nil {
		t.Fatalf("Inv failed: %v", err)
	}
	if inv.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("4^-1 mod 11 = %s, want 3", inv)
	}

	// x * x^-1 = 1 for every nonzero element
	for x := int64(1); x < 11; x++ {
		inv, err := f.Inv(big.NewInt(x))
		if err != nil {
			t.Fatalf("Inv(%d) failed: %v", x, err)
		}
		if f.Mul(big.NewInt(x), inv).Cmp(big.NewInt(1)) != 0 {
			t.Errorf("%d * %s != 1 mod 11", x, inv)
		}
	}
}

func TestInvZero(t *testing.T) {
	f := New(big.NewInt(11))

	if _, err := f.Inv(big.NewInt(0)); !errors.Is(err, ErrNoInverse) {
		t.Errorf("Inv(0) error = %v, want ErrNoInverse", err)
	}
}

func TestDiv(t *testing.T) {
	f := New(big.NewInt(11))

	q, err := f.Div(big.NewInt(4), big.NewInt(10))
	if err != nil {
		t.Fatalf("Div failed: %v", err)
	}
	if q.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("4 / 10 mod 11 = %s, want 7", q)
	}

	if _, err := f.Div(big.NewInt(4), big.NewInt(0)); !errors.Is(err, ErrNoInverse) {
		t.Errorf("Div by 0 error = %v, want ErrNoInverse", err)
	}
}

func TestReduce(t *testing.T) {
	f := New(big.NewInt(11))

	r := f.Reduce(big.NewInt(-5))
	if r.Cmp(big.NewInt(6)) != 0 {
		t.Errorf("-5 mod 11 = %s, want 6", r)
	}
}

func TestOperandsNotMutated(t *testing.T) {
	f := New(big.NewInt(11))

	x, y := big.NewInt(4), big.NewInt(10)
	f.Add(x, y)
	f.Sub(x, y)
	f.Mul(x, y)
	f.Neg(x)

	if x.Cmp(big.NewInt(4)) != 0 || y.Cmp(big.NewInt(10)) != 0 {
		t.Errorf("operands mutated: x=%s y=%s", x, y)
	}
}
