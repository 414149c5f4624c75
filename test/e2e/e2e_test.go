package e2e

import (
	"crypto/rand"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/smallyu/go-ecdsa/pkg/curves"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

// TestSignatureLifecycle drives the whole stack: catalog curve, key
// generation, digesting, signing, verification and tamper detection.
func TestSignatureLifecycle(t *testing.T) {
	for name, grp := range map[string]*curves.Group{
		"secp256k1": curves.Secp256k1(),
		"p256":      curves.P256(),
	} {
		t.Run(name, func(t *testing.T) {
			scheme, err := ecdsa.New(grp.Curve, grp.G, grp.N)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			// 1. Key Generation Phase
			alice, err := scheme.GenerateKeyPair(rand.Reader)
			if err != nil {
				t.Fatalf("keygen failed: %v", err)
			}
			bob, err := scheme.GenerateKeyPair(rand.Reader)
			if err != nil {
				t.Fatalf("keygen failed: %v", err)
			}

			// 2. Signing Phase
			msg := []byte("transfer 10 coins to bob")
			digest := sha256.Sum256(msg)
			z := ecdsa.HashToInt(digest[:], scheme.N)

			sig, err := scheme.Sign(rand.Reader, alice.D, z)
			if err != nil {
				t.Fatalf("sign failed: %v", err)
			}

			// 3. Verification Phase
			if !scheme.Verify(alice.Q, z, sig) {
				t.Fatal("alice's signature did not verify under her key")
			}
			if scheme.Verify(bob.Q, z, sig) {
				t.Fatal("alice's signature verified under bob's key")
			}

			// 4. Tamper Phase
			altered := sha256.Sum256([]byte("transfer 99 coins to bob"))
			zAltered := ecdsa.HashToInt(altered[:], scheme.N)
			if scheme.Verify(alice.Q, zAltered, sig) {
				t.Fatal("signature verified over an altered message")
			}

			forged := &ecdsa.Signature{
				R: new(big.Int).Add(sig.R, big.NewInt(1)),
				S: sig.S,
			}
			if scheme.Verify(alice.Q, z, forged) {
				t.Fatal("forged signature verified")
			}
		})
	}
}

// TestDistinctNonces signs the same digest twice and checks the signatures
// differ, i.e. the nonce was drawn fresh both times.
func TestDistinctNonces(t *testing.T) {
	grp := curves.Secp256k1()
	scheme, err := ecdsa.New(grp.Curve, grp.G, grp.N)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	kp, err := scheme.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	digest := sha256.Sum256([]byte("same message"))
	z := ecdsa.HashToInt(digest[:], scheme.N)

	sig1, err := scheme.Sign(rand.Reader, kp.D, z)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	sig2, err := scheme.Sign(rand.Reader, kp.D, z)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if sig1.R.Cmp(sig2.R) == 0 {
		t.Fatal("two signatures share r: nonce was reused")
	}
	if !scheme.Verify(kp.Q, z, sig1) || !scheme.Verify(kp.Q, z, sig2) {
		t.Fatal("one of the signatures did not verify")
	}
}
