//go:build js && wasm

package main

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecdsa/pkg/curves"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
	"github.com/smallyu/go-ecdsa/pkg/weierstrass"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECDSA WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECDSA", map[string]interface{}{
		"GenerateKeyPair": js.FuncOf(GenerateKeyPair),
		"Sign":            js.FuncOf(Sign),
		"Verify":          js.FuncOf(Verify),
	})

	<-c
}

func scheme() (*ecdsa.Scheme, error) {
	grp := curves.Secp256k1()
	return ecdsa.New(grp.Curve, grp.G, grp.N)
}

// GenerateKeyPair() -> {d, qx, qy} (hex strings) or {error}
func GenerateKeyPair(this js.Value, args []js.Value) interface{} {
	s, err := scheme()
	if err != nil {
		return errObject(err)
	}

	kp, err := s.GenerateKeyPair(rand.Reader)
	if err != nil {
		return errObject(err)
	}

	qx, qy, _ := kp.Q.Coordinates()
	return map[string]interface{}{
		"d":  kp.D.Text(16),
		"qx": qx.Text(16),
		"qy": qy.Text(16),
	}
}

// Sign(dHex, digestHex) -> {r, s} (hex strings) or {error}
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return errObject(fmt.Errorf("Sign expects (dHex, digestHex)"))
	}

	s, err := scheme()
	if err != nil {
		return errObject(err)
	}

	d, ok := new(big.Int).SetString(args[0].String(), 16)
	if !ok {
		return errObject(fmt.Errorf("invalid private key hex"))
	}
	z, ok := new(big.Int).SetString(args[1].String(), 16)
	if !ok {
		return errObject(fmt.Errorf("invalid digest hex"))
	}

	sig, err := s.Sign(rand.Reader, d, z)
	if err != nil {
		return errObject(err)
	}

	return map[string]interface{}{
		"r": sig.R.Text(16),
		"s": sig.S.Text(16),
	}
}

// Verify(qxHex, qyHex, digestHex, rHex, sHex) -> {valid} or {error}
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 5 {
		return errObject(fmt.Errorf("Verify expects (qxHex, qyHex, digestHex, rHex, sHex)"))
	}

	s, err := scheme()
	if err != nil {
		return errObject(err)
	}

	vals := make([]*big.Int, 5)
	for i, arg := range args {
		v, ok := new(big.Int).SetString(arg.String(), 16)
		if !ok {
			return errObject(fmt.Errorf("argument %d is not valid hex", i))
		}
		vals[i] = v
	}

	q := weierstrass.NewPoint(vals[0], vals[1])
	valid := s.Verify(q, vals[2], &ecdsa.Signature{R: vals[3], S: vals[4]})

	return map[string]interface{}{
		"valid": valid,
	}
}

func errObject(err error) map[string]interface{} {
	return map[string]interface{}{
		"error": err.Error(),
	}
}
