package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/elgamal/core/math/curve"
)

func mustReadBits(rand io.Reader, buf []byte) {
	if _, err := io.ReadFull(rand, buf); err != nil {
		panic(fmt.Sprintf("sample: failed to read random bytes: %v", err))
	}
}

// Scalar returns a scalar of group sampled uniformly from rand.
//
// SafeScalarBytes are read and reduced modulo the order, which keeps the bias
// below 2⁻¹²⁸.
func Scalar(rand io.Reader, group curve.Curve) curve.Scalar {
	buf := make([]byte, group.SafeScalarBytes())
	mustReadBits(rand, buf)
	return group.NewScalar().SetNat(new(saferith.Nat).SetBytes(buf))
}

// ScalarPointPair returns x sampled as in Scalar, together with x⋅G.
func ScalarPointPair(rand io.Reader, group curve.Curve) (curve.Scalar, curve.Point) {
	secret := Scalar(rand, group)
	return secret, secret.ActOnBase()
}
