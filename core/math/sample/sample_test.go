package sample

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/mr-shifu/elgamal/core/math/curve"
	"github.com/stretchr/testify/assert"
)

func TestSample_Scalar(t *testing.T) {
	for _, group := range []curve.Curve{curve.Secp256k1{}, curve.Edwards25519{}, curve.Ristretto255{}} {
		a := Scalar(rand.Reader, group)
		b := Scalar(rand.Reader, group)
		assert.False(t, a.IsZero())
		assert.False(t, a.Equal(b))
		assert.Equal(t, group.Name(), a.Curve().Name())
	}
}

func TestSample_Deterministic(t *testing.T) {
	group := curve.Secp256k1{}
	seed := bytes.Repeat([]byte{7}, 2*group.SafeScalarBytes())

	a := Scalar(bytes.NewReader(seed), group)
	b := Scalar(bytes.NewReader(seed), group)
	assert.True(t, a.Equal(b))
}

func TestSample_ScalarPointPair(t *testing.T) {
	group := curve.Ristretto255{}
	secret, public := ScalarPointPair(rand.Reader, group)
	assert.True(t, secret.ActOnBase().Equal(public))
}

func TestSample_ShortReaderPanics(t *testing.T) {
	assert.Panics(t, func() {
		Scalar(bytes.NewReader([]byte{1, 2, 3}), curve.Edwards25519{})
	})
}
