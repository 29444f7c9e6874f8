package cmd

import (
	"bytes"
	"crypto/rand"
	"encoding"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/mr-shifu/elgamal/core/elgamal"
	"github.com/mr-shifu/elgamal/core/math/curve"
	"github.com/mr-shifu/elgamal/core/math/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err)
	return out
}

func toHex(t *testing.T, v encoding.BinaryMarshaler) string {
	t.Helper()
	data, err := v.MarshalBinary()
	require.NoError(t, err)
	return hex.EncodeToString(data)
}

func TestCLI_Roundtrip(t *testing.T) {
	for _, group := range []curve.Curve{curve.Secp256k1{}, curve.Edwards25519{}, curve.Ristretto255{}} {
		t.Run(group.Name(), func(t *testing.T) {
			receiver, public := sample.ScalarPointPair(rand.Reader, group)
			m0 := sample.Scalar(rand.Reader, group)
			m1 := sample.Scalar(rand.Reader, group)
			x := sample.Scalar(rand.Reader, group)

			flag := "--curve=" + group.Name()
			m0G := mustRun(t, flag, "base", toHex(t, m0))
			assert.Equal(t, toHex(t, m0.ActOnBase()), m0G)
			m1G := mustRun(t, flag, "base", toHex(t, m1))

			c0 := mustRun(t, flag, "encrypt", toHex(t, sample.Scalar(rand.Reader, group)), toHex(t, public), m0G)
			c1 := mustRun(t, flag, "encrypt", toHex(t, sample.Scalar(rand.Reader, group)), toHex(t, public), m1G)

			assert.Equal(t, m0G, mustRun(t, "decrypt", c0, toHex(t, receiver)))

			sum := mustRun(t, "add", c0, c1)
			assert.Equal(t, toHex(t, m0.Add(m1).ActOnBase()), mustRun(t, "decrypt", sum, toHex(t, receiver)))

			diff := mustRun(t, "sub", c0, c1)
			assert.Equal(t, toHex(t, m0.Sub(m1).ActOnBase()), mustRun(t, "decrypt", diff, toHex(t, receiver)))

			scaled := mustRun(t, "mul", c0, toHex(t, x))
			assert.Equal(t, toHex(t, m0.Mul(x).ActOnBase()), mustRun(t, "decrypt", scaled, toHex(t, receiver)))

			fp := mustRun(t, "fingerprint", sum)
			assert.Len(t, fp, 128)
		})
	}
}

func TestCLI_CurveFromEnv(t *testing.T) {
	t.Setenv("ELGAMAL_CURVE", "ristretto255")
	group := curve.Ristretto255{}
	s := sample.Scalar(rand.Reader, group)

	assert.Equal(t, toHex(t, s.ActOnBase()), mustRun(t, "base", toHex(t, s)))
}

func TestCLI_Errors(t *testing.T) {
	_, err := run(t, "--curve=p256", "base", "00")
	assert.ErrorIs(t, err, curve.ErrUnknownCurve)

	_, err = run(t, "base", "zz")
	assert.Error(t, err)

	_, err = run(t, "add", "00")
	assert.Error(t, err)

	secp := elgamal.Identity(curve.Secp256k1{})
	ed := elgamal.Identity(curve.Edwards25519{})
	_, err = run(t, "add", toHex(t, secp), toHex(t, ed))
	assert.ErrorIs(t, err, elgamal.ErrCurveMismatch)
}
