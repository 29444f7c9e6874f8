package elgamal

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-shifu/elgamal/core/hash"
	"github.com/mr-shifu/elgamal/core/math/curve"
	"github.com/mr-shifu/elgamal/core/math/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCiphertext_MarshalBinary(t *testing.T) {
	for _, group := range groups {
		t.Run(group.Name(), func(t *testing.T) {
			sender, receiver, public := keys(group)
			_, m := messages(group, 1)
			cipher := Encrypt(sender, public, group.NewBasePoint(), m[0])

			data, err := cipher.MarshalBinary()
			require.NoError(t, err)

			var decoded Ciphertext
			require.NoError(t, decoded.UnmarshalBinary(data))
			assert.Equal(t, group.Name(), decoded.Curve().Name())
			assert.True(t, decoded.Equal(cipher))
			assert.True(t, decoded.Decrypt(receiver).Equal(m[0]))

			identity, err := Identity(group).MarshalBinary()
			require.NoError(t, err)
			require.NoError(t, decoded.UnmarshalBinary(identity))
			assert.True(t, decoded.Equal(Identity(group)))
		})
	}
}

func TestCiphertext_UnmarshalBinary_Errors(t *testing.T) {
	var c Ciphertext

	assert.ErrorIs(t, c.UnmarshalBinary(nil), io.ErrShortBuffer)
	assert.Error(t, c.UnmarshalBinary([]byte{0xff, 0x00}))

	unknown, err := cbor.Marshal(&rawCiphertext{Group: "p256", Gamma: []byte{1}, Delta: []byte{1}})
	require.NoError(t, err)
	assert.ErrorIs(t, c.UnmarshalBinary(unknown), curve.ErrUnknownCurve)

	point, err := curve.Ristretto255{}.NewBasePoint().MarshalBinary()
	require.NoError(t, err)
	truncated, err := cbor.Marshal(&rawCiphertext{Group: "ristretto255", Gamma: point, Delta: point[:16]})
	require.NoError(t, err)
	assert.Error(t, c.UnmarshalBinary(truncated))

	// a ristretto255 encoding is not a valid secp256k1 point
	mixed, err := cbor.Marshal(&rawCiphertext{Group: "secp256k1", Gamma: point, Delta: point})
	require.NoError(t, err)
	assert.Error(t, c.UnmarshalBinary(mixed))
}

func TestCiphertext_MarshalBinary_Errors(t *testing.T) {
	_, err := Ciphertext{}.MarshalBinary()
	assert.Error(t, err)

	mixed := New(curve.Secp256k1{}.NewBasePoint(), curve.Edwards25519{}.NewBasePoint())
	_, err = mixed.MarshalBinary()
	assert.ErrorIs(t, err, ErrCurveMismatch)
}

func TestCiphertext_WriteTo(t *testing.T) {
	group := curve.Secp256k1{}
	sender, _, public := keys(group)
	_, m := messages(group, 1)
	cipher := Encrypt(sender, public, group.NewBasePoint(), m[0])

	var buf bytes.Buffer
	n, err := cipher.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, 66, n)

	gamma, _ := cipher.Gamma().MarshalBinary()
	delta, _ := cipher.Delta().MarshalBinary()
	assert.Equal(t, append(gamma, delta...), buf.Bytes())
}

func TestCiphertext_Hash(t *testing.T) {
	group := curve.Ristretto255{}
	_, _, public := keys(group)
	_, m := messages(group, 2)
	a := Encrypt(sample.Scalar(rand.Reader, group), public, group.NewBasePoint(), m[0])
	b := Encrypt(sample.Scalar(rand.Reader, group), public, group.NewBasePoint(), m[1])

	sum := func(data ...interface{}) []byte {
		h := hash.New()
		require.NoError(t, h.WriteAny(data...))
		return h.Sum()
	}

	assert.Equal(t, sum(a.Add(b)), sum(b.Add(a)))
	assert.NotEqual(t, sum(a), sum(b))
	assert.NotEqual(t, sum(a, b), sum(b, a))
}
