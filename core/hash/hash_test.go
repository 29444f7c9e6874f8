package hash

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/elgamal/core/math/curve"
	"github.com/mr-shifu/elgamal/core/math/sample"
	"github.com/stretchr/testify/assert"
)

func TestHash_WriteAny(t *testing.T) {
	testFunc := func(vs ...interface{}) error {
		h := New()
		for _, v := range vs {
			if err := h.WriteAny(v); err != nil {
				return err
			}
		}
		return nil
	}

	assert.NoError(t, testFunc(new(saferith.Nat).SetUint64(35)))
	assert.NoError(t, testFunc(sample.Scalar(rand.Reader, curve.Secp256k1{})))
	assert.NoError(t, testFunc(sample.Scalar(rand.Reader, curve.Ristretto255{}).ActOnBase()))
	assert.NoError(t, testFunc([]byte{1, 4, 6}))
	assert.NoError(t, testFunc(BytesWithDomain{"test", []byte{1}}))

	assert.Error(t, testFunc([]byte(nil)))
	assert.Error(t, testFunc((*saferith.Nat)(nil)))
	assert.Error(t, testFunc(42))
}

func TestHash_DomainSeparation(t *testing.T) {
	data := []byte{1, 2, 3}

	h1 := New()
	_ = h1.WriteAny(data)
	h2 := New()
	_ = h2.WriteAny(BytesWithDomain{"other", data})
	assert.NotEqual(t, h1.Sum(), h2.Sum())

	// the framing keeps ("ab", "c") apart from ("a", "bc")
	h3 := New()
	_ = h3.WriteAny([]byte("ab"), []byte("c"))
	h4 := New()
	_ = h4.WriteAny([]byte("a"), []byte("bc"))
	assert.NotEqual(t, h3.Sum(), h4.Sum())
}

func TestHash_Fork(t *testing.T) {
	h := New()
	_ = h.WriteAny([]byte("base"))
	before := h.Clone().Sum()

	forked := h.Fork([]byte("more"))
	assert.NotEqual(t, before, forked.Sum())
	assert.Equal(t, before, h.Sum())

	again := h.Fork([]byte("more"))
	assert.Equal(t, forked.Sum(), again.Sum())
}

func TestHash_Digest(t *testing.T) {
	h := New()
	_ = h.WriteAny([]byte("digest"))
	out := make([]byte, 2*DigestLengthBytes)
	_, err := io.ReadFull(h.Digest(), out)
	assert.NoError(t, err)
	assert.Equal(t, h.Sum(), out[:DigestLengthBytes])
}
