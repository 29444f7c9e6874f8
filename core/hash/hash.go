package hash

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"
	"io"
	"reflect"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the length of Sum's output.
const DigestLengthBytes = 64

// WriterToWithDomain is an io.WriterTo which also names the domain its
// encoding belongs to, so that values of different types never collide.
type WriterToWithDomain interface {
	io.WriterTo
	Domain() string
}

// BytesWithDomain is a byte slice written to the hash under an explicit domain.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

func (b BytesWithDomain) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes)
	return int64(n), err
}

func (b BytesWithDomain) Domain() string {
	return b.TheDomain
}

// Hash is a domain separated transcript over blake3, used to fingerprint
// ciphertexts and the points and scalars they are built from.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash initialised with "ELGAMAL-BLAKE" and writes initialData.
func New(initialData ...WriterToWithDomain) *Hash {
	hash := &Hash{h: blake3.New()}
	_, _ = hash.h.WriteString("ELGAMAL-BLAKE")
	for _, d := range initialData {
		_ = hash.WriteAny(d)
	}
	return hash
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the current hash state.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny writes each of data to the hash state.
//
// Supported types:
//
//   - []byte
//   - *saferith.Nat
//   - hash.WriterToWithDomain (which includes elgamal.Ciphertext)
//   - encoding.BinaryMarshaler (which includes curve.Point and curve.Scalar)
//
// The first two and the last get a domain derived from their type, a
// WriterToWithDomain supplies its own.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		var toBeWritten BytesWithDomain
		switch t := d.(type) {
		case []byte:
			if t == nil {
				return errors.New("hash.WriteAny: nil []byte")
			}
			toBeWritten = BytesWithDomain{"[]byte", t}
		case *saferith.Nat:
			if t == nil {
				return errors.New("hash.WriteAny: nil *saferith.Nat")
			}
			toBeWritten = BytesWithDomain{"saferith.Nat", t.Bytes()}
		case WriterToWithDomain:
			var buf = new(bytes.Buffer)
			if _, err := t.WriteTo(buf); err != nil {
				name := reflect.TypeOf(t)
				return errors.WithMessagef(err, "hash.WriteAny: %s", name.String())
			}
			toBeWritten = BytesWithDomain{t.Domain(), buf.Bytes()}
		case encoding.BinaryMarshaler:
			name := reflect.TypeOf(t)
			data, err := t.MarshalBinary()
			if err != nil {
				return errors.WithMessagef(err, "hash.WriteAny: %s", name.String())
			}
			toBeWritten = BytesWithDomain{name.String(), data}
		default:
			return errors.Errorf("hash.WriteAny: invalid type %T provided as input", d)
		}
		hash.writeBytesWithDomain(toBeWritten)
	}
	return nil
}

// writeBytesWithDomain writes `(<domain_size><domain><data_size><data>)`, so
// that each domain separated piece of data is distinguished from others.
func (hash *Hash) writeBytesWithDomain(toBeWritten BytesWithDomain) {
	var sizeBuf [8]byte

	_, _ = hash.h.WriteString("(")
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(toBeWritten.TheDomain)))
	_, _ = hash.h.Write(sizeBuf[:])
	_, _ = hash.h.WriteString(toBeWritten.TheDomain)
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(toBeWritten.Bytes)))
	_, _ = hash.h.Write(sizeBuf[:])
	_, _ = hash.h.Write(toBeWritten.Bytes)
	_, _ = hash.h.WriteString(")")
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}

// Fork clones this hash, and then writes some data.
func (hash *Hash) Fork(data ...interface{}) *Hash {
	newHash := hash.Clone()
	_ = newHash.WriteAny(data...)
	return newHash
}
