package elgamal

import (
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-shifu/elgamal/core/math/curve"
	"github.com/pkg/errors"
)

var ErrCurveMismatch = errors.New("elgamal: ciphertext components belong to different curves")

// Ciphertext is an ElGamal ciphertext (γ, δ).
//
// Ciphertexts are additively homomorphic with respect to other ciphertexts
// encrypted under the same public key, and can be scaled by scalars:
//
//	Dec(x⋅(E(a) + E(b))) = x⋅(a + b)
//
// A Ciphertext is a value: none of its methods modify the points it holds, so
// copies may be shared and combined concurrently.
type Ciphertext struct {
	// γ = secret⋅generator
	gamma curve.Point
	// δ = message + secret⋅public
	delta curve.Point
}

// New returns the ciphertext (gamma, delta). No check is made that the pair is
// the encryption of anything.
func New(gamma, delta curve.Point) Ciphertext {
	return Ciphertext{gamma: gamma, delta: delta}
}

// Identity returns (0, 0), the neutral element of Add. It decrypts to the
// identity under any secret.
func Identity(group curve.Curve) Ciphertext {
	return New(group.NewPoint(), group.NewPoint())
}

// Sum returns c₀ + c₁ + … + cₙ. It panics if ciphers is empty.
func Sum(ciphers ...Ciphertext) Ciphertext {
	if len(ciphers) == 0 {
		panic("elgamal: Sum of no ciphertexts")
	}
	out := ciphers[0]
	for _, c := range ciphers[1:] {
		out.AddAssign(c)
	}
	return out
}

func (c Ciphertext) Gamma() curve.Point {
	return c.gamma
}

func (c Ciphertext) Delta() curve.Point {
	return c.delta
}

func (c Ciphertext) Curve() curve.Curve {
	return c.gamma.Curve()
}

// Add returns (γ₁ + γ₂, δ₁ + δ₂), which decrypts to the sum of both plaintexts.
func (c Ciphertext) Add(other Ciphertext) Ciphertext {
	return New(c.gamma.Add(other.gamma), c.delta.Add(other.delta))
}

// Sub returns (γ₁ - γ₂, δ₁ - δ₂), which decrypts to the difference of both
// plaintexts.
func (c Ciphertext) Sub(other Ciphertext) Ciphertext {
	return New(c.gamma.Sub(other.gamma), c.delta.Sub(other.delta))
}

// Mul returns (s⋅γ, s⋅δ), which decrypts to s times the plaintext.
func (c Ciphertext) Mul(s curve.Scalar) Ciphertext {
	return New(s.Act(c.gamma), s.Act(c.delta))
}

// Negate returns (-γ, -δ).
func (c Ciphertext) Negate() Ciphertext {
	return New(c.gamma.Negate(), c.delta.Negate())
}

// AddAssign sets c = c + other.
func (c *Ciphertext) AddAssign(other Ciphertext) {
	*c = c.Add(other)
}

// SubAssign sets c = c - other.
func (c *Ciphertext) SubAssign(other Ciphertext) {
	*c = c.Sub(other)
}

// MulAssign sets c = s⋅c.
func (c *Ciphertext) MulAssign(s curve.Scalar) {
	*c = c.Mul(s)
}

// Equal reports whether both components are equal as group elements.
func (c Ciphertext) Equal(other Ciphertext) bool {
	return c.gamma.Equal(other.gamma) && c.delta.Equal(other.delta)
}

// Valid returns true if the ciphertext passes basic validation.
func (c Ciphertext) Valid() bool {
	if c.gamma == nil || c.gamma.IsIdentity() ||
		c.delta == nil || c.delta.IsIdentity() {
		return false
	}
	return true
}

func (Ciphertext) Domain() string {
	return "ElGamal Ciphertext"
}

// WriteTo writes the encodings of γ and δ back to back.
func (c Ciphertext) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range []curve.Point{c.gamma, c.delta} {
		buf, err := p.MarshalBinary()
		if err != nil {
			return total, err
		}
		n, err := w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

type rawCiphertext struct {
	Group string
	Gamma []byte
	Delta []byte
}

// MarshalBinary encodes the ciphertext together with the name of its curve so
// that UnmarshalBinary can restore it without further context.
func (c Ciphertext) MarshalBinary() ([]byte, error) {
	if c.gamma == nil || c.delta == nil {
		return nil, errors.New("elgamal: marshal of empty ciphertext")
	}
	if c.gamma.Curve().Name() != c.delta.Curve().Name() {
		return nil, ErrCurveMismatch
	}

	raw := &rawCiphertext{Group: c.Curve().Name()}

	gamma, err := c.gamma.MarshalBinary()
	if err != nil {
		return nil, errors.WithMessage(err, "elgamal: failed to marshal gamma")
	}
	raw.Gamma = gamma

	delta, err := c.delta.MarshalBinary()
	if err != nil {
		return nil, errors.WithMessage(err, "elgamal: failed to marshal delta")
	}
	raw.Delta = delta

	return cbor.Marshal(raw)
}

func (c *Ciphertext) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return io.ErrShortBuffer
	}

	raw := &rawCiphertext{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return errors.WithMessage(err, "elgamal: failed to decode ciphertext")
	}

	group, err := curve.FromName(raw.Group)
	if err != nil {
		return errors.WithMessage(err, "elgamal: failed to decode ciphertext")
	}

	gamma := group.NewPoint()
	if err := gamma.UnmarshalBinary(raw.Gamma); err != nil {
		return errors.WithMessage(err, "elgamal: failed to unmarshal gamma")
	}
	delta := group.NewPoint()
	if err := delta.UnmarshalBinary(raw.Delta); err != nil {
		return errors.WithMessage(err, "elgamal: failed to unmarshal delta")
	}

	*c = New(gamma, delta)
	return nil
}
