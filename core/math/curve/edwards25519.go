package curve

import (
	"encoding/hex"

	ed "filippo.io/edwards25519"
	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
)

const (
	edwards25519ScalarBytes = 32
	edwards25519PointBytes  = 32
)

// ℓ = 2²⁵² + 27742317777372353535851937790883648493, shared by ristretto255.
var order25519 = func() *saferith.Modulus {
	b, err := hex.DecodeString("1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED")
	if err != nil {
		panic(err)
	}
	return saferith.ModulusFromBytes(b)
}()

// scalar25519FromNat reduces x modulo ℓ and returns its canonical little-endian
// encoding.
func scalar25519FromNat(x *saferith.Nat) []byte {
	return reverse(natToBytes(x, order25519, edwards25519ScalarBytes))
}

// Edwards25519 is the prime-order subgroup of the twisted Edwards curve
// birationally equivalent to Curve25519, generated by the standard base point.
//
// Points decoded from bytes are not checked for membership in the prime-order
// subgroup; callers receiving points from untrusted sources should use
// Ristretto255 instead.
type Edwards25519 struct{}

func (Edwards25519) NewPoint() Point {
	out := new(Edwards25519Point)
	out.value.Set(ed.NewIdentityPoint())
	return out
}

func (Edwards25519) NewBasePoint() Point {
	out := new(Edwards25519Point)
	out.value.Set(ed.NewGeneratorPoint())
	return out
}

func (Edwards25519) NewScalar() Scalar {
	return new(Edwards25519Scalar)
}

func (Edwards25519) ScalarBits() int {
	return 253
}

func (Edwards25519) SafeScalarBytes() int {
	return 48
}

func (Edwards25519) Order() *saferith.Modulus {
	return order25519
}

func (Edwards25519) Name() string {
	return "edwards25519"
}

// Edwards25519Scalar is an integer modulo ℓ. The zero value is zero.
type Edwards25519Scalar struct {
	value ed.Scalar
}

func edwards25519CastScalar(op string, t Scalar) *Edwards25519Scalar {
	out, ok := t.(*Edwards25519Scalar)
	if !ok {
		panic(mismatch(op, Edwards25519{}, t))
	}
	return out
}

func (*Edwards25519Scalar) Curve() Curve {
	return Edwards25519{}
}

// MarshalBinary returns the canonical 32 byte little-endian encoding.
func (s *Edwards25519Scalar) MarshalBinary() ([]byte, error) {
	return s.value.Bytes(), nil
}

func (s *Edwards25519Scalar) UnmarshalBinary(data []byte) error {
	if _, err := s.value.SetCanonicalBytes(data); err != nil {
		return errors.WithMessage(err, "edwards25519: failed to decode scalar")
	}
	return nil
}

func (s *Edwards25519Scalar) Add(t Scalar) Scalar {
	other := edwards25519CastScalar("Add", t)
	out := new(Edwards25519Scalar)
	out.value.Add(&s.value, &other.value)
	return out
}

func (s *Edwards25519Scalar) Sub(t Scalar) Scalar {
	other := edwards25519CastScalar("Sub", t)
	out := new(Edwards25519Scalar)
	out.value.Subtract(&s.value, &other.value)
	return out
}

func (s *Edwards25519Scalar) Mul(t Scalar) Scalar {
	other := edwards25519CastScalar("Mul", t)
	out := new(Edwards25519Scalar)
	out.value.Multiply(&s.value, &other.value)
	return out
}

func (s *Edwards25519Scalar) Negate() Scalar {
	out := new(Edwards25519Scalar)
	out.value.Negate(&s.value)
	return out
}

func (s *Edwards25519Scalar) Invert() Scalar {
	out := new(Edwards25519Scalar)
	out.value.Invert(&s.value)
	return out
}

func (s *Edwards25519Scalar) Equal(t Scalar) bool {
	other := edwards25519CastScalar("Equal", t)
	return s.value.Equal(&other.value) == 1
}

func (s *Edwards25519Scalar) IsZero() bool {
	return s.value.Equal(ed.NewScalar()) == 1
}

func (s *Edwards25519Scalar) Set(t Scalar) Scalar {
	other := edwards25519CastScalar("Set", t)
	s.value.Set(&other.value)
	return s
}

func (s *Edwards25519Scalar) SetNat(x *saferith.Nat) Scalar {
	if _, err := s.value.SetCanonicalBytes(scalar25519FromNat(x)); err != nil {
		panic("edwards25519: internal error: reduced scalar is not canonical")
	}
	return s
}

func (s *Edwards25519Scalar) Act(P Point) Point {
	p, ok := P.(*Edwards25519Point)
	if !ok {
		panic(mismatch("Act", Edwards25519{}, P))
	}
	out := new(Edwards25519Point)
	out.value.ScalarMult(&s.value, &p.value)
	return out
}

func (s *Edwards25519Scalar) ActOnBase() Point {
	out := new(Edwards25519Point)
	out.value.ScalarBaseMult(&s.value)
	return out
}

// Edwards25519Point must be obtained from Edwards25519.NewPoint or as the
// result of an operation; its zero value is only valid as an UnmarshalBinary
// target.
type Edwards25519Point struct {
	value ed.Point
}

func edwards25519CastPoint(op string, Q Point) *Edwards25519Point {
	out, ok := Q.(*Edwards25519Point)
	if !ok {
		panic(mismatch(op, Edwards25519{}, Q))
	}
	return out
}

func (*Edwards25519Point) Curve() Curve {
	return Edwards25519{}
}

func (p *Edwards25519Point) MarshalBinary() ([]byte, error) {
	return p.value.Bytes(), nil
}

func (p *Edwards25519Point) UnmarshalBinary(data []byte) error {
	if len(data) != edwards25519PointBytes {
		return errors.Errorf("edwards25519: invalid point length %d", len(data))
	}
	if _, err := p.value.SetBytes(data); err != nil {
		return errors.WithMessage(err, "edwards25519: failed to decode point")
	}
	return nil
}

func (p *Edwards25519Point) Add(Q Point) Point {
	other := edwards25519CastPoint("Add", Q)
	out := new(Edwards25519Point)
	out.value.Add(&p.value, &other.value)
	return out
}

func (p *Edwards25519Point) Sub(Q Point) Point {
	other := edwards25519CastPoint("Sub", Q)
	out := new(Edwards25519Point)
	out.value.Subtract(&p.value, &other.value)
	return out
}

func (p *Edwards25519Point) Negate() Point {
	out := new(Edwards25519Point)
	out.value.Negate(&p.value)
	return out
}

func (p *Edwards25519Point) Set(Q Point) Point {
	other := edwards25519CastPoint("Set", Q)
	p.value.Set(&other.value)
	return p
}

func (p *Edwards25519Point) Equal(Q Point) bool {
	other := edwards25519CastPoint("Equal", Q)
	return p.value.Equal(&other.value) == 1
}

func (p *Edwards25519Point) IsIdentity() bool {
	return p.value.Equal(ed.NewIdentityPoint()) == 1
}
