package curve

import (
	"github.com/cronokirby/saferith"
	"github.com/gtank/ristretto255"
	"github.com/pkg/errors"
)

const ristretto255PointBytes = 32

// Ristretto255 is the prime-order group built on top of edwards25519. Its
// encoding is canonical and every decoded element lies in the group.
type Ristretto255 struct{}

func (Ristretto255) NewPoint() Point {
	out := new(Ristretto255Point)
	out.value.Zero()
	return out
}

func (Ristretto255) NewBasePoint() Point {
	out := new(Ristretto255Point)
	out.value.Base()
	return out
}

func (Ristretto255) NewScalar() Scalar {
	return new(Ristretto255Scalar)
}

func (Ristretto255) ScalarBits() int {
	return 253
}

func (Ristretto255) SafeScalarBytes() int {
	return 48
}

func (Ristretto255) Order() *saferith.Modulus {
	return order25519
}

func (Ristretto255) Name() string {
	return "ristretto255"
}

type Ristretto255Scalar struct {
	value ristretto255.Scalar
}

func ristretto255CastScalar(op string, t Scalar) *Ristretto255Scalar {
	out, ok := t.(*Ristretto255Scalar)
	if !ok {
		panic(mismatch(op, Ristretto255{}, t))
	}
	return out
}

func (*Ristretto255Scalar) Curve() Curve {
	return Ristretto255{}
}

func (s *Ristretto255Scalar) MarshalBinary() ([]byte, error) {
	return s.value.Bytes(), nil
}

func (s *Ristretto255Scalar) UnmarshalBinary(data []byte) error {
	if _, err := s.value.SetCanonicalBytes(data); err != nil {
		return errors.WithMessage(err, "ristretto255: failed to decode scalar")
	}
	return nil
}

func (s *Ristretto255Scalar) Add(t Scalar) Scalar {
	other := ristretto255CastScalar("Add", t)
	out := new(Ristretto255Scalar)
	out.value.Add(&s.value, &other.value)
	return out
}

func (s *Ristretto255Scalar) Sub(t Scalar) Scalar {
	other := ristretto255CastScalar("Sub", t)
	out := new(Ristretto255Scalar)
	out.value.Subtract(&s.value, &other.value)
	return out
}

func (s *Ristretto255Scalar) Mul(t Scalar) Scalar {
	other := ristretto255CastScalar("Mul", t)
	out := new(Ristretto255Scalar)
	out.value.Multiply(&s.value, &other.value)
	return out
}

func (s *Ristretto255Scalar) Negate() Scalar {
	out := new(Ristretto255Scalar)
	out.value.Negate(&s.value)
	return out
}

func (s *Ristretto255Scalar) Invert() Scalar {
	out := new(Ristretto255Scalar)
	out.value.Invert(&s.value)
	return out
}

func (s *Ristretto255Scalar) Equal(t Scalar) bool {
	other := ristretto255CastScalar("Equal", t)
	return s.value.Equal(&other.value) == 1
}

func (s *Ristretto255Scalar) IsZero() bool {
	var zero ristretto255.Scalar
	return s.value.Equal(&zero) == 1
}

func (s *Ristretto255Scalar) Set(t Scalar) Scalar {
	other := ristretto255CastScalar("Set", t)
	s.value = other.value
	return s
}

func (s *Ristretto255Scalar) SetNat(x *saferith.Nat) Scalar {
	if _, err := s.value.SetCanonicalBytes(scalar25519FromNat(x)); err != nil {
		panic("ristretto255: internal error: reduced scalar is not canonical")
	}
	return s
}

func (s *Ristretto255Scalar) Act(P Point) Point {
	p, ok := P.(*Ristretto255Point)
	if !ok {
		panic(mismatch("Act", Ristretto255{}, P))
	}
	out := new(Ristretto255Point)
	out.value.ScalarMult(&s.value, &p.value)
	return out
}

func (s *Ristretto255Scalar) ActOnBase() Point {
	out := new(Ristretto255Point)
	out.value.ScalarBaseMult(&s.value)
	return out
}

// Ristretto255Point must be obtained from Ristretto255.NewPoint or as the
// result of an operation; its zero value is only valid as an UnmarshalBinary
// target.
type Ristretto255Point struct {
	value ristretto255.Element
}

func ristretto255CastPoint(op string, Q Point) *Ristretto255Point {
	out, ok := Q.(*Ristretto255Point)
	if !ok {
		panic(mismatch(op, Ristretto255{}, Q))
	}
	return out
}

func (*Ristretto255Point) Curve() Curve {
	return Ristretto255{}
}

func (p *Ristretto255Point) MarshalBinary() ([]byte, error) {
	return p.value.Bytes(), nil
}

func (p *Ristretto255Point) UnmarshalBinary(data []byte) error {
	if len(data) != ristretto255PointBytes {
		return errors.Errorf("ristretto255: invalid point length %d", len(data))
	}
	if _, err := p.value.SetCanonicalBytes(data); err != nil {
		return errors.WithMessage(err, "ristretto255: failed to decode point")
	}
	return nil
}

func (p *Ristretto255Point) Add(Q Point) Point {
	other := ristretto255CastPoint("Add", Q)
	out := new(Ristretto255Point)
	out.value.Add(&p.value, &other.value)
	return out
}

func (p *Ristretto255Point) Sub(Q Point) Point {
	other := ristretto255CastPoint("Sub", Q)
	out := new(Ristretto255Point)
	out.value.Subtract(&p.value, &other.value)
	return out
}

func (p *Ristretto255Point) Negate() Point {
	out := new(Ristretto255Point)
	out.value.Negate(&p.value)
	return out
}

func (p *Ristretto255Point) Set(Q Point) Point {
	other := ristretto255CastPoint("Set", Q)
	p.value = other.value
	return p
}

func (p *Ristretto255Point) Equal(Q Point) bool {
	other := ristretto255CastPoint("Equal", Q)
	return p.value.Equal(&other.value) == 1
}

func (p *Ristretto255Point) IsIdentity() bool {
	var identity ristretto255.Element
	identity.Zero()
	return p.value.Equal(&identity) == 1
}
