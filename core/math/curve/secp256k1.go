package curve

import (
	"encoding/hex"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

const (
	secp256k1ScalarBytes = 32
	secp256k1PointBytes  = 33

	secp256k1EvenY byte = 0x02
)

var secp256k1Order = func() *saferith.Modulus {
	b, err := hex.DecodeString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	if err != nil {
		panic(err)
	}
	return saferith.ModulusFromBytes(b)
}()

// Secp256k1 is the group of points of the secp256k1 curve.
type Secp256k1 struct{}

func (Secp256k1) NewPoint() Point {
	return new(Secp256k1Point)
}

func (Secp256k1) NewBasePoint() Point {
	out := new(Secp256k1Point)
	secp256k1.ScalarBaseMultNonConst(new(secp256k1.ModNScalar).SetInt(1), &out.value)
	return out
}

func (Secp256k1) NewScalar() Scalar {
	return new(Secp256k1Scalar)
}

func (Secp256k1) ScalarBits() int {
	return 256
}

func (Secp256k1) SafeScalarBytes() int {
	return 48
}

func (Secp256k1) Order() *saferith.Modulus {
	return secp256k1Order
}

func (Secp256k1) Name() string {
	return "secp256k1"
}

type Secp256k1Scalar struct {
	value secp256k1.ModNScalar
}

func secp256k1CastScalar(op string, t Scalar) *Secp256k1Scalar {
	out, ok := t.(*Secp256k1Scalar)
	if !ok {
		panic(mismatch(op, Secp256k1{}, t))
	}
	return out
}

func (*Secp256k1Scalar) Curve() Curve {
	return Secp256k1{}
}

func (s *Secp256k1Scalar) MarshalBinary() ([]byte, error) {
	data := s.value.Bytes()
	return data[:], nil
}

func (s *Secp256k1Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != secp256k1ScalarBytes {
		return errors.Errorf("secp256k1: invalid scalar length %d", len(data))
	}
	var exact [secp256k1ScalarBytes]byte
	copy(exact[:], data)
	var value secp256k1.ModNScalar
	if overflow := value.SetBytes(&exact); overflow != 0 {
		return errors.New("secp256k1: scalar not reduced modulo the order")
	}
	s.value = value
	return nil
}

func (s *Secp256k1Scalar) Add(t Scalar) Scalar {
	other := secp256k1CastScalar("Add", t)
	out := new(Secp256k1Scalar)
	out.value.Add2(&s.value, &other.value)
	return out
}

func (s *Secp256k1Scalar) Sub(t Scalar) Scalar {
	other := secp256k1CastScalar("Sub", t)
	out := new(Secp256k1Scalar)
	out.value.NegateVal(&other.value).Add(&s.value)
	return out
}

func (s *Secp256k1Scalar) Mul(t Scalar) Scalar {
	other := secp256k1CastScalar("Mul", t)
	out := new(Secp256k1Scalar)
	out.value.Mul2(&s.value, &other.value)
	return out
}

func (s *Secp256k1Scalar) Negate() Scalar {
	out := new(Secp256k1Scalar)
	out.value.NegateVal(&s.value)
	return out
}

func (s *Secp256k1Scalar) Invert() Scalar {
	out := new(Secp256k1Scalar)
	out.value.InverseValNonConst(&s.value)
	return out
}

func (s *Secp256k1Scalar) Equal(t Scalar) bool {
	other := secp256k1CastScalar("Equal", t)
	return s.value.Equals(&other.value)
}

func (s *Secp256k1Scalar) IsZero() bool {
	return s.value.IsZero()
}

func (s *Secp256k1Scalar) Set(t Scalar) Scalar {
	other := secp256k1CastScalar("Set", t)
	s.value.Set(&other.value)
	return s
}

func (s *Secp256k1Scalar) SetNat(x *saferith.Nat) Scalar {
	s.value.SetByteSlice(natToBytes(x, secp256k1Order, secp256k1ScalarBytes))
	return s
}

func (s *Secp256k1Scalar) Act(P Point) Point {
	p, ok := P.(*Secp256k1Point)
	if !ok {
		panic(mismatch("Act", Secp256k1{}, P))
	}
	out := new(Secp256k1Point)
	secp256k1.ScalarMultNonConst(&s.value, &p.value, &out.value)
	return out
}

func (s *Secp256k1Scalar) ActOnBase() Point {
	out := new(Secp256k1Point)
	secp256k1.ScalarBaseMultNonConst(&s.value, &out.value)
	return out
}

// Secp256k1Point wraps a jacobian point. The zero value is the identity.
type Secp256k1Point struct {
	value secp256k1.JacobianPoint
}

func secp256k1CastPoint(op string, Q Point) *Secp256k1Point {
	out, ok := Q.(*Secp256k1Point)
	if !ok {
		panic(mismatch(op, Secp256k1{}, Q))
	}
	return out
}

func (*Secp256k1Point) Curve() Curve {
	return Secp256k1{}
}

// affine returns a normalised copy; the receiver is left untouched so that
// concurrent readers never observe a write.
func (p *Secp256k1Point) affine() secp256k1.JacobianPoint {
	var v secp256k1.JacobianPoint
	v.Set(&p.value)
	v.ToAffine()
	return v
}

// MarshalBinary returns the 33 byte compressed encoding. The identity encodes
// as 33 zero bytes.
func (p *Secp256k1Point) MarshalBinary() ([]byte, error) {
	out := make([]byte, secp256k1PointBytes)
	if p.IsIdentity() {
		return out, nil
	}
	v := p.affine()
	out[0] = secp256k1EvenY
	if v.Y.IsOdd() {
		out[0]++
	}
	x := v.X.Bytes()
	copy(out[1:], x[:])
	return out, nil
}

func (p *Secp256k1Point) UnmarshalBinary(data []byte) error {
	if len(data) != secp256k1PointBytes {
		return errors.Errorf("secp256k1: invalid point length %d", len(data))
	}
	if isZeroBytes(data) {
		p.value = secp256k1.JacobianPoint{}
		return nil
	}
	key, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return errors.WithMessage(err, "secp256k1: failed to decode point")
	}
	key.AsJacobian(&p.value)
	return nil
}

func (p *Secp256k1Point) Add(Q Point) Point {
	other := secp256k1CastPoint("Add", Q)
	out := new(Secp256k1Point)
	secp256k1.AddNonConst(&p.value, &other.value, &out.value)
	return out
}

func (p *Secp256k1Point) Sub(Q Point) Point {
	return p.Add(Q.Negate())
}

func (p *Secp256k1Point) Negate() Point {
	out := new(Secp256k1Point)
	if p.IsIdentity() {
		return out
	}
	out.value = p.affine()
	out.value.Y.Negate(1).Normalize()
	return out
}

func (p *Secp256k1Point) Set(Q Point) Point {
	other := secp256k1CastPoint("Set", Q)
	p.value.Set(&other.value)
	return p
}

func (p *Secp256k1Point) Equal(Q Point) bool {
	other := secp256k1CastPoint("Equal", Q)
	if p.IsIdentity() || other.IsIdentity() {
		return p.IsIdentity() && other.IsIdentity()
	}
	a, b := p.affine(), other.affine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

func (p *Secp256k1Point) IsIdentity() bool {
	return (p.value.X.IsZero() && p.value.Y.IsZero()) || p.value.Z.IsZero()
}

func isZeroBytes(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}
