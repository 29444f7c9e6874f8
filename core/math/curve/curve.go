package curve

import (
	"encoding"

	"github.com/cronokirby/saferith"
)

// Curve is a prime-order group together with a designated base point and the
// ring of scalars acting on it.
type Curve interface {
	// NewPoint returns the identity element of the group.
	NewPoint() Point
	// NewBasePoint returns the designated generator of the group.
	NewBasePoint() Point
	// NewScalar returns the zero scalar.
	NewScalar() Scalar
	// ScalarBits returns the bit length of the group order.
	ScalarBits() int
	// SafeScalarBytes returns how many uniform bytes must be reduced modulo the
	// order to obtain a scalar that is statistically close to uniform.
	SafeScalarBytes() int
	// Order returns the order of the group.
	Order() *saferith.Modulus
	Name() string
}

// Scalar is an element of the ring of exponents of a Curve.
//
// Arithmetic methods never modify the receiver or their argument and always
// return a fresh Scalar. Only Set, SetNat and UnmarshalBinary write into the
// receiver.
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	Curve() Curve

	// Add returns s + t.
	Add(t Scalar) Scalar
	// Sub returns s - t.
	Sub(t Scalar) Scalar
	// Mul returns s ⋅ t.
	Mul(t Scalar) Scalar
	// Negate returns -s.
	Negate() Scalar
	// Invert returns s⁻¹, or zero if s is zero.
	Invert() Scalar

	Equal(t Scalar) bool
	IsZero() bool

	// Set copies t into s and returns s.
	Set(t Scalar) Scalar
	// SetNat sets s = x mod q and returns s.
	SetNat(x *saferith.Nat) Scalar

	// Act returns s⋅P.
	Act(P Point) Point
	// ActOnBase returns s⋅G, where G is the base point of the curve.
	ActOnBase() Point
}

// Point is an element of the group of a Curve.
//
// Like Scalar, arithmetic methods return fresh values and Set and
// UnmarshalBinary are the only methods writing into the receiver.
type Point interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	Curve() Curve

	// Add returns P + Q.
	Add(Q Point) Point
	// Sub returns P - Q.
	Sub(Q Point) Point
	// Negate returns -P.
	Negate() Point

	// Set copies Q into P and returns P.
	Set(Q Point) Point

	Equal(Q Point) bool
	IsIdentity() bool
}

// ScalarOne returns the multiplicative identity of the scalars of group.
func ScalarOne(group Curve) Scalar {
	return ScalarFromUint64(group, 1)
}

// ScalarFromUint64 returns x mod q as a scalar of group.
func ScalarFromUint64(group Curve, x uint64) Scalar {
	return group.NewScalar().SetNat(new(saferith.Nat).SetUint64(x))
}

// natToBytes reduces x modulo order and returns its big-endian encoding padded
// to size bytes.
func natToBytes(x *saferith.Nat, order *saferith.Modulus, size int) []byte {
	reduced := new(saferith.Nat).Mod(x, order)
	return reduced.FillBytes(make([]byte, size))
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

func mismatch(op string, want Curve, got interface{ Curve() Curve }) string {
	return "curve: " + op + ": expected element of " + want.Name() + ", got " + got.Curve().Name()
}
