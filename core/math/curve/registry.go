package curve

import "github.com/pkg/errors"

var ErrUnknownCurve = errors.New("curve: unknown curve")

var curves = map[string]Curve{
	Secp256k1{}.Name():    Secp256k1{},
	Edwards25519{}.Name(): Edwards25519{},
	Ristretto255{}.Name(): Ristretto255{},
}

// FromName returns the curve whose Name() is name.
func FromName(name string) (Curve, error) {
	group, ok := curves[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCurve, "%q", name)
	}
	return group, nil
}

// Names lists the registered curves in a stable order.
func Names() []string {
	return []string{Secp256k1{}.Name(), Edwards25519{}.Name(), Ristretto255{}.Name()}
}
