package elgamal

import (
	"github.com/mr-shifu/elgamal/core/math/curve"
)

type (
	PublicKey = curve.Point
	SecretKey = curve.Scalar
)

// Encrypt returns the encryption of the point `message` under `public` as
// (γ = secret⋅generator, δ = message + secret⋅public).
//
// `secret` is the sender's ephemeral secret and must be freshly sampled for
// every encryption: two ciphertexts sharing it reveal the difference of their
// plaintexts. Mapping application data to `message` is left to the caller,
// typically as m⋅generator.
func Encrypt(secret SecretKey, public PublicKey, generator, message curve.Point) Ciphertext {
	gamma := secret.Act(generator)
	delta := message.Add(secret.Act(public))
	return New(gamma, delta)
}

// Decrypt returns δ - secret⋅γ.
//
// The result equals the encrypted message only when `secret` is the discrete
// log of the public key used at encryption. Any other secret yields an
// unrelated point; there is no integrity check.
func (c Ciphertext) Decrypt(secret SecretKey) curve.Point {
	return c.delta.Sub(secret.Act(c.gamma))
}
