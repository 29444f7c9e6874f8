package cmd

import (
	"encoding"
	"encoding/hex"
	"fmt"

	"github.com/mr-shifu/elgamal/core/elgamal"
	"github.com/mr-shifu/elgamal/core/hash"
	"github.com/mr-shifu/elgamal/core/math/curve"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func decodeHex(name, arg string, into encoding.BinaryUnmarshaler) error {
	data, err := hex.DecodeString(arg)
	if err != nil {
		return errors.Wrapf(err, "%s: invalid hex", name)
	}
	return errors.WithMessage(into.UnmarshalBinary(data), name)
}

func parseScalar(group curve.Curve, name, arg string) (curve.Scalar, error) {
	s := group.NewScalar()
	if err := decodeHex(name, arg, s); err != nil {
		return nil, err
	}
	return s, nil
}

func parsePoint(group curve.Curve, name, arg string) (curve.Point, error) {
	p := group.NewPoint()
	if err := decodeHex(name, arg, p); err != nil {
		return nil, err
	}
	return p, nil
}

func parseCiphers(args []string) ([]elgamal.Ciphertext, error) {
	out := make([]elgamal.Ciphertext, len(args))
	for i, arg := range args {
		if err := decodeHex(fmt.Sprintf("cipher %d", i), arg, &out[i]); err != nil {
			return nil, err
		}
		if out[i].Curve().Name() != out[0].Curve().Name() {
			return nil, errors.Wrapf(elgamal.ErrCurveMismatch, "cipher %d is on %s, cipher 0 on %s",
				i, out[i].Curve().Name(), out[0].Curve().Name())
		}
	}
	return out, nil
}

func printHex(cmd *cobra.Command, v encoding.BinaryMarshaler) error {
	data, err := v.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
	return err
}

func baseCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "base <scalar>",
		Short: "Print scalar⋅G for the base point G",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := cfg.group()
			if err != nil {
				return err
			}
			s, err := parseScalar(group, "scalar", args[0])
			if err != nil {
				return err
			}
			return printHex(cmd, s.ActOnBase())
		},
	}
}

func encryptCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <sender-secret> <receiver-public> <message>",
		Short: "Encrypt a point under a public key, using the base point as generator",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := cfg.group()
			if err != nil {
				return err
			}
			secret, err := parseScalar(group, "sender-secret", args[0])
			if err != nil {
				return err
			}
			public, err := parsePoint(group, "receiver-public", args[1])
			if err != nil {
				return err
			}
			message, err := parsePoint(group, "message", args[2])
			if err != nil {
				return err
			}
			return printHex(cmd, elgamal.Encrypt(secret, public, group.NewBasePoint(), message))
		},
	}
}

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <cipher> <receiver-secret>",
		Short: "Decrypt a ciphertext",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphers, err := parseCiphers(args[:1])
			if err != nil {
				return err
			}
			secret, err := parseScalar(ciphers[0].Curve(), "receiver-secret", args[1])
			if err != nil {
				return err
			}
			return printHex(cmd, ciphers[0].Decrypt(secret))
		},
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <cipher> <cipher>...",
		Short: "Add ciphertexts",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphers, err := parseCiphers(args)
			if err != nil {
				return err
			}
			return printHex(cmd, elgamal.Sum(ciphers...))
		},
	}
}

func subCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub <cipher> <cipher>",
		Short: "Subtract the second ciphertext from the first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphers, err := parseCiphers(args)
			if err != nil {
				return err
			}
			return printHex(cmd, ciphers[0].Sub(ciphers[1]))
		},
	}
}

func mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <cipher> <scalar>",
		Short: "Multiply a ciphertext by a scalar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphers, err := parseCiphers(args[:1])
			if err != nil {
				return err
			}
			s, err := parseScalar(ciphers[0].Curve(), "scalar", args[1])
			if err != nil {
				return err
			}
			return printHex(cmd, ciphers[0].Mul(s))
		},
	}
}

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <cipher>",
		Short: "Print the blake3 transcript digest of a ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphers, err := parseCiphers(args)
			if err != nil {
				return err
			}
			h := hash.New()
			if err := h.WriteAny(ciphers[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(h.Sum()))
			return err
		},
	}
}
