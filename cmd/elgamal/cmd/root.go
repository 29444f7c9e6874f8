package cmd

import (
	"strings"

	"github.com/mr-shifu/elgamal/core/math/curve"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "ELGAMAL"
	flagCurve = "curve"
)

type config struct {
	v *viper.Viper
}

// group resolves the curve named by --curve or ELGAMAL_CURVE.
func (cfg *config) group() (curve.Curve, error) {
	return curve.FromName(cfg.v.GetString(flagCurve))
}

// NewRootCmd creates the elgamal command tree. Every value is read and
// printed as hex of its binary encoding.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	cfg := &config{v: v}

	rootCmd := &cobra.Command{
		Use:           "elgamal",
		Short:         "Homomorphic ElGamal encryption over prime-order groups",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().String(flagCurve, curve.Secp256k1{}.Name(),
		"group to operate in ("+strings.Join(curve.Names(), ", ")+")")
	if err := v.BindPFlag(flagCurve, rootCmd.PersistentFlags().Lookup(flagCurve)); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		baseCmd(cfg),
		encryptCmd(cfg),
		decryptCmd(),
		addCmd(),
		subCmd(),
		mulCmd(),
		fingerprintCmd(),
	)

	return rootCmd
}
