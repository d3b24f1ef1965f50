package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-httpsig/httpsig/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "httpsigctl",
	Short: "httpsigctl - RFC 9421 HTTP Message Signatures CLI",
	Long: `httpsigctl generates signing keys, signs an HTTP message description,
and verifies a Signature-Input/Signature header pair against a message.`,
	PersistentPreRunE: applyConfigDefaults,
}

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a httpsigctl YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each operation's steps to stderr")

	// Subcommands register themselves in their own files:
	// - genkey.go: genkeyCmd
	// - sign.go: signCmd
	// - verify.go: verifyCmd
}

// applyConfigDefaults loads --config, if given, and fills in any --algorithm,
// --key, --max-age, or --max-skew flag the user left unset on the sign or
// verify subcommand (--max-age and --max-skew on verify only).
func applyConfigDefaults(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	switch cmd.Name() {
	case "sign":
		if !flags.Changed("algorithm") && cfg.Algorithm != "" {
			signAlgorithm = cfg.Algorithm
		}
		if !flags.Changed("key") && cfg.KeyPaths.PrivateKey != "" {
			signKeyFile = cfg.KeyPaths.PrivateKey
		}
	case "verify":
		if !flags.Changed("algorithm") && cfg.Algorithm != "" {
			verifyAlgorithm = cfg.Algorithm
		}
		if !flags.Changed("key") && cfg.KeyPaths.PublicKey != "" {
			verifyKeyFile = cfg.KeyPaths.PublicKey
		}
		if !flags.Changed("max-age") && cfg.Timing.MaxAgeSeconds != 0 {
			verifyMaxAge = cfg.Timing.MaxAgeSeconds
		}
		if !flags.Changed("max-skew") && cfg.Timing.MaxSkewSeconds != 0 {
			verifyMaxSkew = cfg.Timing.MaxSkewSeconds
		}
	}
	return nil
}
