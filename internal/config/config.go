// Package config loads the small set of defaults cmd/httpsigctl needs:
// default signing algorithm, default key paths, and the verification-timing
// defaults (max-age, max-skew). It supports YAML documents with ${VAR} and
// ${VAR:default} environment substitution, in the style of the teacher's
// config package.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of an httpsigctl config file.
type Config struct {
	Algorithm string   `yaml:"algorithm"`
	KeyPaths  KeyPaths `yaml:"key_paths"`
	Timing    Timing   `yaml:"timing"`
}

// KeyPaths holds the default key locations used when a CLI flag is omitted.
type KeyPaths struct {
	PrivateKey string `yaml:"private_key"`
	PublicKey  string `yaml:"public_key"`
}

// Timing holds the default verification-timing bounds, in seconds.
type Timing struct {
	MaxAgeSeconds  int64 `yaml:"max_age_seconds"`
	MaxSkewSeconds int64 `yaml:"max_skew_seconds"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Algorithm: "ed25519",
		Timing: Timing{
			MaxAgeSeconds:  300,
			MaxSkewSeconds: 60,
		},
	}
}

// Load reads and parses a YAML config file at path, substituting
// ${VAR}/${VAR:default} references against the process environment before
// parsing. Fields left unset in the file fall back to Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	substituted := SubstituteEnvVars(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(substituted), cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// envVarPattern matches ${VAR} or ${VAR:default}.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

// SubstituteEnvVars replaces ${VAR} or ${VAR:default} with environment
// variable values, falling back to the given default (or the empty string)
// when the variable is unset or empty.
func SubstituteEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		varName := parts[1]
		defaultValue := ""
		if len(parts) > 2 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return defaultValue
	})
}
