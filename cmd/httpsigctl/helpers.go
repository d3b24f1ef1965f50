package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	sigcrypto "github.com/go-httpsig/httpsig/crypto"
	"github.com/go-httpsig/httpsig/crypto/formats"
	"github.com/go-httpsig/httpsig/httpsig"
)

// parseHeaderFlag splits a "Name: value" flag argument into its parts.
func parseHeaderFlag(raw string) (string, string, error) {
	name, value, ok := strings.Cut(raw, ":")
	if !ok {
		return "", "", fmt.Errorf("invalid --header %q, want \"Name: value\"", raw)
	}
	return strings.TrimSpace(name), strings.TrimSpace(value), nil
}

// parseComponentFlag parses a component identifier with semicolon-separated
// modifiers, e.g. "content-digest;bs", "@query-param;name=Pet", "date".
func parseComponentFlag(raw string) (httpsig.Component, error) {
	parts := strings.Split(raw, ";")
	name := parts[0]

	var opts []httpsig.Option
	for _, mod := range parts[1:] {
		mod = strings.TrimSpace(mod)
		key, val, hasVal := strings.Cut(mod, "=")
		switch key {
		case "req":
			opts = append(opts, httpsig.WithReq())
		case "sf":
			opts = append(opts, httpsig.WithStructuredField())
		case "bs":
			opts = append(opts, httpsig.WithBinaryWrap())
		case "tr":
			opts = append(opts, httpsig.WithTrailer())
		case "key":
			if !hasVal {
				return httpsig.Component{}, fmt.Errorf("component modifier %q requires a value", mod)
			}
			opts = append(opts, httpsig.WithDictKey(strings.Trim(val, `"`)))
		case "name":
			if !hasVal {
				return httpsig.Component{}, fmt.Errorf("component modifier %q requires a value", mod)
			}
			opts = append(opts, httpsig.WithQueryParamName(strings.Trim(val, `"`)))
		default:
			return httpsig.Component{}, fmt.Errorf("unrecognized component modifier %q", mod)
		}
	}

	if strings.HasPrefix(name, "@") {
		return httpsig.NewDerivedComponent(name, opts...)
	}
	return httpsig.NewFieldComponent(name, opts...)
}

func parseComponentFlags(raw []string) ([]httpsig.Component, error) {
	components := make([]httpsig.Component, 0, len(raw))
	for _, r := range raw {
		c, err := parseComponentFlag(r)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, nil
}

// loadPrivateKey reads the key material at path for alg: a raw base64
// secret for hmac-sha256, otherwise a PEM-encoded PKCS#8 private key.
func loadPrivateKey(path string, alg sigcrypto.Algorithm) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}
	if alg == sigcrypto.HMACSHA256 {
		secret, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 hmac secret: %w", err)
		}
		return secret, nil
	}
	key, err := formats.DecodePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}
	return key, nil
}

// loadPublicKey reads the key material at path for alg, mirroring
// loadPrivateKey's conventions.
func loadPublicKey(path string, alg sigcrypto.Algorithm) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file: %w", err)
	}
	if alg == sigcrypto.HMACSHA256 {
		secret, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 hmac secret: %w", err)
		}
		return secret, nil
	}
	key, err := formats.DecodePublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}
	return key, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
