// Package crypto is the signature engine's crypto-primitives collaborator:
// it wraps the standard library's RSA/ECDSA/Ed25519/HMAC implementations
// behind the closed algorithm registry spec.md §6 names, and implements the
// elliptic curve validator required before any EC operation (spec.md §4.6).
package crypto

import "errors"

var (
	// ErrUnknownAlgorithm is returned for any identifier outside the closed
	// registry.
	ErrUnknownAlgorithm = errors.New("crypto: unknown algorithm")
	// ErrInvalidKey is returned when a key's Go type or curve does not
	// match what the requested algorithm requires.
	ErrInvalidKey = errors.New("crypto: invalid key")
	// ErrVerificationFailed is returned when a signature does not verify.
	ErrVerificationFailed = errors.New("crypto: signature verification failed")
)
