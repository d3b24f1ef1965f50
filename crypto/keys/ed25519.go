// Package keys implements the concrete sign/verify operations for each key
// class in the algorithm registry, over the standard library's crypto
// primitives. Grounded on the teacher's per-curve key files
// (pkg/agent/crypto/keys/p256.go) and on halimath-jose's jws/{ecdsa,hmac,rsa}.go
// signer/verifier pairs, generalized here from stateful signer types into
// plain functions over an explicit key, since this library has no need for
// a persistent KeyPair abstraction.
package keys

import "crypto/ed25519"

// SignEd25519 signs base with an Ed25519 private key. Ed25519 signs the
// message directly; there is no separate digest step.
func SignEd25519(base []byte, priv ed25519.PrivateKey) ([]byte, error) {
	return ed25519.Sign(priv, base), nil
}

// VerifyEd25519 verifies sig over base with an Ed25519 public key.
func VerifyEd25519(base, sig []byte, pub ed25519.PublicKey) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, base, sig)
}
