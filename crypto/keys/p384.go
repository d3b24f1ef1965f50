package keys

import (
	"crypto/ecdsa"
	"crypto/sha512"
)

// SignP384 signs base with an ECDSA P-384 private key using SHA-384
// (`ecdsa-p384-sha384`). The teacher has no P-384 implementation; this
// generalizes its p256.go pattern to the second curve/hash pair the
// registry requires.
func SignP384(base []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	return SignECDSA(base, priv, sha512.New384)
}

// VerifyP384 verifies a `ecdsa-p384-sha384` signature.
func VerifyP384(base, sig []byte, pub *ecdsa.PublicKey) bool {
	return VerifyECDSA(base, sig, pub, sha512.New384)
}
