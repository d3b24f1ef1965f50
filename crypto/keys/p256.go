package keys

import (
	"crypto/ecdsa"
	"crypto/sha256"
)

// SignP256 signs base with an ECDSA P-256 private key using SHA-256
// (`ecdsa-p256-sha256`), the algorithm the teacher's p256.go key pair
// implements. Curve validation happens in the caller (crypto.Sign) via the
// elliptic curve validator, not here.
func SignP256(base []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	return SignECDSA(base, priv, sha256.New)
}

// VerifyP256 verifies a `ecdsa-p256-sha256` signature.
func VerifyP256(base, sig []byte, pub *ecdsa.PublicKey) bool {
	return VerifyECDSA(base, sig, pub, sha256.New)
}
