package keys

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
)

// SignRSAPKCS1v15 signs base with RSA PKCS#1 v1.5 padding over SHA-256
// (`rsa-v1_5-sha256`). Adapted from halimath-jose's jws/rsa.go rsaSigner.
func SignRSAPKCS1v15(base []byte, priv *rsa.PrivateKey) ([]byte, error) {
	digest := sha256.Sum256(base)
	return rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
}

// VerifyRSAPKCS1v15 verifies an `rsa-v1_5-sha256` signature.
func VerifyRSAPKCS1v15(base, sig []byte, pub *rsa.PublicKey) bool {
	digest := sha256.Sum256(base)
	return rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig) == nil
}

// rsaPSSSaltLength is the fixed salt length the registry's rsa-pss-sha512
// entry specifies (spec.md §2: "PSS MGF1 SHA-512, salt length 64").
const rsaPSSSaltLength = 64

// SignRSAPSS signs base with RSA-PSS, SHA-512, MGF1-SHA512, salt length 64
// (`rsa-pss-sha512`). The teacher has no RSA-PSS implementation (only
// PKCS#1 v1.5, via its JWT/OIDC code); this is newly composed by following
// halimath-jose's rsaSigner shape with rsa.SignPSS in place of
// rsa.SignPKCS1v15.
func SignRSAPSS(base []byte, priv *rsa.PrivateKey) ([]byte, error) {
	digest := sha512.Sum512(base)
	opts := &rsa.PSSOptions{SaltLength: rsaPSSSaltLength, Hash: crypto.SHA512}
	return rsa.SignPSS(rand.Reader, priv, crypto.SHA512, digest[:], opts)
}

// VerifyRSAPSS verifies an `rsa-pss-sha512` signature.
func VerifyRSAPSS(base, sig []byte, pub *rsa.PublicKey) bool {
	digest := sha512.Sum512(base)
	opts := &rsa.PSSOptions{SaltLength: rsaPSSSaltLength, Hash: crypto.SHA512}
	return rsa.VerifyPSS(pub, crypto.SHA512, digest[:], sig, opts) == nil
}
