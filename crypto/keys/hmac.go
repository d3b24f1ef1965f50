package keys

import (
	"crypto/hmac"
	"crypto/sha256"
)

// SignHMACSHA256 computes the HMAC-SHA256 tag over base. For the symmetric
// algorithm the tag is the signature directly (spec.md §4.4: "HMAC uses
// the algorithm's tag directly"). Adapted from halimath-jose's
// jws/hmac.go HMACSignerVerifier.
func SignHMACSHA256(base, key []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(base)
	return mac.Sum(nil)
}

// VerifyHMACSHA256 recomputes the tag and compares it to sig in constant
// time.
func VerifyHMACSHA256(base, sig, key []byte) bool {
	return hmac.Equal(SignHMACSHA256(base, key), sig)
}
