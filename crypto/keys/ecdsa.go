package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"hash"
	"math/big"
)

// SignECDSA signs base with priv, hashing with hf, and returns the fixed-
// width IEEE P1363 (r||s) encoding RFC 9421 requires (spec.md §4.4: "ECDSA
// signatures use IEEE P1363 (r||s) fixed-length form"). Adapted from
// halimath-jose's jws/ecdsa.go ecdsaSigner, generalized from a stateful
// signer type parameterized by key-bit-size into a stateless function over
// an explicit curve read from the key itself.
func SignECDSA(base []byte, priv *ecdsa.PrivateKey, hf func() hash.Hash) ([]byte, error) {
	h := hf()
	h.Write(base)
	digest := h.Sum(nil)
	r, s, err := ecdsa.Sign(rand.Reader, priv, digest)
	if err != nil {
		return nil, err
	}
	return packP1363(r, s, coordSize(priv.Curve)), nil
}

// VerifyECDSA verifies a fixed-width IEEE P1363 signature.
func VerifyECDSA(base, sig []byte, pub *ecdsa.PublicKey, hf func() hash.Hash) bool {
	r, s, ok := unpackP1363(sig, coordSize(pub.Curve))
	if !ok {
		return false
	}
	h := hf()
	h.Write(base)
	digest := h.Sum(nil)
	return ecdsa.Verify(pub, digest, r, s)
}

func coordSize(curve elliptic.Curve) int {
	return (curve.Params().BitSize + 7) / 8
}

func packP1363(r, s *big.Int, size int) []byte {
	out := make([]byte, 2*size)
	r.FillBytes(out[:size])
	s.FillBytes(out[size:])
	return out
}

func unpackP1363(sig []byte, size int) (r, s *big.Int, ok bool) {
	if len(sig) != 2*size {
		return nil, nil, false
	}
	return new(big.Int).SetBytes(sig[:size]), new(big.Int).SetBytes(sig[size:]), true
}
