package crypto

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"fmt"

	"github.com/go-httpsig/httpsig/crypto/keys"
)

var (
	p256Ref = elliptic.P256()
	p384Ref = elliptic.P384()
)

func referenceCurve(bitSize int) elliptic.Curve {
	if bitSize == 384 {
		return p384Ref
	}
	return p256Ref
}

// Sign dispatches base to the concrete implementation for alg, the crypto
// primitives collaborator's `sign(bytes, privateKey, alg) -> bytes`
// interface (spec.md §6). priv must be the concrete Go key type the
// algorithm's key class expects: *rsa.PrivateKey for rsa-v1_5-sha256 and
// rsa-pss-sha512, *ecdsa.PrivateKey for the ecdsa-* entries, ed25519.PrivateKey
// for ed25519, or a raw []byte secret for hmac-sha256.
func Sign(base []byte, priv interface{}, alg Algorithm) ([]byte, error) {
	info, ok := Lookup(alg)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
	switch info.KeyClass {
	case KeyClassEd25519:
		k, ok := priv.(ed25519.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: ed25519 private key required for %s", ErrInvalidKey, alg)
		}
		return keys.SignEd25519(base, k)
	case KeyClassRSA:
		k, ok := priv.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: rsa private key required for %s", ErrInvalidKey, alg)
		}
		return keys.SignRSAPKCS1v15(base, k)
	case KeyClassRSAPSS:
		k, ok := priv.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: rsa private key required for %s", ErrInvalidKey, alg)
		}
		return keys.SignRSAPSS(base, k)
	case KeyClassEC:
		k, ok := priv.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: ecdsa private key required for %s", ErrInvalidKey, alg)
		}
		if err := ValidateCurve(k.Curve, referenceCurve(info.CurveBitSize)); err != nil {
			return nil, err
		}
		if info.CurveBitSize == 384 {
			return keys.SignP384(base, k)
		}
		return keys.SignP256(base, k)
	case KeyClassHMAC:
		k, ok := priv.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: raw secret required for %s", ErrInvalidKey, alg)
		}
		return keys.SignHMACSHA256(base, k), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// Verify dispatches verification of sig over base to the concrete
// implementation for alg. pub follows the same concrete-type convention as
// Sign's priv parameter (a raw []byte secret stands in for the HMAC key).
func Verify(base, sig []byte, pub interface{}, alg Algorithm) error {
	info, ok := Lookup(alg)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
	var verified bool
	switch info.KeyClass {
	case KeyClassEd25519:
		k, ok := pub.(ed25519.PublicKey)
		if !ok {
			return fmt.Errorf("%w: ed25519 public key required for %s", ErrInvalidKey, alg)
		}
		verified = keys.VerifyEd25519(base, sig, k)
	case KeyClassRSA:
		k, ok := pub.(*rsa.PublicKey)
		if !ok {
			return fmt.Errorf("%w: rsa public key required for %s", ErrInvalidKey, alg)
		}
		verified = keys.VerifyRSAPKCS1v15(base, sig, k)
	case KeyClassRSAPSS:
		k, ok := pub.(*rsa.PublicKey)
		if !ok {
			return fmt.Errorf("%w: rsa public key required for %s", ErrInvalidKey, alg)
		}
		verified = keys.VerifyRSAPSS(base, sig, k)
	case KeyClassEC:
		k, ok := pub.(*ecdsa.PublicKey)
		if !ok {
			return fmt.Errorf("%w: ecdsa public key required for %s", ErrInvalidKey, alg)
		}
		if err := ValidateCurve(k.Curve, referenceCurve(info.CurveBitSize)); err != nil {
			return err
		}
		if info.CurveBitSize == 384 {
			verified = keys.VerifyP384(base, sig, k)
		} else {
			verified = keys.VerifyP256(base, sig, k)
		}
	case KeyClassHMAC:
		k, ok := pub.([]byte)
		if !ok {
			return fmt.Errorf("%w: raw secret required for %s", ErrInvalidKey, alg)
		}
		verified = keys.VerifyHMACSHA256(base, sig, k)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
	if !verified {
		return ErrVerificationFailed
	}
	return nil
}
