// Package formats is the key-decoder collaborator spec.md §1 assumes: "key
// material decoding from wire formats (PEM/DER) is assumed provided by a
// key-decoder collaborator." It decodes PKCS#8 private keys and X.509
// SubjectPublicKeyInfo public keys into the concrete Go crypto types the
// crypto package's dispatcher expects. There is no ASN.1 parser here beyond
// the standard library's (spec.md §9: "the core must not embed an ASN.1
// parser").
package formats

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// DecodePrivateKey decodes a PEM or raw DER PKCS#8 (falling back to SEC1
// for EC and PKCS#1 for RSA) private key into its concrete Go type.
func DecodePrivateKey(data []byte) (interface{}, error) {
	der := data
	if block, _ := pem.Decode(data); block != nil {
		der = block.Bytes
	}

	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return asPrivateKey(key)
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	return nil, fmt.Errorf("formats: unrecognized private key encoding")
}

func asPrivateKey(key interface{}) (interface{}, error) {
	switch k := key.(type) {
	case *rsa.PrivateKey, *ecdsa.PrivateKey, ed25519.PrivateKey:
		return k, nil
	default:
		return nil, fmt.Errorf("formats: unsupported private key type %T", key)
	}
}

// DecodePublicKey decodes a PEM or raw DER X.509 SubjectPublicKeyInfo
// public key into its concrete Go type.
func DecodePublicKey(data []byte) (interface{}, error) {
	der := data
	if block, _ := pem.Decode(data); block != nil {
		der = block.Bytes
	}
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("formats: decode public key: %w", err)
	}
	switch k := key.(type) {
	case *rsa.PublicKey, *ecdsa.PublicKey, ed25519.PublicKey:
		return k, nil
	default:
		return nil, fmt.Errorf("formats: unsupported public key type %T", key)
	}
}

// EncodePrivateKey marshals priv (an *rsa.PrivateKey, *ecdsa.PrivateKey, or
// ed25519.PrivateKey) into a PKCS#8 "PRIVATE KEY" PEM block.
func EncodePrivateKey(priv interface{}) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("formats: encode private key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// EncodePublicKey marshals pub (an *rsa.PublicKey, *ecdsa.PublicKey, or
// ed25519.PublicKey) into an X.509 SubjectPublicKeyInfo "PUBLIC KEY" PEM
// block.
func EncodePublicKey(pub interface{}) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("formats: encode public key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}
