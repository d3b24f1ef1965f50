package crypto

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519RoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	base := []byte("the signature base")

	sig, err := Sign(base, priv, Ed25519)
	require.NoError(t, err)
	assert.NoError(t, Verify(base, sig, pub, Ed25519))

	tampered := append([]byte{}, base...)
	tampered[0] ^= 0xFF
	assert.ErrorIs(t, Verify(tampered, sig, pub, Ed25519), ErrVerificationFailed)
}

func TestHMACRoundTrip(t *testing.T) {
	key := []byte("shared-secret")
	base := []byte("the signature base")
	sig, err := Sign(base, key, HMACSHA256)
	require.NoError(t, err)
	assert.NoError(t, Verify(base, sig, key, HMACSHA256))
	assert.Error(t, Verify(base, sig, []byte("wrong-secret"), HMACSHA256))
}

func TestECDSAP256RoundTrip(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	base := []byte("the signature base")

	sig, err := Sign(base, priv, ECDSAP256SHA256)
	require.NoError(t, err)
	assert.Len(t, sig, 64)
	assert.NoError(t, Verify(base, sig, &priv.PublicKey, ECDSAP256SHA256))
}

func TestECDSAP384RoundTrip(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)
	base := []byte("the signature base")

	sig, err := Sign(base, priv, ECDSAP384SHA384)
	require.NoError(t, err)
	assert.Len(t, sig, 96)
	assert.NoError(t, Verify(base, sig, &priv.PublicKey, ECDSAP384SHA384))
}

func TestECDSAWrongCurveIsInvalidKey(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)
	_, err = Sign([]byte("x"), priv, ECDSAP256SHA256)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestRSARoundTrip(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	base := []byte("the signature base")

	sig, err := Sign(base, priv, RSAV15SHA256)
	require.NoError(t, err)
	assert.NoError(t, Verify(base, sig, &priv.PublicKey, RSAV15SHA256))

	sigPSS, err := Sign(base, priv, RSAPSSSHA512)
	require.NoError(t, err)
	assert.NoError(t, Verify(base, sigPSS, &priv.PublicKey, RSAPSSSHA512))
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := Sign([]byte("x"), []byte("k"), Algorithm("does-not-exist"))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
