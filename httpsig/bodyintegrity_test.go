package httpsig

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDigestMatch(t *testing.T) {
	body := []byte("hello world")
	sum := sha256.Sum256(body)
	header := "sha-256=:" + base64.StdEncoding.EncodeToString(sum[:]) + ":"

	require.NoError(t, ValidateDigest(header, body))
}

func TestValidateDigestMismatch(t *testing.T) {
	body := []byte("hello world")
	sum := sha256.Sum256([]byte("tampered"))
	header := "sha-256=:" + base64.StdEncoding.EncodeToString(sum[:]) + ":"

	err := ValidateDigest(header, body)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, IncorrectSignature, kind)
}

func TestValidateContentDigestRequiresCoverage(t *testing.T) {
	ctx := NewMessageSnapshot()
	ctx.AddHeader("content-digest", "sha-256=:AA==:")

	method, err := NewDerivedComponent(Method)
	require.NoError(t, err)

	err = ValidateContentDigest([]Component{method}, ctx, []byte("x"))
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, MissingComponent, kind)
}
