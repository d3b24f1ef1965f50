package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesFields(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "httpsigctl.yaml")

	content := `algorithm: "ecdsa-p256-sha256"
key_paths:
  private_key: "/keys/priv.pem"
  public_key: "/keys/pub.pem"
timing:
  max_age_seconds: 120
  max_skew_seconds: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ecdsa-p256-sha256", cfg.Algorithm)
	assert.Equal(t, "/keys/priv.pem", cfg.KeyPaths.PrivateKey)
	assert.Equal(t, "/keys/pub.pem", cfg.KeyPaths.PublicKey)
	assert.EqualValues(t, 120, cfg.Timing.MaxAgeSeconds)
	assert.EqualValues(t, 10, cfg.Timing.MaxSkewSeconds)
}

func TestLoadSubstitutesEnvVars(t *testing.T) {
	t.Setenv("HTTPSIGCTL_PRIVATE_KEY", "/run/secrets/priv.pem")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "httpsigctl.yaml")

	content := `algorithm: "${HTTPSIGCTL_ALG:ed25519}"
key_paths:
  private_key: "${HTTPSIGCTL_PRIVATE_KEY}"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ed25519", cfg.Algorithm)
	assert.Equal(t, "/run/secrets/priv.pem", cfg.KeyPaths.PrivateKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/httpsigctl.yaml")
	require.Error(t, err)
}

func TestDefaultHasSaneTiming(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "ed25519", cfg.Algorithm)
	assert.EqualValues(t, 300, cfg.Timing.MaxAgeSeconds)
	assert.EqualValues(t, 60, cfg.Timing.MaxSkewSeconds)
}
