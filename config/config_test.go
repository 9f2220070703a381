package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
env:
  env: test
  serviceName: hirehub
  debug: true
  log:
    pretty: true
    level: debug
http:
  port: 9090
secretKey:
  access: file-access-secret
  refresh: file-refresh-secret
auth:
  bcryptCost: 10
  accessTokenTtl: 24h
  refreshTokenTtl: 168h
`

func writeSampleConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleConfig), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_FromFile(t *testing.T) {
	writeSampleConfig(t)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "hirehub", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "file-access-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeSampleConfig(t)
	t.Setenv("SECRETKEY_ACCESS", "env-access-secret")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("AUTH_BCRYPTCOST", "4")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	// An override must land on the camelCase key loaded from the file and
	// leave the sibling file values in place.
	assert.Equal(t, "env-access-secret", cfg.SecretKey.Access)
	assert.Equal(t, "file-refresh-secret", cfg.SecretKey.Refresh)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
}
