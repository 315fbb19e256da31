package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoadPath(t *testing.T) {
	path := writeConfig(t, `
env: "prod"
payment:
  key_id: "rzp_live_1"
  key_secret: "secret"
admin:
  key: "admin"
cleanup:
  interval: 1h
`)

	cfg := MustLoadPath(path)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "secret", cfg.Payment.KeySecret)
	assert.Equal(t, "INR", cfg.Payment.Currency)
	assert.Equal(t, 10*time.Second, cfg.Payment.Timeout)
	assert.Equal(t, time.Hour, cfg.Cleanup.Interval)
	assert.Equal(t, 24*time.Hour, cfg.Cleanup.Grace)
	assert.Equal(t, 48*time.Hour, cfg.Cleanup.PendingTTL)
	assert.Equal(t, "localhost:8080", cfg.HTTPServer.Address)
	assert.False(t, cfg.Mail.Enabled())
}

func TestMustLoadPathMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustLoadPath(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}

func TestMustLoadPathRequiresSecrets(t *testing.T) {
	path := writeConfig(t, `
env: "local"
`)

	assert.Panics(t, func() {
		MustLoadPath(path)
	})
}
