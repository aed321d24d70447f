package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so stray .env files do not leak in.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "dist", cfg.OutDir)
	assert.True(t, cfg.Tracking)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, 365*24*time.Hour, cfg.Retention)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.ContentFile)
	assert.Empty(t, cfg.AdminToken)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PORTFOLIO_TRACKING", "false")
	t.Setenv("PORTFOLIO_RETENTION", "720h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.False(t, cfg.Tracking)
	assert.Equal(t, 720*time.Hour, cfg.Retention)
}

func TestLoadInvalidValue(t *testing.T) {
	chdir(t)
	t.Setenv("PORTFOLIO_SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadEnvFilePrecedence(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORTFOLIO_OUT_DIR=from-env\nPORTFOLIO_DB_PATH=env.db\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("PORTFOLIO_OUT_DIR=from-local\n"), 0o600))
	t.Setenv("PORTFOLIO_OUT_DIR", "")
	t.Setenv("PORTFOLIO_DB_PATH", "")
	os.Unsetenv("PORTFOLIO_OUT_DIR")
	os.Unsetenv("PORTFOLIO_DB_PATH")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-local", cfg.OutDir)
	assert.Equal(t, "env.db", cfg.DBPath)
}

func TestLoadExplicitEnvFileMissing(t *testing.T) {
	chdir(t)
	t.Setenv("ENV_FILE", "does-not-exist.env")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero retention", key: "PORTFOLIO_RETENTION", value: "0s"},
		{name: "negative retention", key: "PORTFOLIO_RETENTION", value: "-1h"},
		{name: "zero cleanup interval", key: "PORTFOLIO_CLEANUP_INTERVAL", value: "0s"},
		{name: "negative shutdown timeout", key: "PORTFOLIO_SHUTDOWN_TIMEOUT", value: "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadTrustedProxies(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, 24*time.Hour, cfg.CleanupInterval)

	t.Setenv("PORTFOLIO_TRUSTED_PROXIES", "10.0.0.0/8,127.0.0.1")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxies)
}
