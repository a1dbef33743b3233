package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault tests the built-in defaults
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, int64(100<<20), cfg.Upload.MaxBytes)
}

// TestLoadFromEnv tests environment variable overrides
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("SEED_ENABLED", "false")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, int64(1024), cfg.Upload.MaxBytes)
}

// TestLoadTOMLOverride tests that CONFIG_FILE wins over the environment
func TestLoadTOMLOverride(t *testing.T) {
	content := `
[server]
port = "7070"

[ratelimit]
requests_per_second = 5
burst = 10
enabled = true
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
}

// TestLoadBadTOML tests the error path for a broken config file
func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0o644))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

// TestLoadOrDefaultFallsBack tests the fallback on load failure
func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/does/not/exist.toml")

	cfg := LoadOrDefault()
	assert.Equal(t, "8000", cfg.Server.Port)
}
