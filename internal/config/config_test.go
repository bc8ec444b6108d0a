package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DATA_DIR", "DEBUG", "ALLOWED_HOSTS", "SECRET_KEY"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8001", cfg.Addr)
	assert.Equal(t, "./data_feed", cfg.DataDir)
	assert.False(t, cfg.Debug)
	assert.Equal(t, []string{"*"}, cfg.AllowedHosts)
	assert.Empty(t, cfg.SecretKey)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("DATA_DIR", "/srv/feed")
	t.Setenv("DEBUG", "true")
	t.Setenv("ALLOWED_HOSTS", "nba.example.com,projections.example.com")
	t.Setenv("SECRET_KEY", "opaque")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/srv/feed", cfg.DataDir)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"nba.example.com", "projections.example.com"}, cfg.AllowedHosts)
	assert.Equal(t, "opaque", cfg.SecretKey)
}
