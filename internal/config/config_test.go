package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvVersion, "")
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvDebug, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.APIRoot)
	assert.Zero(t, cfg.Version)
	assert.Zero(t, cfg.Timeout)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvAPIURL, "https://jikan.example.com")
	t.Setenv(EnvVersion, "4")
	t.Setenv(EnvTimeout, "10s")
	t.Setenv(EnvDebug, "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://jikan.example.com", cfg.APIRoot)
	assert.Equal(t, 4, cfg.Version)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
}

func TestLoadRejectsInvalidVersion(t *testing.T) {
	for _, v := range []string{"abc", "0", "-2"} {
		t.Setenv(EnvVersion, v)
		_, err := Load()
		assert.Error(t, err, "version %q", v)
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv(EnvVersion, "")
	for _, v := range []string{"soon", "-5s", "0s"} {
		t.Setenv(EnvTimeout, v)
		_, err := Load()
		assert.Error(t, err, "timeout %q", v)
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", "on", " y "} {
		assert.True(t, ParseBool(v), "value %q", v)
	}
	for _, v := range []string{"", "0", "false", "off", "maybe"} {
		assert.False(t, ParseBool(v), "value %q", v)
	}
}
