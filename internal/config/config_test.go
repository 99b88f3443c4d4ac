package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, [2]float64{0, -9.81}, cfg.Projectile.Gravity)
	assert.Equal(t, 0.75, cfg.Projectile.Reflection)
}

func TestDecode_OverridesDefaults(t *testing.T) {
	cfg, err := Decode(`
title = "Bounce"
poll_interval_ms = 20

[projectile]
height = 12.5
gravity = [1.0, -3.7]
`)
	require.NoError(t, err)
	assert.Equal(t, "Bounce", cfg.Title)
	assert.Equal(t, 20*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 12.5, cfg.Projectile.Height)
	assert.Equal(t, [2]float64{1, -3.7}, cfg.Projectile.Gravity)
	assert.Equal(t, 0.1, cfg.Projectile.Timestep)
}

func TestDecode_RejectsInvalid(t *testing.T) {
	_, err := Decode(`poll_interval_ms = 0`)
	assert.Error(t, err)

	_, err = Decode(`title = `)
	assert.Error(t, err)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gwen.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"debug\"\n"), 0o600))
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv(EnvLogLevel, "error")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Title, cfg.Title)
}

func TestCheckPlatform(t *testing.T) {
	name, err := checkPlatform("darwin")
	require.NoError(t, err)
	assert.Equal(t, "macOS", name)

	_, err = checkPlatform("plan9")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}
