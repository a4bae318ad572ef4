package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-chargen/internal/config"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, int64(0), cfg.Generator.Seed)
	assert.Equal(t, "4d6_drop_lowest", cfg.Generator.AbilityMethod)
	assert.Equal(t, "https://www.dnd5eapi.co/api/2014/", cfg.SRD.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.SRD.Timeout)
	assert.False(t, cfg.StorageEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CHARGEN_SEED", "42")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CHARGEN_CHARACTER_TTL", "1h")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.Equal(t, time.Hour, cfg.Redis.CharacterTTL)
	assert.True(t, cfg.StorageEnabled())
}

func TestLoadFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CHARGEN_ABILITY_METHOD=3d6\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CHARGEN_ABILITY_METHOD") })

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "3d6", cfg.Generator.AbilityMethod)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CHARGEN_SEED", "not-a-number")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cfg.Log.Level = "WARN"
	cfg.Log.Format = "JSON"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name  string
		field string
		set   func(*config.Config)
	}{
		{"log level", "CHARGEN_LOG_LEVEL", func(c *config.Config) { c.Log.Level = "verbose" }},
		{"log format", "CHARGEN_LOG_FORMAT", func(c *config.Config) { c.Log.Format = "xml" }},
		{"ability method", "CHARGEN_ABILITY_METHOD", func(c *config.Config) { c.Generator.AbilityMethod = "point_buy" }},
		{"redis db", "REDIS_DB", func(c *config.Config) { c.Redis.DB = -1 }},
		{"character ttl", "CHARGEN_CHARACTER_TTL", func(c *config.Config) { c.Redis.CharacterTTL = -time.Second }},
		{"srd timeout", "SRD_TIMEOUT", func(c *config.Config) { c.SRD.Timeout = -time.Second }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			require.NoError(t, err)
			tc.set(cfg)

			err = cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
