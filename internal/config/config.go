// Package config loads rpg-chargen settings from the environment.
package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/generator"
)

var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds all configuration for the application
type Config struct {
	Log       LogConfig
	Generator GeneratorConfig
	Redis     RedisConfig
	SRD       SRDConfig
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `env:"CHARGEN_LOG_LEVEL" envDefault:"info"`
	Format string `env:"CHARGEN_LOG_FORMAT" envDefault:"text"`
}

// GeneratorConfig holds generation defaults
type GeneratorConfig struct {
	// Seed of 0 means draw from the crypto roller
	Seed          int64  `env:"CHARGEN_SEED" envDefault:"0"`
	AbilityMethod string `env:"CHARGEN_ABILITY_METHOD" envDefault:"4d6_drop_lowest"`
}

// RedisConfig holds Redis-specific configuration. An empty Addr disables
// character storage.
type RedisConfig struct {
	Addr         string        `env:"REDIS_ADDR"`
	Password     string        `env:"REDIS_PASSWORD"`
	DB           int           `env:"REDIS_DB" envDefault:"0"`
	CharacterTTL time.Duration `env:"CHARGEN_CHARACTER_TTL" envDefault:"0s"`
}

// SRDConfig holds D&D 5e SRD API configuration
type SRDConfig struct {
	BaseURL  string        `env:"SRD_BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	Timeout  time.Duration `env:"SRD_TIMEOUT" envDefault:"30s"`
	CacheTTL time.Duration `env:"SRD_CACHE_TTL" envDefault:"24h"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot. Call it again after
// applying flag overrides.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("CHARGEN_LOG_LEVEL", strings.ToLower(c.Log.Level), logLevels, vb)
	errors.ValidateEnum("CHARGEN_LOG_FORMAT", strings.ToLower(c.Log.Format), logFormats, vb)
	errors.ValidateEnum("CHARGEN_ABILITY_METHOD", c.Generator.AbilityMethod, generator.Methods, vb)

	if c.Redis.DB < 0 {
		vb.Field("REDIS_DB", "must not be negative")
	}
	if c.Redis.CharacterTTL < 0 {
		vb.Field("CHARGEN_CHARACTER_TTL", "must not be negative")
	}
	if c.SRD.Timeout < 0 {
		vb.Field("SRD_TIMEOUT", "must not be negative")
	}
	if c.SRD.CacheTTL < 0 {
		vb.Field("SRD_CACHE_TTL", "must not be negative")
	}

	return vb.Build()
}

// StorageEnabled reports whether a redis endpoint is configured
func (c *Config) StorageEnabled() bool {
	return c.Redis.Addr != ""
}
