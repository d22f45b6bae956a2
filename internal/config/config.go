package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Store backends for actor documents
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Store   string        `env:"PW_STORE" envDefault:"memory"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	Content ContentConfig `envPrefix:"PW_"`
	Log     LogConfig     `envPrefix:"PW_LOG_"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// ContentConfig locates the rules content, compendium and settings
type ContentConfig struct {
	// Dir holds the YAML compendium packs
	Dir string `env:"CONTENT_DIR" envDefault:"content"`

	// CompendiumDB is a SQLite compendium used instead of Dir when set
	CompendiumDB string `env:"COMPENDIUM_DB"`

	// Ruleset overrides the embedded rules content
	Ruleset string `env:"RULESET"`

	SettingsPath string `env:"SETTINGS_PATH" envDefault:"settings.yaml"`
	Locale       string `env:"LOCALE" envDefault:"en"`
	Translations string `env:"TRANSLATIONS"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level       string `env:"LEVEL" envDefault:"info"`
	Development bool   `env:"DEV" envDefault:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom loads configuration from the given variables instead of the
// process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Store != StoreMemory && cfg.Store != StoreRedis {
		return nil, fmt.Errorf("PW_STORE must be %q or %q, got %q", StoreMemory, StoreRedis, cfg.Store)
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("PW_LOG_LEVEL: %w", err)
	}

	return &cfg, nil
}

// NewLogger builds the application logger
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
