// Package settings is the key/value settings store. Keys live in a scope
// ("world" or "client") and are addressed as "<scope>.<key>".
package settings

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Scope separates settings shared by the whole world from per-client ones
type Scope string

const (
	ScopeWorld  Scope = "world"
	ScopeClient Scope = "client"
)

// Setting keys
const (
	KeyXPFormula              = "xpFormula"
	KeyAdvForward             = "advForward"
	KeyItemIcons              = "itemIcons"
	KeyNightmode              = "nightmode"
	KeyDriveSingle            = "driveSingle"
	KeyDrivePlural            = "drivePlural"
	KeyBondSingle             = "bondSingle"
	KeyBondPlural             = "bondPlural"
	KeySystemMigrationVersion = "systemMigrationVersion"
)

// DefaultXPFormula is the XP needed to level when the world does not override it
const DefaultXPFormula = "@attributes.level.value + 7"

// Store reads and writes settings
type Store interface {
	GetString(scope Scope, key string) string
	GetBool(scope Scope, key string) bool
	GetInt(scope Scope, key string) int
	Set(scope Scope, key string, value any) error
}

// ViperStore keeps settings in a viper instance, optionally backed by a YAML
// file
type ViperStore struct {
	mu     sync.RWMutex
	v      *viper.Viper
	path   string
	logger *zap.Logger
}

// Config configures a ViperStore
type Config struct {
	// Path is the YAML file settings are read from and saved to. Empty keeps
	// settings in memory only.
	Path   string
	Logger *zap.Logger
}

// New creates a store with the system defaults registered and, when a path
// is configured and the file exists, the saved values loaded
func New(cfg Config) (*ViperStore, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	v := viper.New()
	registerDefaults(v)

	s := &ViperStore{v: v, path: cfg.Path, logger: logger.Named("settings")}

	if cfg.Path != "" {
		v.SetConfigFile(cfg.Path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read settings %s: %w", cfg.Path, err)
			}
			s.logger.Info("settings file not found, using defaults", zap.String("path", cfg.Path))
		}
	}

	return s, nil
}

// registerDefaults mirrors the system's registered settings
func registerDefaults(v *viper.Viper) {
	v.SetDefault(key(ScopeWorld, KeyXPFormula), DefaultXPFormula)
	v.SetDefault(key(ScopeWorld, KeyAdvForward), false)
	v.SetDefault(key(ScopeWorld, KeyDriveSingle), "")
	v.SetDefault(key(ScopeWorld, KeyDrivePlural), "")
	v.SetDefault(key(ScopeWorld, KeyBondSingle), "")
	v.SetDefault(key(ScopeWorld, KeyBondPlural), "")
	v.SetDefault(key(ScopeWorld, KeySystemMigrationVersion), 0)
	v.SetDefault(key(ScopeClient, KeyItemIcons), true)
	v.SetDefault(key(ScopeClient, KeyNightmode), false)
}

func key(scope Scope, name string) string {
	return string(scope) + "." + name
}

// GetString returns a string setting
func (s *ViperStore) GetString(scope Scope, name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetString(key(scope, name))
}

// GetBool returns a boolean setting
func (s *ViperStore) GetBool(scope Scope, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetBool(key(scope, name))
}

// GetInt returns an integer setting
func (s *ViperStore) GetInt(scope Scope, name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetInt(key(scope, name))
}

// Set changes a setting and persists the store when it is file backed
func (s *ViperStore) Set(scope Scope, name string, value any) error {
	if scope != ScopeWorld && scope != ScopeClient {
		return fmt.Errorf("unknown settings scope %q", scope)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(key(scope, name), value)
	if s.path == "" {
		return nil
	}

	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to save settings %s: %w", s.path, err)
	}
	s.logger.Debug("setting saved", zap.String("scope", string(scope)), zap.String("key", name))
	return nil
}

// XPFormula is the world's XP-required formula
func XPFormula(s Store) string {
	if f := s.GetString(ScopeWorld, KeyXPFormula); f != "" {
		return f
	}
	return DefaultXPFormula
}

var _ Store = (*ViperStore)(nil)
