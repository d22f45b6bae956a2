package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/config"
	"github.com/KirkDiggler/paranoidworld/internal/i18n"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/actors"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/compendium"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
	"github.com/KirkDiggler/paranoidworld/internal/services"
	characterService "github.com/KirkDiggler/paranoidworld/internal/services/character"
	"github.com/KirkDiggler/paranoidworld/internal/services/migration"
	"github.com/KirkDiggler/paranoidworld/internal/settings"
)

// migrator runs pending data migrations
type migrator interface {
	Run(ctx context.Context) (*migration.Report, error)
}

// app is what the commands run against
type app struct {
	Characters characterService.Service
	Migrations migrator
	Ruleset    *ruleset.Ruleset
	Logger     *zap.Logger
	Out        io.Writer

	closers []func() error
}

// Close releases the stores opened for the app
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Logger.Warn("failed to close store", zap.Error(err))
		}
	}
}

// appFactory builds the app for one command run
type appFactory func(ctx context.Context) (*app, error)

// newApp wires the app from the environment
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	a := &app{Logger: logger, Out: os.Stdout}
	a.closers = append(a.closers, func() error {
		_ = logger.Sync()
		return nil
	})

	rs, err := loadRuleset(cfg.Content.Ruleset)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Ruleset = rs

	providerConfig := &services.ProviderConfig{
		Ruleset: rs,
		Logger:  logger,
	}

	if cfg.Store == config.StoreRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		logger.Info("using redis for actors", zap.String("addr", cfg.Redis.Addr))

		providerConfig.ActorRepository = actors.NewRedis(client, logger)
		a.closers = append(a.closers, client.Close)
	} else {
		logger.Debug("using in-memory actors")
	}

	if cfg.Content.CompendiumDB != "" {
		lib, err := compendium.OpenSQLite(cfg.Content.CompendiumDB, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		providerConfig.Library = lib
		a.closers = append(a.closers, lib.Close)
	} else {
		lib, err := loadContentDir(cfg.Content.Dir, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		providerConfig.Library = lib
	}

	store, err := settings.New(settings.Config{Path: cfg.Content.SettingsPath, Logger: logger})
	if err != nil {
		a.Close()
		return nil, err
	}
	providerConfig.Settings = store

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		a.Close()
		return nil, err
	}
	localizer, err := bundle.Localizer(cfg.Content.Locale)
	if err != nil {
		a.Close()
		return nil, err
	}
	providerConfig.Localizer = localizer

	if cfg.Content.Translations != "" {
		translations, err := loadTranslations(cfg.Content.Translations)
		if err != nil {
			a.Close()
			return nil, err
		}
		providerConfig.Translator = translations
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Characters = provider.CharacterService
	a.Migrations = provider.Migrations
	return a, nil
}

func loadRuleset(path string) (*ruleset.Ruleset, error) {
	if path == "" {
		return ruleset.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ruleset: %w", err)
	}
	defer f.Close()

	return ruleset.Load(f)
}

// loadContentDir reads YAML packs from dir. A missing directory leaves the
// compendium empty.
func loadContentDir(dir string, logger *zap.Logger) (compendium.Library, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logger.Warn("content directory not found, compendium is empty", zap.String("dir", dir))
		return compendium.NewStaticLibrary(nil)
	}
	return compendium.LoadFS(os.DirFS(dir), ".")
}

func loadTranslations(path string) (*i18n.Translations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translations: %w", err)
	}
	defer f.Close()

	return i18n.LoadTranslations(f)
}
