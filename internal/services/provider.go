package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/events"
	"github.com/KirkDiggler/paranoidworld/internal/i18n"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/actors"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/compendium"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/items"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
	characterService "github.com/KirkDiggler/paranoidworld/internal/services/character"
	"github.com/KirkDiggler/paranoidworld/internal/services/migration"
	"github.com/KirkDiggler/paranoidworld/internal/settings"
	"github.com/KirkDiggler/paranoidworld/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	Migrations       *migration.Runner
	Events           *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Ruleset         *ruleset.Ruleset
	ActorRepository actors.Repository
	WorldItems      items.Repository
	Library         compendium.Library
	Settings        settings.Store
	Localizer       *i18n.Localizer
	Translator      i18n.Translator
	UUIDGenerator   uuid.Generator
	Logger          *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Use in-memory stores if none provided
	actorRepo := cfg.ActorRepository
	if actorRepo == nil {
		actorRepo = actors.NewInMemoryRepository()
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	worldItems := cfg.WorldItems
	if worldItems == nil {
		worldItems = items.NewInMemoryRepository(ids)
	}

	store := cfg.Settings
	if store == nil {
		viperStore, err := settings.New(settings.Config{Logger: logger})
		if err != nil {
			return nil, err
		}
		store = viperStore
	}

	bus := events.NewBus(logger)

	svcCfg := &characterService.ServiceConfig{
		Ruleset:    cfg.Ruleset,
		Repository: actorRepo,
		WorldItems: worldItems,
		Library:    cfg.Library,
		Translator: cfg.Translator,
		Settings:   store,
		Events:     bus,
		UUIDs:      ids,
		Logger:     logger,
	}
	if cfg.Localizer != nil {
		svcCfg.Localizer = cfg.Localizer
	}

	charService, err := characterService.NewService(svcCfg)
	if err != nil {
		return nil, err
	}

	runner, err := migration.NewRunner(&migration.Config{
		Actors:   actorRepo,
		Settings: store,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		CharacterService: charService,
		Migrations:       runner,
		Events:           bus,
	}, nil
}
