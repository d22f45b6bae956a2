package character

//go:generate mockgen -destination=mock/mock.go -package=mockcharacter -source=service.go

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/events"
	"github.com/KirkDiggler/paranoidworld/internal/formula"
	"github.com/KirkDiggler/paranoidworld/internal/i18n"
	"github.com/KirkDiggler/paranoidworld/internal/levelup"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/actors"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/compendium"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/items"
	"github.com/KirkDiggler/paranoidworld/internal/roll"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
	"github.com/KirkDiggler/paranoidworld/internal/settings"
	"github.com/KirkDiggler/paranoidworld/internal/uuid"
)

// Repository is an alias for the actor repository interface
type Repository = actors.Repository

// Service defines the character service interface
type Service interface {
	// CreateActor creates an actor. Characters start with the basic moves
	// and a pending level-up.
	CreateActor(ctx context.Context, input *CreateActorInput) (*entities.Actor, error)

	// GetActor retrieves an actor with its derived fields prepared
	GetActor(ctx context.Context, actorID string) (*entities.Actor, error)

	// ListActors lists the actors owned by ownerID, every actor when empty
	ListActors(ctx context.Context, ownerID string) ([]*entities.Actor, error)

	// UpdateActor applies a sheet edit
	UpdateActor(ctx context.Context, actorID string, patch entities.ActorPatch) (*entities.Actor, error)

	// Roll resolves an ability, formula or prompt roll for an actor
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// RollItem rolls an owned move, or posts it when it has no roll
	RollItem(ctx context.Context, input *RollItemInput) (*RollOutput, error)

	// MarkXP adds one XP, as offered on a failed roll
	MarkXP(ctx context.Context, actorID string) (*entities.Actor, error)

	// AdjustItemCounter moves an owned item's uses or quantity by delta
	AdjustItemCounter(ctx context.Context, input *AdjustItemCounterInput) (*entities.Item, error)

	// AdjustResource moves a numeric sheet field by delta
	AdjustResource(ctx context.Context, actorID, path string, delta int) (*entities.Actor, error)

	// CanLevelUp reports whether the level-up dialog should be offered
	CanLevelUp(ctx context.Context, actorID string) (bool, error)

	// LevelUpOptions computes what the actor may pick
	LevelUpOptions(ctx context.Context, actorID string) (*levelup.CandidateSet, error)

	// LevelUp applies the picks against freshly computed options
	LevelUp(ctx context.Context, actorID string, selections levelup.Selections) (*levelup.Outcome, error)

	// ListClasses lists the known class names
	ListClasses(ctx context.Context) ([]string, error)

	// CreateWorldItem adds an item to the world
	CreateWorldItem(ctx context.Context, item *entities.Item) (*entities.Item, error)
}

// Localizer resolves and formats localization keys
type Localizer interface {
	Localize(key string) string
	Format(key string, args ...any) string
}

// ServiceConfig holds configuration for the service. Collaborators left nil
// are built from the others where possible.
type ServiceConfig struct {
	Ruleset    *ruleset.Ruleset
	Repository Repository // Required
	WorldItems items.Repository
	Library    compendium.Library
	Equipment  *compendium.EquipmentCache
	Translator i18n.Translator
	Localizer  Localizer
	Settings   settings.Store
	Formulas   *formula.Evaluator
	Resolver   *roll.Resolver
	Engine     *levelup.Engine
	Applier    *levelup.Applier
	Events     *events.Bus
	UUIDs      uuid.Generator
	Logger     *zap.Logger
}

// service implements the Service interface
type service struct {
	rules      *ruleset.Ruleset
	repository Repository
	world      items.Repository
	library    compendium.Library
	equipment  *compendium.EquipmentCache
	localizer  Localizer
	settings   settings.Store
	formulas   *formula.Evaluator
	resolver   *roll.Resolver
	engine     *levelup.Engine
	applier    *levelup.Applier
	events     *events.Bus
	ids        uuid.Generator
	logger     *zap.Logger
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil || cfg.Repository == nil {
		return nil, pwerr.InvalidArgument("repository is required")
	}

	svc := &service{
		rules:      cfg.Ruleset,
		repository: cfg.Repository,
		world:      cfg.WorldItems,
		library:    cfg.Library,
		equipment:  cfg.Equipment,
		localizer:  cfg.Localizer,
		settings:   cfg.Settings,
		formulas:   cfg.Formulas,
		resolver:   cfg.Resolver,
		engine:     cfg.Engine,
		applier:    cfg.Applier,
		events:     cfg.Events,
		ids:        cfg.UUIDs,
		logger:     cfg.Logger,
	}

	if svc.rules == nil {
		svc.rules = ruleset.Default()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	svc.logger = svc.logger.Named("character")
	if svc.ids == nil {
		svc.ids = uuid.NewGoogleUUIDGenerator()
	}
	if svc.events == nil {
		svc.events = events.NewBus(svc.logger)
	}
	if svc.formulas == nil {
		evaluator, err := formula.NewEvaluator()
		if err != nil {
			return nil, err
		}
		svc.formulas = evaluator
	}

	var (
		world   compendium.WorldItems
		library = svc.library
	)
	if svc.world != nil {
		world = svc.world
	}
	if svc.equipment == nil && (library != nil || world != nil) {
		svc.equipment = compendium.NewEquipmentCache(library, world, svc.logger)
	}

	var err error
	if svc.resolver == nil {
		svc.resolver, err = roll.NewResolver(&roll.ResolverConfig{
			Ruleset:   svc.rules,
			Localizer: svc.localizer,
			Logger:    svc.logger,
		})
		if err != nil {
			return nil, err
		}
	}

	if svc.engine == nil {
		engineCfg := &levelup.EngineConfig{
			Ruleset:    svc.rules,
			World:      world,
			Library:    library,
			Translator: cfg.Translator,
			XPRequired: svc.xpRequired,
			Logger:     svc.logger,
		}
		if svc.equipment != nil {
			engineCfg.Equipment = svc.equipment
		}
		svc.engine, err = levelup.NewEngine(engineCfg)
		if err != nil {
			return nil, err
		}
	}

	if svc.applier == nil {
		applierCfg := &levelup.ApplierConfig{
			Ruleset:       svc.rules,
			Actors:        svc.repository,
			Events:        svc.events,
			UUIDGenerator: svc.ids,
			XPRequired:    svc.xpRequired,
			Logger:        svc.logger,
		}
		if svc.localizer != nil {
			applierCfg.Localizer = svc.localizer
		}
		svc.applier, err = levelup.NewApplier(applierCfg)
		if err != nil {
			return nil, err
		}
	}

	if svc.equipment != nil {
		cache := svc.equipment
		svc.events.Subscribe(events.EventTypeItemCreated, events.NewListener("equipment-cache", events.PriorityCache, func(e events.Event) error {
			created, ok := e.(*events.ItemCreatedEvent)
			if ok && created.Item != nil && created.Item.Type == entities.ItemTypeEquipment {
				cache.Invalidate()
			}
			return nil
		}))
	}

	return svc, nil
}

// xpRequired evaluates the world's XP formula over an actor's roll data
func (s *service) xpRequired(data map[string]any) (int, error) {
	expr := settings.DefaultXPFormula
	if s.settings != nil {
		expr = settings.XPFormula(s.settings)
	}
	return s.formulas.EvalInt(expr, data)
}

// prepare fills in the derived sheet fields
func (s *service) prepare(actor *entities.Actor) *entities.Actor {
	actor.PrepareDerived(s.rules, s.xpRequired)
	return actor
}

func (s *service) localize(key string) string {
	if s.localizer == nil {
		return key
	}
	return s.localizer.Localize(key)
}

func (s *service) emit(event events.Event) {
	if err := s.events.Emit(event); err != nil {
		s.logger.Warn("event listener failed",
			zap.String("event", string(event.GetType())),
			zap.Error(err),
		)
	}
}

// CreateActor creates a new actor
func (s *service) CreateActor(ctx context.Context, input *CreateActorInput) (*entities.Actor, error) {
	if err := ValidateInput(input); err != nil {
		return nil, pwerr.WrapWithCode(err, pwerr.CodeInvalidArgument, "invalid actor creation input").
			WithMeta("operation", "CreateActor")
	}

	actorType := input.Type
	if actorType == "" {
		actorType = entities.ActorTypeCharacter
	}

	actor := &entities.Actor{
		ID:        s.ids.New(),
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		Type:      actorType,
		Abilities: make(map[ruleset.Ability]entities.AbilityScore),
		Attributes: entities.Attributes{
			Level: entities.Tracker{Value: 1},
		},
		Details: entities.Details{Class: input.Class},
	}
	for _, def := range s.rules.Abilities() {
		actor.Abilities[def.Key] = entities.AbilityScore{Value: input.Abilities[def.Key]}
	}

	if actor.IsCharacter() {
		actor.Flags.Levelup = true
		actor.Details.Look = s.localize(s.rules.Key("DefaultLook"))

		moves, err := s.basicMoves(ctx)
		if err != nil {
			return nil, pwerr.Wrap(err, "failed to load basic moves").WithMeta("operation", "CreateActor")
		}
		for _, move := range moves {
			move.ID = s.ids.New()
		}
		actor.Items = moves
	}

	if err := s.repository.Create(ctx, actor); err != nil {
		return nil, pwerr.Wrapf(err, "failed to create actor '%s'", input.Name)
	}

	s.logger.Info("created actor",
		zap.String("actor_id", actor.ID),
		zap.String("type", string(actor.Type)),
		zap.Int("moves", len(actor.Items)),
	)

	return s.prepare(actor), nil
}

// basicMoves collects the basic and special moves every character starts
// with, world moves first
func (s *service) basicMoves(ctx context.Context) ([]*entities.Item, error) {
	keep := func(items []*entities.Item) []*entities.Item {
		var out []*entities.Item
		for _, item := range items {
			if item.Type != entities.ItemTypeMove || item.Move == nil {
				continue
			}
			if item.Move.MoveType == entities.MoveTypeBasic || item.Move.MoveType == entities.MoveTypeSpecial {
				out = append(out, item.Clone())
			}
		}
		return out
	}

	var local []*entities.Item
	if s.world != nil {
		moves, err := s.world.List(ctx, entities.ItemTypeMove)
		if err != nil {
			return nil, err
		}
		local = keep(moves)
	}

	var library []*entities.Item
	if s.library != nil {
		pack, err := s.library.Pack(ctx, s.rules.BasicMovesPackID())
		if err != nil && !pwerr.IsNotFound(err) {
			return nil, err
		}
		library = keep(pack)
	}

	return levelup.MergeMoves(local, library), nil
}

// GetActor retrieves an actor
func (s *service) GetActor(ctx context.Context, actorID string) (*entities.Actor, error) {
	if actorID == "" {
		return nil, pwerr.InvalidArgument("actor ID is required")
	}

	actor, err := s.repository.Get(ctx, actorID)
	if err != nil {
		return nil, pwerr.Wrapf(err, "failed to get actor '%s'", actorID).
			WithMeta("actor_id", actorID)
	}
	return s.prepare(actor), nil
}

// ListActors lists actors
func (s *service) ListActors(ctx context.Context, ownerID string) ([]*entities.Actor, error) {
	list, err := s.repository.List(ctx, actors.ListOptions{OwnerID: ownerID})
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to list actors")
	}
	for _, actor := range list {
		s.prepare(actor)
	}
	return list, nil
}

// UpdateActor applies patch. Raising the level flags a pending level-up and
// harm changes are reported with their before and after values.
func (s *service) UpdateActor(ctx context.Context, actorID string, patch entities.ActorPatch) (*entities.Actor, error) {
	before, err := s.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return before, nil
	}

	if patch.Level != nil && *patch.Level > before.Level() && patch.Levelup == nil {
		pending := true
		patch.Levelup = &pending
	}

	after, err := s.repository.Update(ctx, actorID, patch)
	if err != nil {
		return nil, pwerr.Wrapf(err, "failed to update actor '%s'", actorID).
			WithMeta("actor_id", actorID)
	}
	s.prepare(after)

	var harm *events.HarmChange
	if patch.Harm != nil && *patch.Harm != before.Attributes.Harm.Value {
		harm = &events.HarmChange{Original: before.Attributes.Harm.Value, Current: after.Attributes.Harm.Value}
	}
	s.emit(events.NewActorChangedEvent(before, after, harm))

	return after, nil
}
