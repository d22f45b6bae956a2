// Package levelup computes what an actor may pick when leveling up and
// applies the confirmed picks as one atomic change.
package levelup

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/i18n"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/compendium"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// EquipmentResolver resolves equipment ids against the equipment library
type EquipmentResolver interface {
	Resolve(ctx context.Context, ids []string) ([]*entities.Item, error)
}

// EngineConfig holds the engine's collaborators. World, Library, Equipment
// and Translator are optional.
type EngineConfig struct {
	Ruleset    *ruleset.Ruleset
	World      compendium.WorldItems
	Library    compendium.Library
	Equipment  EquipmentResolver
	Translator i18n.Translator
	XPRequired entities.XPRequiredFunc
	Logger     *zap.Logger
}

// Engine builds candidate sets
type Engine struct {
	rules      *ruleset.Ruleset
	world      compendium.WorldItems
	library    compendium.Library
	equipment  EquipmentResolver
	translator i18n.Translator
	xpRequired entities.XPRequiredFunc
	classes    *ClassList
	logger     *zap.Logger
}

// NewEngine creates an eligibility engine
func NewEngine(cfg *EngineConfig) (*Engine, error) {
	if cfg == nil {
		return nil, pwerr.InvalidArgument("engine config is required")
	}
	if cfg.Ruleset == nil {
		return nil, pwerr.InvalidArgument("ruleset is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		rules:      cfg.Ruleset,
		world:      cfg.World,
		library:    cfg.Library,
		equipment:  cfg.Equipment,
		translator: cfg.Translator,
		xpRequired: cfg.XPRequired,
		classes:    NewClassList(cfg.Ruleset, cfg.World, cfg.Library),
		logger:     logger.Named("levelup"),
	}, nil
}

// Classes exposes the merged class list
func (e *Engine) Classes() *ClassList {
	return e.classes
}

type resolvedClass struct {
	item       *entities.Item
	name       string
	originalID string
	slug       string
}

// resolveClass maps the actor's class name to its class item, going through
// the translator when one is configured
func (e *Engine) resolveClass(ctx context.Context, name string) (*resolvedClass, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pwerr.UnknownClassf("actor has no class")
	}

	original := name
	if e.translator != nil {
		if id, ok := e.translator.FindOriginalID(e.rules.ClassesPackID(), name); ok {
			original = id
		}
	}

	classes, err := e.classes.Classes(ctx)
	if err != nil {
		return nil, err
	}

	item, ok := findClass(classes, name)
	if !ok {
		item, ok = findClass(classes, original)
	}
	if !ok {
		return nil, pwerr.UnknownClassf("class '%s' not found", name).WithMeta("class", name)
	}

	return &resolvedClass{
		item:       item,
		name:       name,
		originalID: original,
		slug:       ruleset.Slug(original),
	}, nil
}

// ComputeEligible builds the candidate set for the actor's next level
func (e *Engine) ComputeEligible(ctx context.Context, actor *entities.Actor) (*CandidateSet, error) {
	if actor == nil {
		return nil, pwerr.InvalidArgument("actor cannot be nil")
	}
	if !actor.IsCharacter() {
		return nil, pwerr.InvalidArgumentf("actor '%s' is not a character", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	class, err := e.resolveClass(ctx, actor.Details.Class)
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to resolve class").WithMeta("actor_id", actor.ID)
	}

	current := actor.Level()
	xp := actor.Attributes.XP.Value
	level := current
	if xp != 0 {
		level++
	}

	candidates := &CandidateSet{
		ActorID:      actor.ID,
		CurrentLevel: current,
		Level:        level,
		FirstLevel:   xp == 0,
		XPRequired:   e.XPRequired(actor),
		Class:        class.item.Clone(),
		ClassName:    class.name,
		ClassSlug:    class.slug,
		Description:  class.item.Description,
	}

	moves, err := e.classMoves(ctx, class)
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to load class moves").WithMeta("actor_id", actor.ID)
	}
	eligible := FilterEligible(moves, level, actor.OwnedNames(entities.ItemTypeMove))
	buckets := Partition(eligible, level, e.rules)
	candidates.Starting = buckets.Starting
	candidates.AdvancedTierOne = buckets.TierOne
	candidates.AdvancedTierTwo = buckets.TierTwo

	classData := class.item.Class
	if classData != nil && (actor.Details.Drive.Value == "" || actor.Details.Drive.Description == "") {
		for _, key := range classData.DriveKeys() {
			d := classData.Drives[key]
			candidates.Drives = append(candidates.Drives, DriveChoice{
				Key:         key,
				Label:       d.Label,
				Description: d.Description,
			})
		}
	}

	if candidates.FirstLevel {
		candidates.AbilityScores = e.rules.StandardArray()
		if classData != nil {
			groups, err := e.equipmentGroups(ctx, classData)
			if err != nil {
				return nil, pwerr.Wrap(err, "failed to resolve class equipment").WithMeta("actor_id", actor.ID)
			}
			candidates.Equipment = groups
		}
	}

	for _, def := range e.rules.Abilities() {
		score := actor.Ability(def.Key)
		candidates.AbilityOptions = append(candidates.AbilityOptions, AbilityOption{
			Key:      def.Key,
			Label:    def.Label,
			Value:    score.Value,
			Mod:      e.rules.EffectiveModifier(score.Value, score.Debility),
			Disabled: score.Value > e.rules.AbilityCap(),
		})
	}

	e.logger.Debug("computed level-up candidates",
		zap.String("actor_id", actor.ID),
		zap.String("class", class.name),
		zap.Int("level", level),
		zap.Int("moves", buckets.Len()),
	)

	return candidates, nil
}

// classMoves merges the world's moves for the class with the class pack
func (e *Engine) classMoves(ctx context.Context, class *resolvedClass) ([]*entities.Item, error) {
	var local []*entities.Item
	if e.world != nil {
		moves, err := e.world.List(ctx, entities.ItemTypeMove)
		if err != nil {
			return nil, err
		}
		for _, move := range moves {
			if move.Move == nil {
				continue
			}
			if move.Move.Class == class.name || move.Move.Class == class.originalID {
				local = append(local, move)
			}
		}
	}

	var library []*entities.Item
	if e.library != nil {
		pack, err := e.library.Pack(ctx, e.rules.MovePackID(class.slug))
		if err != nil && !pwerr.IsNotFound(err) {
			return nil, err
		}
		for _, item := range pack {
			if item.Type == entities.ItemTypeMove {
				library = append(library, item)
			}
		}
	}

	return MergeMoves(local, library), nil
}

func (e *Engine) equipmentGroups(ctx context.Context, class *entities.ClassData) ([]EquipmentChoice, error) {
	var groups []EquipmentChoice
	for _, key := range class.EquipmentGroupKeys() {
		group := class.Equipment[key]
		if group == nil {
			continue
		}

		choice := EquipmentChoice{Key: key, Label: group.Label, Items: []*entities.Item{}}
		if len(group.Items) > 0 && e.equipment != nil {
			items, err := e.equipment.Resolve(ctx, group.Items)
			if err != nil {
				return nil, err
			}
			choice.Items = items
		}
		groups = append(groups, choice)
	}
	return groups, nil
}

// XPRequired is the XP the actor needs for the next level: the prepared
// maximum when set, else the formula, else level + 7
func (e *Engine) XPRequired(actor *entities.Actor) int {
	if actor.Attributes.XP.Max > 0 {
		return actor.Attributes.XP.Max
	}
	if e.xpRequired != nil {
		if required, err := e.xpRequired(actor.RollData()); err == nil {
			return required
		}
	}
	return actor.Level() + 7
}

// CanLevelUp reports whether the actor should be offered a level-up: enough
// XP below the level cap, or a first-level character without starting
// moves. The class must be known either way.
func (e *Engine) CanLevelUp(ctx context.Context, actor *entities.Actor) (bool, error) {
	if actor == nil || !actor.IsCharacter() {
		return false, nil
	}

	level := actor.Level()
	ready := actor.Attributes.XP.Value >= e.XPRequired(actor) && level < e.rules.MaxLevel()
	if level == 1 && !actor.HasStartingMoves() {
		ready = true
	}
	if !ready {
		return false, nil
	}

	if _, err := e.resolveClass(ctx, actor.Details.Class); err != nil {
		if pwerr.IsUnknownClass(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
