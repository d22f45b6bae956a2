package levelup

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/events"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/actors"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
	"github.com/KirkDiggler/paranoidworld/internal/uuid"
)

// Localizer resolves bond templates. Unresolved keys come back unchanged.
type Localizer interface {
	Localize(key string) string
}

// Selections are the picks confirmed in the level-up dialog
type Selections struct {
	MoveIDs         []string                `json:"move_ids,omitempty"`
	EquipmentIDs    []string                `json:"equipment_ids,omitempty"`
	Drive           string                  `json:"drive,omitempty"`
	AbilityScores   map[ruleset.Ability]int `json:"ability_scores,omitempty"`
	AbilityIncrease ruleset.Ability         `json:"ability_increase,omitempty"`
}

// IsEmpty reports whether nothing was picked
func (s Selections) IsEmpty() bool {
	return len(s.MoveIDs) == 0 && len(s.EquipmentIDs) == 0 && s.Drive == "" &&
		len(s.AbilityScores) == 0 && s.AbilityIncrease == ""
}

// Outcome describes an applied level-up
type Outcome struct {
	Actor         *entities.Actor
	PreviousLevel int
	Level         int
	XP            int
	Granted       []*entities.Item
}

// ApplierConfig holds the applier's collaborators. Localizer and Events are
// optional; without a localizer no bonds are created.
type ApplierConfig struct {
	Ruleset       *ruleset.Ruleset
	Actors        actors.Repository
	Localizer     Localizer
	Events        *events.Bus
	UUIDGenerator uuid.Generator

	// XPRequired prepares the committed actor's XP maximum; nil uses
	// level + 7
	XPRequired entities.XPRequiredFunc
	Logger     *zap.Logger
}

// Applier turns confirmed selections into one committed changeset
type Applier struct {
	rules     *ruleset.Ruleset
	actors    actors.Repository
	localizer Localizer
	events    *events.Bus
	ids       uuid.Generator
	xp        entities.XPRequiredFunc
	logger    *zap.Logger
}

// NewApplier creates a level-up applier
func NewApplier(cfg *ApplierConfig) (*Applier, error) {
	if cfg == nil {
		return nil, pwerr.InvalidArgument("applier config is required")
	}
	if cfg.Ruleset == nil {
		return nil, pwerr.InvalidArgument("ruleset is required")
	}
	if cfg.Actors == nil {
		return nil, pwerr.InvalidArgument("actor repository is required")
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Applier{
		rules:     cfg.Ruleset,
		actors:    cfg.Actors,
		localizer: cfg.Localizer,
		events:    cfg.Events,
		ids:       ids,
		xp:        cfg.XPRequired,
		logger:    logger.Named("levelup"),
	}, nil
}

// Apply stages the selections onto the actor and commits them in one write.
// Empty selections are ignored: the result is nil with no error. The
// returned actor has its derived fields prepared.
func (a *Applier) Apply(ctx context.Context, actor *entities.Actor, sel Selections, cand *CandidateSet) (*Outcome, error) {
	if actor == nil {
		return nil, pwerr.InvalidArgument("actor cannot be nil")
	}
	if cand == nil {
		return nil, pwerr.InvalidArgument("candidate set is required")
	}
	if cand.ActorID != actor.ID {
		return nil, pwerr.InvalidArgumentf("candidate set belongs to actor '%s'", cand.ActorID).
			WithMeta("actor_id", actor.ID)
	}
	if sel.IsEmpty() {
		a.logger.Info("ignoring empty level-up selection", zap.String("actor_id", actor.ID))
		return nil, nil
	}

	var granted []*entities.Item
	granted = append(granted, a.resolve(sel.MoveIDs, cand.Move)...)
	granted = append(granted, a.resolve(sel.EquipmentIDs, cand.EquipmentItem)...)

	var patch entities.ActorPatch

	if sel.Drive != "" {
		if d, ok := cand.Drive(sel.Drive); ok {
			patch.Drive = &entities.Drive{Value: d.Label, Description: d.Description}
		}
	}

	if err := a.stageAbilities(actor, sel, cand, &patch); err != nil {
		return nil, pwerr.Wrap(err, "invalid ability selection").WithMeta("actor_id", actor.ID)
	}

	previousLevel := actor.Level()
	xp := actor.Attributes.XP.Value
	level := previousLevel
	if xp != 0 {
		xp = max(xp-cand.XPRequired, 0)
		level++
		patch.XP = &xp
		patch.Level = &level
	} else {
		granted = append(a.bonds(cand.ClassSlug), granted...)
	}

	if load := cand.Load(); load != 0 {
		carry := a.rules.CarryAbility()
		value, ok := patch.AbilityValue(carry)
		if !ok {
			value = actor.Ability(carry).Value
		}
		weightMax := load + a.rules.Modifier(value)
		patch.WeightMax = &weightMax
	}

	done := false
	patch.Levelup = &done

	for _, item := range granted {
		item.ID = a.ids.New()
	}

	updated, err := a.actors.Commit(ctx, actor.ID, &actors.Changeset{Patch: patch, Items: granted})
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to commit level-up").WithMeta("actor_id", actor.ID)
	}
	updated.PrepareDerived(a.rules, a.xp)

	outcome := &Outcome{
		Actor:         updated,
		PreviousLevel: previousLevel,
		Level:         updated.Level(),
		XP:            updated.Attributes.XP.Value,
		Granted:       granted,
	}

	a.logger.Info("applied level-up",
		zap.String("actor_id", actor.ID),
		zap.Int("previous_level", outcome.PreviousLevel),
		zap.Int("level", outcome.Level),
		zap.Int("granted", len(granted)),
	)

	if outcome.Level != previousLevel {
		a.emit(events.NewActorLeveledUpEvent(actor.ID, previousLevel, outcome.Level, outcome.XP))
	}
	if len(granted) > 0 {
		a.emit(events.NewItemsGrantedEvent(actor.ID, entities.CloneItems(granted)))
	}

	return outcome, nil
}

// resolve looks ids up in the candidate set. Unknown and repeated ids are
// skipped.
func (a *Applier) resolve(ids []string, lookup func(string) (*entities.Item, bool)) []*entities.Item {
	seen := make(map[string]bool, len(ids))
	var out []*entities.Item
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		item, ok := lookup(id)
		if !ok {
			a.logger.Debug("skipping unknown selection", zap.String("item_id", id))
			continue
		}
		out = append(out, item.Clone())
	}
	return out
}

// stageAbilities writes standard array assignments, then the increase
func (a *Applier) stageAbilities(actor *entities.Actor, sel Selections, cand *CandidateSet, patch *entities.ActorPatch) error {
	if len(sel.AbilityScores) > 0 {
		if len(cand.AbilityScores) == 0 {
			return pwerr.Validation("ability scores can only be assigned at first level")
		}

		available := make(map[int]int, len(cand.AbilityScores))
		for _, score := range cand.AbilityScores {
			available[score]++
		}
		for _, def := range a.rules.Abilities() {
			value, ok := sel.AbilityScores[def.Key]
			if !ok {
				continue
			}
			if available[value] == 0 {
				return pwerr.Validationf("score %d is not available for %s", value, def.Key).
					WithMeta("ability", string(def.Key))
			}
			available[value]--
			patch.SetAbilityValue(def.Key, value)
		}
		for key := range sel.AbilityScores {
			if _, ok := a.rules.Ability(key); !ok {
				return pwerr.Validationf("unknown ability '%s'", key)
			}
		}
	}

	if sel.AbilityIncrease != "" {
		opt, ok := cand.AbilityOption(sel.AbilityIncrease)
		if !ok {
			return pwerr.Validationf("unknown ability '%s'", sel.AbilityIncrease)
		}
		if opt.Disabled {
			return pwerr.Validationf("%s is already at its cap", opt.Key).
				WithMeta("ability", string(opt.Key))
		}
		value, staged := patch.AbilityValue(opt.Key)
		if !staged {
			value = actor.Ability(opt.Key).Value
		}
		patch.SetAbilityValue(opt.Key, value+1)
	}

	return nil
}

// bonds builds the class's bond items from the localized templates,
// skipping templates that do not resolve
func (a *Applier) bonds(classSlug string) []*entities.Item {
	if a.localizer == nil || classSlug == "" {
		return nil
	}

	var bonds []*entities.Item
	for n := 1; n <= a.rules.BondSlots(); n++ {
		key := a.rules.BondKey(classSlug, n)
		text := a.localizer.Localize(key)
		if text == "" || text == key {
			continue
		}
		bonds = append(bonds, &entities.Item{Name: text, Type: entities.ItemTypeBond})
	}
	return bonds
}

func (a *Applier) emit(event events.Event) {
	if a.events == nil {
		return
	}
	if err := a.events.Emit(event); err != nil {
		a.logger.Warn("event listener failed",
			zap.String("event", string(event.GetType())),
			zap.Error(err),
		)
	}
}
