package character

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
)

// MarkXP adds one XP to the actor
func (s *service) MarkXP(ctx context.Context, actorID string) (*entities.Actor, error) {
	actor, err := s.AdjustResource(ctx, actorID, "attributes.xp.value", 1)
	if err != nil {
		return nil, err
	}

	if s.localizer != nil {
		s.logger.Info(s.localizer.Format(s.rules.Key("XpMarked"), actor.Name, actor.Attributes.XP.Value, actor.Attributes.XP.Max),
			zap.String("actor_id", actorID))
	}
	return actor, nil
}

// AdjustResource moves a numeric sheet field by delta
func (s *service) AdjustResource(ctx context.Context, actorID, path string, delta int) (*entities.Actor, error) {
	actor, err := s.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	patch, err := entities.AdjustPath(actor, s.rules, path, delta)
	if err != nil {
		return nil, pwerr.Validationf("cannot adjust %s: %v", path, err).
			WithMeta("actor_id", actorID).
			WithMeta("path", path)
	}

	return s.UpdateActor(ctx, actorID, patch)
}

// AdjustItemCounter steps an owned item's uses or quantity. Counters do not
// go below zero.
func (s *service) AdjustItemCounter(ctx context.Context, input *AdjustItemCounterInput) (*entities.Item, error) {
	if err := ValidateInput(input); err != nil {
		return nil, pwerr.WrapWithCode(err, pwerr.CodeInvalidArgument, "invalid counter input").
			WithMeta("operation", "AdjustItemCounter")
	}

	actor, err := s.GetActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	item, ok := actor.Item(input.ItemID)
	if !ok {
		return nil, pwerr.NotFoundf("item with ID '%s' not found", input.ItemID).
			WithMeta("actor_id", input.ActorID).
			WithMeta("item_id", input.ItemID)
	}

	var (
		patch   entities.ItemPatch
		current int
	)
	switch input.Counter {
	case CounterUses:
		switch {
		case item.Move != nil:
			current = item.Move.Uses
		case item.Equipment != nil:
			current = item.Equipment.Uses
		}
		next := max(current+input.Delta, 0)
		patch.Uses = &next
	case CounterQuantity:
		if item.Equipment != nil {
			current = item.Equipment.Quantity
		}
		next := max(current+input.Delta, 0)
		patch.Quantity = &next
	}

	updated, err := s.repository.UpdateItem(ctx, input.ActorID, input.ItemID, patch)
	if err != nil {
		return nil, pwerr.Wrapf(err, "failed to update item '%s'", input.ItemID).
			WithMeta("actor_id", input.ActorID)
	}
	return updated, nil
}
