package character

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/events"
	"github.com/KirkDiggler/paranoidworld/internal/roll"
)

// RollOutput is a resolved roll and the card to post. Result is nil when an
// item was posted without rolling.
type RollOutput struct {
	Result *roll.Result
	Card   *roll.ChatCard
}

// Roll resolves a roll request for an actor
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, pwerr.WrapWithCode(err, pwerr.CodeInvalidArgument, "invalid roll input").
			WithMeta("operation", "Roll")
	}

	actor, err := s.GetActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	return s.roll(ctx, actor, input.Request, "")
}

// RollItem rolls an owned move. Items without a roll are posted as a card
// carrying their description.
func (s *service) RollItem(ctx context.Context, input *RollItemInput) (*RollOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, pwerr.WrapWithCode(err, pwerr.CodeInvalidArgument, "invalid roll input").
			WithMeta("operation", "RollItem")
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

	if item.Type != entities.ItemTypeMove || item.Move == nil || item.Move.Roll == "" {
		return &RollOutput{Card: roll.NewChatCard(actor, item.Name, item.Description, nil, s.localizer)}, nil
	}

	req := roll.Request{
		Roll:         item.Move.Roll,
		Modifier:     item.Move.RollMod,
		UserModifier: input.UserModifier,
		Title:        item.Name,
		Mode:         input.Mode,
	}
	return s.roll(ctx, actor, req, item.Description)
}

func (s *service) roll(ctx context.Context, actor *entities.Actor, req roll.Request, description string) (*RollOutput, error) {
	result, err := s.resolver.Resolve(ctx, req, actor)
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to resolve roll").
			WithMeta("actor_id", actor.ID).
			WithMeta("roll", req.Roll)
	}

	card := roll.NewChatCard(actor, result.Title, description, result, s.localizer)

	s.logger.Debug("resolved roll",
		zap.String("actor_id", actor.ID),
		zap.String("formula", result.Formula),
		zap.Int("total", result.Total),
		zap.String("tier", string(result.Tier)),
	)
	s.emit(events.NewRollResolvedEvent(actor.ID, result.Formula, result.Total, string(result.Tier), result.Title))

	return &RollOutput{Result: result, Card: card}, nil
}
