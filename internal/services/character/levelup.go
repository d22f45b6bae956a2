package character

import (
	"context"

	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/levelup"
)

// CanLevelUp reports whether the actor may level up now
func (s *service) CanLevelUp(ctx context.Context, actorID string) (bool, error) {
	actor, err := s.GetActor(ctx, actorID)
	if err != nil {
		return false, err
	}
	return s.engine.CanLevelUp(ctx, actor)
}

// LevelUpOptions computes the candidate set for the actor's next level
func (s *service) LevelUpOptions(ctx context.Context, actorID string) (*levelup.CandidateSet, error) {
	actor, err := s.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	cand, err := s.engine.ComputeEligible(ctx, actor)
	if err != nil {
		return nil, pwerr.Wrapf(err, "failed to compute level-up options for '%s'", actorID)
	}
	return cand, nil
}

// LevelUp recomputes the options so the picks are checked against the
// actor's current state, then applies them. Nothing picked is reported as an
// empty selection and an actor without a level-up available as not ready;
// neither changes anything.
func (s *service) LevelUp(ctx context.Context, actorID string, selections levelup.Selections) (*levelup.Outcome, error) {
	if selections.IsEmpty() {
		return nil, pwerr.EmptySelection("nothing was selected").WithMeta("actor_id", actorID)
	}

	actor, err := s.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	cand, err := s.engine.ComputeEligible(ctx, actor)
	if err != nil {
		return nil, pwerr.Wrapf(err, "failed to compute level-up options for '%s'", actorID)
	}

	ready, err := s.engine.CanLevelUp(ctx, actor)
	if err != nil {
		return nil, pwerr.Wrapf(err, "failed to check level-up for '%s'", actorID)
	}
	if !ready {
		return nil, pwerr.NotReadyf("'%s' has %d of %d XP needed to level up", actor.Name,
			actor.Attributes.XP.Value, s.engine.XPRequired(actor)).
			WithMeta("actor_id", actorID)
	}

	return s.applier.Apply(ctx, actor, selections, cand)
}

// ListClasses lists the known class names
func (s *service) ListClasses(ctx context.Context) ([]string, error) {
	return s.engine.Classes().Names(ctx)
}
