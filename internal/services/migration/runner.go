// Package migration upgrades stored actors when the system's data layout
// changes. The last applied version lives in the world settings.
package migration

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/actors"
	"github.com/KirkDiggler/paranoidworld/internal/settings"
)

// CurrentVersion is the version a fully migrated world is at
const CurrentVersion = 1

// Move names that predate the move type field
var (
	basicMoves = []string{
		"Aid or Interfere",
		"Attack",
		"Defy Danger",
		"Regain Composure",
		"Suffer a Setback",
		"Take Damage",
	}
	specialMoves = []string{
		"Encumbrance",
		"End of Session",
		"Level Up",
		"Your Number's Up",
	}
)

// Report summarises a run
type Report struct {
	FromVersion  int
	ToVersion    int
	ItemsUpdated int
}

// Config holds the runner's collaborators
type Config struct {
	Actors      actors.Repository
	Settings    settings.Store
	Logger      *zap.Logger
	Concurrency int
}

// Runner applies pending migrations in order
type Runner struct {
	actors      actors.Repository
	settings    settings.Store
	logger      *zap.Logger
	concurrency int
}

// NewRunner creates a migration runner
func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil || cfg.Actors == nil || cfg.Settings == nil {
		return nil, pwerr.InvalidArgument("actor repository and settings are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 4
	}

	return &Runner{
		actors:      cfg.Actors,
		settings:    cfg.Settings,
		logger:      logger.Named("migration"),
		concurrency: concurrency,
	}, nil
}

// Run applies every migration above the stored version. The version is
// saved after each step so a failed run resumes where it stopped.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	version := r.settings.GetInt(settings.ScopeWorld, settings.KeySystemMigrationVersion)
	report := &Report{FromVersion: version, ToVersion: version}

	if version < 1 {
		updated, err := r.assignMoveTypes(ctx)
		if err != nil {
			return report, pwerr.Wrap(err, "migration 1 failed")
		}
		report.ItemsUpdated += updated
		version = 1

		if err := r.settings.Set(settings.ScopeWorld, settings.KeySystemMigrationVersion, version); err != nil {
			return report, pwerr.Wrap(err, "failed to save migration version")
		}
		report.ToVersion = version
		r.logger.Info("applied migration", zap.Int("version", version), zap.Int("items_updated", updated))
	}

	return report, nil
}

// assignMoveTypes tags the known basic and special moves on every character
func (r *Runner) assignMoveTypes(ctx context.Context) (int, error) {
	types := make(map[string]entities.MoveType, len(basicMoves)+len(specialMoves))
	for _, name := range basicMoves {
		types[name] = entities.MoveTypeBasic
	}
	for _, name := range specialMoves {
		types[name] = entities.MoveTypeSpecial
	}

	characters, err := r.actors.List(ctx, actors.ListOptions{Type: entities.ActorTypeCharacter})
	if err != nil {
		return 0, err
	}

	var updated atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, actor := range characters {
		g.Go(func() error {
			for _, item := range actor.ItemsOfType(entities.ItemTypeMove) {
				moveType, ok := types[item.Name]
				if !ok {
					continue
				}
				if item.Move != nil && item.Move.MoveType == moveType {
					continue
				}

				patch := entities.ItemPatch{MoveType: &moveType}
				if _, err := r.actors.UpdateItem(ctx, actor.ID, item.ID, patch); err != nil {
					return pwerr.Wrapf(err, "failed to update move '%s'", item.Name).
						WithMeta("actor_id", actor.ID)
				}
				updated.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(updated.Load()), err
	}
	return int(updated.Load()), nil
}
