package actors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/uuid"
)

const (
	// schemaVersion is stored with every actor document
	schemaVersion = 1

	// maxCommitRetries bounds optimistic lock retries on a contended actor
	maxCommitRetries = 5

	// maxListConcurrency bounds parallel GETs when loading many actors
	maxListConcurrency = 8
)

// Data represents the serialized form of an actor in Redis
type Data struct {
	SchemaVersion int             `json:"schema_version"`
	Actor         *entities.Actor `json:"actor"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger
}

// NewRedisRepository creates a new Redis-backed actor repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger.Named("actors.redis"),
	}
}

// key generates the Redis key for an actor
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("actor:%s", id)
}

// indexKey is the set of every actor id
func (r *redisRepo) indexKey() string {
	return "actors"
}

// ownerActorsKey generates the Redis key for an owner's actor set
func (r *redisRepo) ownerActorsKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:actors", ownerID)
}

func encode(actor *entities.Actor) (string, error) {
	data, err := json.Marshal(Data{SchemaVersion: schemaVersion, Actor: actor})
	if err != nil {
		return "", fmt.Errorf("failed to marshal actor data: %w", err)
	}
	return string(data), nil
}

func decode(raw []byte) (*entities.Actor, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal actor data: %w", err)
	}
	if data.Actor == nil {
		return nil, fmt.Errorf("actor data is empty")
	}
	if data.SchemaVersion > schemaVersion {
		return nil, fmt.Errorf("actor data schema %d is newer than supported %d", data.SchemaVersion, schemaVersion)
	}
	return data.Actor, nil
}

// Create stores a new actor
func (r *redisRepo) Create(ctx context.Context, actor *entities.Actor) error {
	if err := validateNew(actor); err != nil {
		return err
	}

	payload, err := encode(actor)
	if err != nil {
		return pwerr.Wrap(err, "failed to encode actor").WithMeta("actor_id", actor.ID)
	}

	created, err := r.client.SetNX(ctx, r.key(actor.ID), payload, 0).Result()
	if err != nil {
		return pwerr.Wrap(err, "failed to store actor").WithMeta("actor_id", actor.ID)
	}
	if !created {
		return pwerr.AlreadyExistsf("actor with ID '%s' already exists", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	pipe := r.client.Pipeline()
	pipe.SAdd(ctx, r.indexKey(), actor.ID)
	if actor.OwnerID != "" {
		pipe.SAdd(ctx, r.ownerActorsKey(actor.OwnerID), actor.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return pwerr.Wrap(err, "failed to index actor").WithMeta("actor_id", actor.ID)
	}

	return nil
}

// Get retrieves an actor by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, pwerr.InvalidArgument("actor ID is required")
	}

	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, pwerr.NotFoundf("actor with ID '%s' not found", id).
				WithMeta("actor_id", id)
		}
		return nil, pwerr.Wrap(err, "failed to get actor").WithMeta("actor_id", id)
	}

	actor, err := decode(raw)
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to decode actor").WithMeta("actor_id", id)
	}

	return actor, nil
}

// List returns every actor matching opts, ordered by name
func (r *redisRepo) List(ctx context.Context, opts ListOptions) ([]*entities.Actor, error) {
	setKey := r.indexKey()
	if opts.OwnerID != "" {
		setKey = r.ownerActorsKey(opts.OwnerID)
	}

	ids, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to list actors")
	}

	loaded := make([]*entities.Actor, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxListConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			actor, err := r.Get(gctx, id)
			if err != nil {
				if pwerr.IsNotFound(err) {
					// Index entry outlived its document
					r.logger.Warn("dangling actor index entry", zap.String("actor_id", id))
					return nil
				}
				return fmt.Errorf("failed to get actor %s: %w", id, err)
			}
			loaded[i] = actor
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, pwerr.Wrap(err, "failed to load actors")
	}

	var result []*entities.Actor
	for _, actor := range loaded {
		if actor != nil && matches(actor, opts) {
			result = append(result, actor)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name == result[j].Name {
			return result[i].ID < result[j].ID
		}
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// Update applies a partial update
func (r *redisRepo) Update(ctx context.Context, id string, patch entities.ActorPatch) (*entities.Actor, error) {
	return r.Commit(ctx, id, &Changeset{Patch: patch})
}

// CreateItems adds owned items
func (r *redisRepo) CreateItems(ctx context.Context, actorID string, items []*entities.Item) ([]*entities.Item, error) {
	var created []*entities.Item
	err := r.mutate(ctx, actorID, func(actor *entities.Actor) error {
		var err error
		created, err = (&Changeset{Items: items}).apply(actor, r.uuidGenerator)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateItem applies a partial update to one owned item
func (r *redisRepo) UpdateItem(ctx context.Context, actorID, itemID string, patch entities.ItemPatch) (*entities.Item, error) {
	var updated *entities.Item
	err := r.mutate(ctx, actorID, func(actor *entities.Actor) error {
		var err error
		updated, err = updateItem(actor, itemID, patch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteItem removes an owned item
func (r *redisRepo) DeleteItem(ctx context.Context, actorID, itemID string) error {
	return r.mutate(ctx, actorID, func(actor *entities.Actor) error {
		return deleteItem(actor, itemID)
	})
}

// Commit applies a changeset in one WATCH/MULTI transaction on the actor key
func (r *redisRepo) Commit(ctx context.Context, actorID string, changes *Changeset) (*entities.Actor, error) {
	if changes == nil {
		return nil, pwerr.InvalidArgument("changeset cannot be nil")
	}

	var committed *entities.Actor
	err := r.mutate(ctx, actorID, func(actor *entities.Actor) error {
		if _, err := changes.apply(actor, r.uuidGenerator); err != nil {
			return err
		}
		committed = actor
		return nil
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}

// Delete removes an actor and its index entries
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	actor, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.indexKey(), id)
	if actor.OwnerID != "" {
		pipe.SRem(ctx, r.ownerActorsKey(actor.OwnerID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return pwerr.Wrap(err, "failed to delete actor").WithMeta("actor_id", id)
	}

	return nil
}

// mutate reads the actor under WATCH, applies fn and writes it back in a
// MULTI block, retrying when another writer touched the key
func (r *redisRepo) mutate(ctx context.Context, id string, fn func(*entities.Actor) error) error {
	if id == "" {
		return pwerr.InvalidArgument("actor ID is required")
	}

	key := r.key(id)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return pwerr.NotFoundf("actor with ID '%s' not found", id).
					WithMeta("actor_id", id)
			}
			return pwerr.Wrap(err, "failed to get actor").WithMeta("actor_id", id)
		}

		actor, err := decode(raw)
		if err != nil {
			return pwerr.Wrap(err, "failed to decode actor").WithMeta("actor_id", id)
		}

		if err := fn(actor); err != nil {
			return err
		}

		payload, err := encode(actor)
		if err != nil {
			return pwerr.Wrap(err, "failed to encode actor").WithMeta("actor_id", id)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxCommitRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			var pwErr *pwerr.Error
			if errors.As(err, &pwErr) {
				return err
			}
			return pwerr.Wrap(err, "failed to write actor").WithMeta("actor_id", id)
		}

		r.logger.Debug("actor changed during transaction, retrying",
			zap.String("actor_id", id),
			zap.Int("attempt", attempt))
	}

	return pwerr.Internalf("actor '%s' kept changing during update", id).
		WithMeta("actor_id", id)
}
