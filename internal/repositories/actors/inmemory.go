package actors

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the actor repository
// Useful for testing and development
type InMemoryRepository struct {
	mu     sync.RWMutex
	actors map[string]*entities.Actor
	ids    uuid.Generator
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return NewInMemoryRepositoryWithIDs(uuid.NewGoogleUUIDGenerator())
}

// NewInMemoryRepositoryWithIDs creates an in-memory repository with a custom
// id generator for new items
func NewInMemoryRepositoryWithIDs(ids uuid.Generator) Repository {
	return &InMemoryRepository{
		actors: make(map[string]*entities.Actor),
		ids:    ids,
	}
}

// Create stores a new actor
func (r *InMemoryRepository) Create(ctx context.Context, actor *entities.Actor) error {
	if err := validateNew(actor); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[actor.ID]; exists {
		return pwerr.AlreadyExistsf("actor with ID '%s' already exists", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	// Store a copy to avoid external modifications
	r.actors[actor.ID] = actor.Clone()

	return nil
}

// Get retrieves an actor by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, pwerr.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, exists := r.actors[id]
	if !exists {
		return nil, pwerr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}

	return actor.Clone(), nil
}

// List returns every actor matching opts, ordered by name
func (r *InMemoryRepository) List(ctx context.Context, opts ListOptions) ([]*entities.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Actor
	for _, actor := range r.actors {
		if matches(actor, opts) {
			result = append(result, actor.Clone())
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
func (r *InMemoryRepository) Update(ctx context.Context, id string, patch entities.ActorPatch) (*entities.Actor, error) {
	return r.Commit(ctx, id, &Changeset{Patch: patch})
}

// CreateItems adds owned items
func (r *InMemoryRepository) CreateItems(ctx context.Context, actorID string, items []*entities.Item) ([]*entities.Item, error) {
	var created []*entities.Item
	err := r.mutate(actorID, func(actor *entities.Actor) error {
		var err error
		created, err = (&Changeset{Items: items}).apply(actor, r.ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateItem applies a partial update to one owned item
func (r *InMemoryRepository) UpdateItem(ctx context.Context, actorID, itemID string, patch entities.ItemPatch) (*entities.Item, error) {
	var updated *entities.Item
	err := r.mutate(actorID, func(actor *entities.Actor) error {
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
func (r *InMemoryRepository) DeleteItem(ctx context.Context, actorID, itemID string) error {
	return r.mutate(actorID, func(actor *entities.Actor) error {
		return deleteItem(actor, itemID)
	})
}

// Commit applies a changeset under the repository lock
func (r *InMemoryRepository) Commit(ctx context.Context, actorID string, changes *Changeset) (*entities.Actor, error) {
	if changes == nil {
		return nil, pwerr.InvalidArgument("changeset cannot be nil")
	}

	var committed *entities.Actor
	err := r.mutate(actorID, func(actor *entities.Actor) error {
		if _, err := changes.apply(actor, r.ids); err != nil {
			return err
		}
		committed = actor.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}

// Delete removes an actor
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pwerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[id]; !exists {
		return pwerr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}

	delete(r.actors, id)
	return nil
}

// mutate runs fn against a working copy and stores it only when fn succeeds
func (r *InMemoryRepository) mutate(id string, fn func(*entities.Actor) error) error {
	if id == "" {
		return pwerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.actors[id]
	if !exists {
		return pwerr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}

	working := stored.Clone()
	if err := fn(working); err != nil {
		return err
	}

	r.actors[id] = working
	return nil
}
