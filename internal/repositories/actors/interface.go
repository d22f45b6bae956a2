package actors

//go:generate mockgen -destination=mock/mock.go -package=mockactors -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
)

// ListOptions narrows List results. Zero values match everything.
type ListOptions struct {
	Type    entities.ActorType
	OwnerID string
}

// Repository defines the interface for actor persistence
type Repository interface {
	// Create stores a new actor
	Create(ctx context.Context, actor *entities.Actor) error

	// Get retrieves an actor by ID
	Get(ctx context.Context, id string) (*entities.Actor, error)

	// List returns every actor matching opts
	List(ctx context.Context, opts ListOptions) ([]*entities.Actor, error)

	// Update applies a partial update and returns the stored actor
	Update(ctx context.Context, id string, patch entities.ActorPatch) (*entities.Actor, error)

	// CreateItems adds owned items, assigning ids to items without one
	CreateItems(ctx context.Context, actorID string, items []*entities.Item) ([]*entities.Item, error)

	// UpdateItem applies a partial update to one owned item
	UpdateItem(ctx context.Context, actorID, itemID string, patch entities.ItemPatch) (*entities.Item, error)

	// DeleteItem removes an owned item
	DeleteItem(ctx context.Context, actorID, itemID string) error

	// Commit applies a changeset as a single atomic write
	Commit(ctx context.Context, actorID string, changes *Changeset) (*entities.Actor, error)

	// Delete removes an actor
	Delete(ctx context.Context, id string) error
}
