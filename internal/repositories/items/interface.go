package items

import (
	"context"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
)

// Repository holds the world items that live outside any actor
type Repository interface {
	// Create stores a new world item, assigning an id when missing
	Create(ctx context.Context, item *entities.Item) (*entities.Item, error)

	// Get retrieves a world item by ID
	Get(ctx context.Context, id string) (*entities.Item, error)

	// List returns world items of type t ordered by name. An empty type lists
	// everything.
	List(ctx context.Context, t entities.ItemType) ([]*entities.Item, error)

	// Delete removes a world item
	Delete(ctx context.Context, id string) error
}
