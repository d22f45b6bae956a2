package items

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/uuid"
)

// InMemoryRepository keeps world items in a map
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*entities.Item
	ids   uuid.Generator
}

// NewInMemoryRepository creates an empty world item store
func NewInMemoryRepository(ids uuid.Generator) *InMemoryRepository {
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	return &InMemoryRepository{
		items: make(map[string]*entities.Item),
		ids:   ids,
	}
}

// Create stores a new world item
func (r *InMemoryRepository) Create(ctx context.Context, item *entities.Item) (*entities.Item, error) {
	if item == nil {
		return nil, pwerr.InvalidArgument("item cannot be nil")
	}

	stored := item.Clone()
	if stored.ID == "" {
		stored.ID = r.ids.New()
	}
	stored.Normalize()
	if err := stored.Validate(); err != nil {
		return nil, pwerr.Validationf("invalid item: %v", err).WithMeta("item_id", stored.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[stored.ID]; exists {
		return nil, pwerr.AlreadyExistsf("item with ID '%s' already exists", stored.ID).
			WithMeta("item_id", stored.ID)
	}
	r.items[stored.ID] = stored

	return stored.Clone(), nil
}

// Get retrieves a world item by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, pwerr.NotFoundf("item with ID '%s' not found", id).WithMeta("item_id", id)
	}
	return item.Clone(), nil
}

// List returns world items of type t ordered by name
func (r *InMemoryRepository) List(ctx context.Context, t entities.ItemType) ([]*entities.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Item
	for _, item := range r.items {
		if t == "" || item.Type == t {
			result = append(result, item.Clone())
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

// Delete removes a world item
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return pwerr.NotFoundf("item with ID '%s' not found", id).WithMeta("item_id", id)
	}
	delete(r.items, id)
	return nil
}
