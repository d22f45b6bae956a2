package compendium

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
)

// EquipmentCache is the equipment library used to resolve class equipment
// groups: world equipment first, then equipment from every compendium pack.
// The list is loaded once and kept until a forced reload.
type EquipmentCache struct {
	library Library
	world   WorldItems
	logger  *zap.Logger

	mu     sync.Mutex
	loaded bool
	items  []*entities.Item
}

// NewEquipmentCache creates a cache over library and the world items. world
// may be nil.
func NewEquipmentCache(library Library, world WorldItems, logger *zap.Logger) *EquipmentCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EquipmentCache{
		library: library,
		world:   world,
		logger:  logger.Named("equipment"),
	}
}

// Equipment returns copies of every known equipment item. forceReload drops
// the cached list first.
func (c *EquipmentCache) Equipment(ctx context.Context, forceReload bool) ([]*entities.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded || forceReload {
		items, err := c.load(ctx)
		if err != nil {
			return nil, err
		}
		c.items = items
		c.loaded = true
	}

	return entities.CloneItems(c.items), nil
}

// Invalidate makes the next Equipment call reload
func (c *EquipmentCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
}

// Resolve looks up ids in the equipment list, keeping the order of ids and
// skipping unknown ones
func (c *EquipmentCache) Resolve(ctx context.Context, ids []string) ([]*entities.Item, error) {
	all, err := c.Equipment(ctx, false)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entities.Item, len(all))
	for _, item := range all {
		byID[item.ID] = item
	}

	resolved := make([]*entities.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			resolved = append(resolved, item)
		}
	}
	return resolved, nil
}

func (c *EquipmentCache) load(ctx context.Context) ([]*entities.Item, error) {
	seen := make(map[string]bool)
	var out []*entities.Item

	add := func(items []*entities.Item) {
		for _, item := range items {
			if item.Type != entities.ItemTypeEquipment || seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			out = append(out, item)
		}
	}

	if c.world != nil {
		items, err := c.world.List(ctx, entities.ItemTypeEquipment)
		if err != nil {
			return nil, pwerr.Wrap(err, "failed to list world equipment")
		}
		add(items)
	}

	if c.library != nil {
		packs, err := c.library.Packs(ctx)
		if err != nil {
			return nil, pwerr.Wrap(err, "failed to list compendium packs")
		}
		for _, id := range packs {
			items, err := c.library.Pack(ctx, id)
			if err != nil {
				if pwerr.IsNotFound(err) {
					continue
				}
				return nil, pwerr.Wrapf(err, "failed to load pack %s", id)
			}
			add(items)
		}
	}

	c.logger.Debug("equipment loaded", zap.Int("items", len(out)))
	return out, nil
}
