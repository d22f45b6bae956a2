package actors

import (
	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/uuid"
)

// Changeset groups a field patch with new owned items so both land in one
// write
type Changeset struct {
	Patch entities.ActorPatch
	Items []*entities.Item
}

// IsEmpty reports whether the changeset changes nothing
func (c *Changeset) IsEmpty() bool {
	return c == nil || (c.Patch.IsEmpty() && len(c.Items) == 0)
}

// apply validates the whole changeset before touching actor, so a failure
// leaves actor unchanged
func (c *Changeset) apply(actor *entities.Actor, ids uuid.Generator) ([]*entities.Item, error) {
	if err := c.Patch.Validate(); err != nil {
		return nil, pwerr.Validationf("invalid patch: %v", err).WithMeta("actor_id", actor.ID)
	}

	added, err := prepareItems(actor, c.Items, ids)
	if err != nil {
		return nil, err
	}

	actor.Items = append(actor.Items, added...)
	c.Patch.Apply(actor)

	return entities.CloneItems(added), nil
}

// prepareItems clones and validates new items, filling in missing ids
func prepareItems(actor *entities.Actor, items []*entities.Item, ids uuid.Generator) ([]*entities.Item, error) {
	seen := make(map[string]bool, len(actor.Items)+len(items))
	for _, item := range actor.Items {
		seen[item.ID] = true
	}

	prepared := make([]*entities.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			return nil, pwerr.InvalidArgument("item cannot be nil")
		}

		clone := item.Clone()
		if clone.ID == "" {
			clone.ID = ids.New()
		}
		clone.Normalize()
		if err := clone.Validate(); err != nil {
			return nil, pwerr.Validationf("invalid item: %v", err).
				WithMeta("actor_id", actor.ID).
				WithMeta("item_id", clone.ID)
		}
		if seen[clone.ID] {
			return nil, pwerr.AlreadyExistsf("item with ID '%s' already exists", clone.ID).
				WithMeta("actor_id", actor.ID).
				WithMeta("item_id", clone.ID)
		}
		seen[clone.ID] = true

		prepared = append(prepared, clone)
	}

	return prepared, nil
}

// updateItem patches an owned item in place
func updateItem(actor *entities.Actor, itemID string, patch entities.ItemPatch) (*entities.Item, error) {
	item, ok := actor.Item(itemID)
	if !ok {
		return nil, pwerr.NotFoundf("item with ID '%s' not found", itemID).
			WithMeta("actor_id", actor.ID).
			WithMeta("item_id", itemID)
	}

	if err := patch.Apply(item); err != nil {
		return nil, pwerr.Validationf("invalid item update: %v", err).
			WithMeta("actor_id", actor.ID).
			WithMeta("item_id", itemID)
	}

	return item.Clone(), nil
}

// deleteItem removes an owned item
func deleteItem(actor *entities.Actor, itemID string) error {
	for i, item := range actor.Items {
		if item.ID == itemID {
			actor.Items = append(actor.Items[:i], actor.Items[i+1:]...)
			return nil
		}
	}
	return pwerr.NotFoundf("item with ID '%s' not found", itemID).
		WithMeta("actor_id", actor.ID).
		WithMeta("item_id", itemID)
}

// validateNew checks an actor before it is stored for the first time
func validateNew(actor *entities.Actor) error {
	if actor == nil {
		return pwerr.InvalidArgument("actor cannot be nil")
	}

	if actor.ID == "" {
		return pwerr.InvalidArgument("actor ID is required")
	}

	if err := actor.Validate(); err != nil {
		return pwerr.Validationf("invalid actor: %v", err).WithMeta("actor_id", actor.ID)
	}

	return nil
}

func matches(actor *entities.Actor, opts ListOptions) bool {
	if opts.Type != "" && actor.Type != opts.Type {
		return false
	}
	if opts.OwnerID != "" && actor.OwnerID != opts.OwnerID {
		return false
	}
	return true
}
