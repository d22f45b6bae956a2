// Package compendium is the read-mostly library of reference items: class
// items, per-class move packs, basic moves and equipment. Packs are named
// "<system>.<name>", for example "paranoidworld.operative-moves".
package compendium

//go:generate mockgen -destination=mock/mock.go -package=mockcompendium -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
)

// Library reads compendium packs
type Library interface {
	// Pack returns copies of every item in the pack, ordered by name. A pack
	// that does not exist returns a not found error.
	Pack(ctx context.Context, id string) ([]*entities.Item, error)

	// Packs lists the pack ids in sorted order
	Packs(ctx context.Context) ([]string, error)
}

// WorldItems is the slice of the world item store the equipment cache reads
type WorldItems interface {
	List(ctx context.Context, t entities.ItemType) ([]*entities.Item, error)
}
