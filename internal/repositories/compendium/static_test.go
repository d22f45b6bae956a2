package compendium_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/compendium"
)

var packFS = fstest.MapFS{
	"content/operative-moves.yaml": {Data: []byte(`
pack: paranoidworld.operative-moves
items:
  - id: op-tail
    name: Tail
    type: move
    move:
      requires_level: 2
  - id: op-ambush
    name: Ambush
    type: move
    move:
      move_type: starting
`)},
	"content/gear.yaml": {Data: []byte(`
items:
  - id: rope
    name: Rope
    type: equipment
    equipment: { quantity: 1, weight: 1 }
`)},
	"content/readme.txt": {Data: []byte("ignored")},
}

func TestLoadFS(t *testing.T) {
	lib, err := compendium.LoadFS(packFS, "content")
	require.NoError(t, err)

	ids, err := lib.Packs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gear", "paranoidworld.operative-moves"}, ids)

	moves, err := lib.Pack(context.Background(), "paranoidworld.operative-moves")
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, "Ambush", moves[0].Name)
	assert.Equal(t, 1, moves[0].Move.RequiresLevel, "requires_level defaults to 1")
	assert.Equal(t, entities.MoveTypeStarting, moves[0].Move.MoveType)
}

func TestLoadFS_InvalidItem(t *testing.T) {
	fsys := fstest.MapFS{
		"packs/bad.yaml": {Data: []byte("items:\n  - { id: x, name: Fireball, type: spell }\n")},
	}

	_, err := compendium.LoadFS(fsys, "packs")
	require.Error(t, err)
	assert.True(t, pwerr.IsValidation(err))
}

func TestStaticLibrary_PackNotFound(t *testing.T) {
	lib, err := compendium.NewStaticLibrary(nil)
	require.NoError(t, err)

	_, err = lib.Pack(context.Background(), "paranoidworld.nobody-moves")
	assert.True(t, pwerr.IsNotFound(err))
}

func TestStaticLibrary_ReturnsCopies(t *testing.T) {
	lib, err := compendium.NewStaticLibrary(map[string][]*entities.Item{
		"p": {{ID: "a", Name: "A", Type: entities.ItemTypeTag}},
	})
	require.NoError(t, err)

	items, err := lib.Pack(context.Background(), "p")
	require.NoError(t, err)
	items[0].Name = "changed"

	again, err := lib.Pack(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].Name)
}
