package compendium_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/compendium"
)

func openTempLibrary(t *testing.T) *compendium.SQLiteLibrary {
	t.Helper()

	lib, err := compendium.OpenSQLite(filepath.Join(t.TempDir(), "compendium.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := compendium.OpenSQLite(" ", nil)
	assert.True(t, pwerr.IsInvalidArgument(err))
}

func TestSQLiteLibrary_ImportAndRead(t *testing.T) {
	ctx := context.Background()
	lib := openTempLibrary(t)

	err := lib.Import(ctx, "paranoidworld.classes", []*entities.Item{
		{
			ID:   "class-operative",
			Name: "Operative",
			Type: entities.ItemTypeClass,
			Class: &entities.ClassData{
				Load:   10,
				Drives: map[string]entities.DriveOption{"duty": {Label: "Duty", Description: "Finish the job."}},
				Equipment: map[string]*entities.EquipmentGroup{
					"sidearm": {Label: "Sidearm", Items: []string{"pistol"}},
				},
			},
		},
	})
	require.NoError(t, err)

	items, err := lib.Pack(ctx, "paranoidworld.classes")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 10, items[0].Class.Load)
	assert.Equal(t, []string{"pistol"}, items[0].Class.Equipment["sidearm"].Items)

	ids, err := lib.Packs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"paranoidworld.classes"}, ids)
}

func TestSQLiteLibrary_ReimportUpdatesSamePack(t *testing.T) {
	ctx := context.Background()
	lib := openTempLibrary(t)

	item := &entities.Item{ID: "rope", Name: "Rope", Type: entities.ItemTypeEquipment, Equipment: &entities.EquipmentData{Weight: 1}}
	require.NoError(t, lib.Import(ctx, "gear", []*entities.Item{item}))

	item.Equipment.Weight = 2
	require.NoError(t, lib.Import(ctx, "gear", []*entities.Item{item}))

	items, err := lib.Pack(ctx, "gear")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Equipment.Weight)

	err = lib.Import(ctx, "other", []*entities.Item{item})
	assert.True(t, pwerr.IsAlreadyExists(err))
}

func TestSQLiteLibrary_RejectsItemsWithoutID(t *testing.T) {
	lib := openTempLibrary(t)

	err := lib.Import(context.Background(), "gear", []*entities.Item{{Name: "Rope", Type: entities.ItemTypeTag}})
	assert.True(t, pwerr.IsInvalidArgument(err))
}

func TestSQLiteLibrary_ImportLibrary(t *testing.T) {
	ctx := context.Background()
	src, err := compendium.LoadFS(packFS, "content")
	require.NoError(t, err)

	lib := openTempLibrary(t)
	require.NoError(t, lib.ImportLibrary(ctx, src))

	moves, err := lib.Pack(ctx, "paranoidworld.operative-moves")
	require.NoError(t, err)
	assert.Len(t, moves, 2)

	_, err = lib.Pack(ctx, "missing")
	assert.True(t, pwerr.IsNotFound(err))
}
