package settings_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/paranoidworld/internal/settings"
)

func TestNew_Defaults(t *testing.T) {
	store, err := settings.New(settings.Config{})
	require.NoError(t, err)

	assert.Equal(t, settings.DefaultXPFormula, store.GetString(settings.ScopeWorld, settings.KeyXPFormula))
	assert.True(t, store.GetBool(settings.ScopeClient, settings.KeyItemIcons))
	assert.False(t, store.GetBool(settings.ScopeClient, settings.KeyNightmode))
	assert.Equal(t, 0, store.GetInt(settings.ScopeWorld, settings.KeySystemMigrationVersion))
}

func TestSet_InMemory(t *testing.T) {
	store, err := settings.New(settings.Config{})
	require.NoError(t, err)

	require.NoError(t, store.Set(settings.ScopeWorld, settings.KeyXPFormula, "@attributes.level.value * 2"))
	assert.Equal(t, "@attributes.level.value * 2", settings.XPFormula(store))

	assert.Error(t, store.Set("user", "x", 1))
}

func TestXPFormula_FallsBackWhenBlank(t *testing.T) {
	store, err := settings.New(settings.Config{})
	require.NoError(t, err)

	require.NoError(t, store.Set(settings.ScopeWorld, settings.KeyXPFormula, ""))
	assert.Equal(t, settings.DefaultXPFormula, settings.XPFormula(store))
}

func TestFileBackedStore_PersistsAcrossReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	store, err := settings.New(settings.Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, store.Set(settings.ScopeWorld, settings.KeySystemMigrationVersion, 1))

	reloaded, err := settings.New(settings.Config{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.GetInt(settings.ScopeWorld, settings.KeySystemMigrationVersion))
	assert.Equal(t, settings.DefaultXPFormula, reloaded.GetString(settings.ScopeWorld, settings.KeyXPFormula))
}
