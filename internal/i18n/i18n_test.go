package i18n_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/paranoidworld/internal/i18n"
)

func TestLoadEmbedded(t *testing.T) {
	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	assert.Contains(t, bundle.Locales(), i18n.BaseLocale)

	loc, err := bundle.Localizer("en")
	require.NoError(t, err)

	assert.Equal(t, "Violence", loc.Localize("PW.AbilityVio"))
	assert.True(t, loc.Has("PW.operative.Bond4"))
	assert.False(t, loc.Has("PW.operative.Bond5"))
}

func TestLocalize_ReturnsKeyWhenMissing(t *testing.T) {
	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	loc, err := bundle.Localizer("en")
	require.NoError(t, err)

	assert.Equal(t, "PW.operative.Bond6", loc.Localize("PW.operative.Bond6"))
	assert.Equal(t, "PW.Nope", loc.Format("PW.Nope", 1))
}

func TestLocalizer_FallsBackToBaseLocale(t *testing.T) {
	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	loc, err := bundle.Localizer("es")
	require.NoError(t, err)

	assert.Equal(t, "Violencia", loc.Localize("PW.AbilityVio"))
	assert.Equal(t, "Stealth", loc.Localize("PW.AbilityStl"))
	assert.Equal(t, "Mira marcó PX (3/9).", loc.Format("PW.XpMarked", "Mira", 3, 9))
}

func TestFormat(t *testing.T) {
	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	loc, err := bundle.Localizer("en")
	require.NoError(t, err)

	assert.Equal(t, "Mira marked XP (3/9).", loc.Format("PW.XpMarked", "Mira", 3, 9))
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "no catalogs",
			fsys: fstest.MapFS{},
			want: "no catalog files",
		},
		{
			name: "locale mismatch",
			fsys: fstest.MapFS{
				"locales/en/core.yaml": {Data: []byte("locale: fr\nmessages: {a: b}\n")},
			},
			want: "must match path locale",
		},
		{
			name: "missing base locale",
			fsys: fstest.MapFS{
				"locales/fr/core.yaml": {Data: []byte("locale: fr\nmessages: {a: b}\n")},
			},
			want: "base locale",
		},
		{
			name: "duplicate key",
			fsys: fstest.MapFS{
				"locales/en/a.yaml": {Data: []byte("locale: en\nmessages: {k: one}\n")},
				"locales/en/b.yaml": {Data: []byte("locale: en\nmessages: {k: two}\n")},
			},
			want: "duplicate key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := i18n.LoadFS(tt.fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTranslations_FindOriginalID(t *testing.T) {
	content := `
- collection: paranoidworld.classes
  entries:
    - { id: Operative, name: Operativo }
    - { id: Hacker, name: "" }
`
	tr, err := i18n.LoadTranslations(strings.NewReader(content))
	require.NoError(t, err)

	id, ok := tr.FindOriginalID("paranoidworld.classes", " Operativo ")
	assert.True(t, ok)
	assert.Equal(t, "Operative", id)

	_, ok = tr.FindOriginalID("paranoidworld.classes", "Hacker")
	assert.False(t, ok)

	_, ok = tr.FindOriginalID("paranoidworld.moves", "Operativo")
	assert.False(t, ok)

	var nilTr *i18n.Translations
	_, ok = nilTr.FindOriginalID("x", "y")
	assert.False(t, ok)
}
