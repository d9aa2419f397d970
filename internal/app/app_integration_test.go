package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabrego/potui/internal/catalog"
	"github.com/glabrego/potui/internal/memory"
)

// Exercises the service against a real sqlite translation memory:
// save one catalog, then get its translations suggested for a fresh
// catalog in the same language.
func TestIntegration_SaveThenSuggestAcrossCatalogs(t *testing.T) {
	dir := t.TempDir()

	store, err := memory.NewStore(filepath.Join(dir, "memory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Init(ctx))

	svc := NewService(store, "", zerolog.Nop())

	first := svc.CreateCatalog(filepath.Join(dir, "first.po"))
	first.SetHeaderField("Language", "fr")
	first.Entries = append(first.Entries,
		catalog.Entry{Msgid: "Open", Msgstr: "Ouvrir"},
		catalog.Entry{Msgid: "Close", Msgstr: "Fermer"},
		catalog.Entry{Msgid: "Pending", Msgstr: ""},
	)
	for i := range first.Entries {
		first.Entries[i].UpdateStatus()
	}
	require.NoError(t, svc.SaveCatalog(ctx, first))

	second := svc.CreateCatalog(filepath.Join(dir, "second.po"))
	second.SetHeaderField("Language", "fr")

	got, ok := svc.Suggest(ctx, second, catalog.Entry{Msgid: "Open"})
	require.True(t, ok)
	assert.Equal(t, "Ouvrir", got)

	// Never recorded: it was untranslated when saved.
	_, ok = svc.Suggest(ctx, second, catalog.Entry{Msgid: "Pending"})
	assert.False(t, ok)

	// Different language, no hit.
	third := svc.CreateCatalog(filepath.Join(dir, "third.po"))
	third.SetHeaderField("Language", "de")
	_, ok = svc.Suggest(ctx, third, catalog.Entry{Msgid: "Open"})
	assert.False(t, ok)
}
