package memory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glabrego/potui/internal/catalog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	return store
}

func statusEntry(msgid, msgstr string, flags ...string) catalog.Entry {
	e := catalog.Entry{Msgid: msgid, Msgstr: msgstr, Flags: flags}
	e.UpdateStatus()
	return e
}

func TestStore_RecordAndSuggest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entries := []catalog.Entry{
		statusEntry("Hello", "Bonjour"),
		statusEntry("Untranslated", ""),
		statusEntry("Stale", "Brouillon", "fuzzy"),
	}
	if err := store.Record(ctx, "fr", entries); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	got, ok, err := store.Suggest(ctx, "fr", "Hello", "")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if !ok || got != "Bonjour" {
		t.Fatalf("expected suggestion %q, got %q (ok=%v)", "Bonjour", got, ok)
	}

	// Untranslated and fuzzy entries must not be remembered.
	for _, msgid := range []string{"Untranslated", "Stale"} {
		_, ok, err := store.Suggest(ctx, "fr", msgid, "")
		if err != nil {
			t.Fatalf("Suggest returned error: %v", err)
		}
		if ok {
			t.Fatalf("expected no suggestion for %q", msgid)
		}
	}
}

func TestStore_RecordUpserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, "fr", []catalog.Entry{statusEntry("Open", "Ouvrir")}); err != nil {
		t.Fatalf("initial Record returned error: %v", err)
	}
	if err := store.Record(ctx, "fr", []catalog.Entry{statusEntry("Open", "Ouvert")}); err != nil {
		t.Fatalf("second Record returned error: %v", err)
	}

	got, ok, err := store.Suggest(ctx, "fr", "Open", "")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if !ok || got != "Ouvert" {
		t.Fatalf("expected updated suggestion %q, got %q (ok=%v)", "Ouvert", got, ok)
	}
}

func TestStore_SuggestFallsBackAcrossContexts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	menu := statusEntry("Open", "Ouvrir")
	menu.Msgctxt = "menu"
	menu.HasMsgctxt = true
	if err := store.Record(ctx, "fr", []catalog.Entry{menu}); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	got, ok, err := store.Suggest(ctx, "fr", "Open", "dialog")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if !ok || got != "Ouvrir" {
		t.Fatalf("expected cross-context fallback %q, got %q (ok=%v)", "Ouvrir", got, ok)
	}
}

func TestStore_SuggestScopedByLanguage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, "fr", []catalog.Entry{statusEntry("Hello", "Bonjour")}); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	_, ok, err := store.Suggest(ctx, "de", "Hello", "")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if ok {
		t.Fatal("expected no suggestion for a different language")
	}
}
