package session

import (
	"testing"

	"github.com/glabrego/potui/internal/catalog"
)

func testCatalog(entries ...catalog.Entry) *catalog.Catalog {
	c := catalog.New("test.po")
	for i := range entries {
		entries[i].UpdateStatus()
	}
	c.Entries = entries
	return c
}

func TestVisibleEntriesFilterSearchComposition(t *testing.T) {
	c := testCatalog(
		catalog.Entry{Msgid: "A", Msgstr: "x"},
		catalog.Entry{Msgid: "B", Msgstr: ""},
		catalog.Entry{Msgid: "C", Msgstr: "y", Flags: []string{"fuzzy"}},
	)
	fold := UnicodeFold()

	tests := []struct {
		name   string
		mode   FilterMode
		query  string
		want   []int
	}{
		{name: "all no query", mode: FilterAll, query: "", want: []int{0, 1, 2}},
		{name: "fuzzy with matching query", mode: FilterFuzzy, query: "y", want: []int{2}},
		{name: "fuzzy with non-matching query", mode: FilterFuzzy, query: "zzz", want: []int{}},
		// A fuzzy entry is not translated, so it shows up under the
		// untranslated filter too.
		{name: "untranslated no query", mode: FilterUntranslated, query: "", want: []int{1, 2}},
		{name: "query matches msgid", mode: FilterAll, query: "a", want: []int{0}},
		{name: "query matches msgstr", mode: FilterAll, query: "x", want: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visibleEntries(c, tt.mode, tt.query, fold)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	c := testCatalog(
		catalog.Entry{Msgid: "Hello World", Msgstr: ""},
		catalog.Entry{Msgid: "ПРИВЕТ", Msgstr: ""},
	)

	got := visibleEntries(c, FilterAll, "hello", UnicodeFold())
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("ascii query: got %v, want [0]", got)
	}

	got = visibleEntries(c, FilterAll, "привет", UnicodeFold())
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("cyrillic query under unicode folding: got %v, want [1]", got)
	}

	got = visibleEntries(c, FilterAll, "привет", ASCIIFold())
	if len(got) != 0 {
		t.Errorf("cyrillic query under ascii folding: got %v, want none", got)
	}
}

func TestASCIIFoldLeavesNonASCIIAlone(t *testing.T) {
	fold := ASCIIFold()
	if got := fold("AbC Мир"); got != "abc Мир" {
		t.Errorf("fold = %q, want %q", got, "abc Мир")
	}
}
