package session

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/glabrego/potui/internal/catalog"
)

// FilterMode restricts which entries are visible in the session view.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterUntranslated
	FilterFuzzy
)

func (m FilterMode) String() string {
	switch m {
	case FilterUntranslated:
		return "Untranslated"
	case FilterFuzzy:
		return "Fuzzy"
	default:
		return "All"
	}
}

// FoldFunc normalizes text before substring matching.
type FoldFunc func(string) string

// UnicodeFold matches case-insensitively across scripts using full
// Unicode case folding.
func UnicodeFold() FoldFunc {
	caser := cases.Fold()
	return caser.String
}

// ASCIIFold lowercases ASCII letters only, leaving everything else as
// typed.
func ASCIIFold() FoldFunc {
	return func(s string) string {
		return strings.Map(func(r rune) rune {
			if r >= 'A' && r <= 'Z' {
				return r + ('a' - 'A')
			}
			return r
		}, s)
	}
}

// visibleEntries returns the catalog indices that pass both the filter
// predicate and the search query, in catalog order.
func visibleEntries(c *catalog.Catalog, mode FilterMode, query string, fold FoldFunc) []int {
	needle := ""
	if query != "" {
		needle = fold(query)
	}
	out := make([]int, 0, len(c.Entries))
	for i := range c.Entries {
		e := &c.Entries[i]
		switch mode {
		case FilterUntranslated:
			if e.IsTranslated {
				continue
			}
		case FilterFuzzy:
			if !e.IsFuzzy {
				continue
			}
		}
		if needle != "" &&
			!strings.Contains(fold(e.Msgid), needle) &&
			!strings.Contains(fold(e.Msgstr), needle) {
			continue
		}
		out = append(out, i)
	}
	return out
}
