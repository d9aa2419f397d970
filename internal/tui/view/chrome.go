package view

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/glabrego/potui/internal/session"
	tuitheme "github.com/glabrego/potui/internal/tui/theme"
)

// Header renders the top line: program name, file pill with dirty
// marker, progress stats and the active filter.
func Header(path string, modified bool, total, translated, fuzzy int, filter session.FilterMode, th tuitheme.Theme) string {
	name := "(new catalog)"
	if path != "" {
		name = filepath.Base(path)
	}
	if modified {
		name += " " + th.Dirty.Render("●")
	}

	progress := 0.0
	if total > 0 {
		progress = float64(translated) / float64(total) * 100
	}
	stats := fmt.Sprintf("%d entries | %d translated (%.1f%%) | %d fuzzy | %d untranslated",
		total, translated, progress, fuzzy, total-translated-fuzzy)

	parts := []string{
		th.Title.Render("potui"),
		th.FilePill.Render(name),
		th.MetaValue.Render(stats),
		th.MetaLabel.Render("filter") + " " + th.MetaValue.Render(filter.String()),
	}
	return strings.Join(parts, " ")
}

// Footer renders contextual key hints for the current mode.
func Footer(st session.State, metadataMode bool, field session.Field, th tuitheme.Theme) string {
	var hints string
	switch {
	case st == session.EditingField && field == session.FieldComments:
		hints = "enter newline | ctrl+p commit+save | esc discard"
	case st == session.EditingField, st == session.EditingMetadata:
		hints = "enter commit | ctrl+p commit+save | esc discard"
	case st == session.SearchInput:
		hints = "type to filter | enter/esc done"
	case metadataMode:
		hints = "j/k move | enter edit | f9 back | ctrl+s save | q quit"
	default:
		hints = "j/k move | enter edit | tab field | ctrl+f search | f3 next | ctrl+u/ctrl+z filter | f2 fuzzy | ctrl+d done | f9 metadata | ? help | ctrl+s save | q quit"
	}
	return th.MetaLabel.Render(hints)
}

// SearchBar renders the incremental search prompt with its cursor.
func SearchBar(query string, cursor int, th tuitheme.Theme) string {
	return th.Section.Render("search: ") + WithCursor(query, cursor, th)
}

// StatusLine renders a transient status or warning message.
func StatusLine(status string, warning bool, th tuitheme.Theme) string {
	if status == "" {
		return ""
	}
	if warning {
		return th.StateWarn.Render(status)
	}
	return th.MetaValue.Render(status)
}
