package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/glabrego/potui/internal/catalog"
	tuitheme "github.com/glabrego/potui/internal/tui/theme"
)

type ListInput struct {
	Entries  []catalog.Entry
	Visible  []int
	Position int
	Start    int
	End      int
	Width    int
	Theme    tuitheme.Theme
}

// RenderListBody renders the windowed entry list, one row per visible
// entry.
func RenderListBody(in ListInput) string {
	if len(in.Visible) == 0 {
		return in.Theme.MetaLabel.Render("no entries match")
	}
	var b strings.Builder
	for i := in.Start; i < in.End && i < len(in.Visible); i++ {
		b.WriteString(EntryLine(in.Entries[in.Visible[i]], i, in.Width, i == in.Position, in.Theme))
		b.WriteString("\n")
	}
	return b.String()
}

// EntryLine renders one list row: status glyph, position and the
// msgid's first line, truncated to width.
func EntryLine(e catalog.Entry, pos, width int, active bool, th tuitheme.Theme) string {
	label := fmt.Sprintf("%s %3d %s", tuitheme.StatusGlyph(e), pos+1, firstLine(e.Msgid))
	if width > 0 {
		label = runewidth.Truncate(label, width, "…")
	}
	if active {
		return th.RenderActiveLine(true, label)
	}
	return th.StyleEntryTitle(e, label)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "↩"
	}
	return s
}
