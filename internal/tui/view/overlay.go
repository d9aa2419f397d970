package view

import (
	"strings"

	tuitheme "github.com/glabrego/potui/internal/tui/theme"
)

// HelpOverlay renders the full keybinding reference box.
func HelpOverlay(th tuitheme.Theme) string {
	lines := []string{
		th.Title.Render("potui keys"),
		"",
		th.Section.Render("Navigation"),
		"  j/k, arrows   move",
		"  pgup/pgdown   page",
		"  home/end      first/last entry",
		"",
		th.Section.Render("Editing"),
		"  enter, i      edit active field",
		"  tab/shift+tab cycle msgid/msgstr/comments",
		"  enter         commit (newline in comments)",
		"  ctrl+p        commit and save entry",
		"  esc           discard edit",
		"",
		th.Section.Render("Search & filters"),
		"  ctrl+f        search msgid/msgstr",
		"  f3 / shift+f3 find next/previous",
		"  ctrl+u        untranslated filter",
		"  ctrl+z        fuzzy filter",
		"",
		th.Section.Render("Status"),
		"  f2, ctrl+t    toggle fuzzy",
		"  ctrl+d        mark done",
		"",
		th.Section.Render("File"),
		"  f9            metadata editor",
		"  ctrl+y        copy msgstr",
		"  ctrl+s        save",
		"  q, ctrl+q     quit (saves if modified)",
		"",
		th.MetaLabel.Render("esc or f1 closes this help"),
	}
	return th.Overlay.Render(strings.Join(lines, "\n"))
}

// MetadataBody renders the header-field editor: the fixed key list
// with the selected key's value (or live edit buffer) beside it.
func MetadataBody(keys []string, valueOf func(string) string, selected int, edit EditState, th tuitheme.Theme) string {
	var b strings.Builder
	b.WriteString(th.Section.Render("catalog metadata"))
	b.WriteString("\n\n")
	for i, key := range keys {
		line := key + ": "
		if edit.Active && i == selected {
			line += WithCursor(edit.Text, edit.Cursor, th)
		} else {
			line += th.MetaValue.Render(valueOf(key))
		}
		b.WriteString(th.RenderActiveLine(i == selected, line))
		b.WriteString("\n")
	}
	return b.String()
}
