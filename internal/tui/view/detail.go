package view

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/glabrego/potui/internal/catalog"
	"github.com/glabrego/potui/internal/session"
	tuitheme "github.com/glabrego/potui/internal/tui/theme"
)

// EditState carries an in-flight buffer into the renderer. When
// Active, the section matching Field shows the buffer with a cursor
// instead of the stored value.
type EditState struct {
	Active bool
	Field  session.Field
	Text   string
	Cursor int
}

// DetailLines renders the right-hand pane for one entry: the three
// editable sections plus read-only context, references and flags.
func DetailLines(e catalog.Entry, active session.Field, edit EditState, suggestion string, width int, th tuitheme.Theme) []string {
	var lines []string

	section := func(field session.Field, label, value string) {
		marker := "  "
		if field == active {
			marker = "▌ "
		}
		lines = append(lines, th.Section.Render(marker+label))
		body := value
		if edit.Active && edit.Field == field {
			body = WithCursor(edit.Text, edit.Cursor, th)
		}
		if body == "" {
			lines = append(lines, th.MetaLabel.Render("  (empty)"))
		} else {
			lines = append(lines, indentLines(wrapText(body, width-2), "  ")...)
		}
		lines = append(lines, "")
	}

	section(session.FieldMsgid, "msgid", e.Msgid)
	section(session.FieldMsgstr, "msgstr", e.Msgstr)
	section(session.FieldComments, "comments", strings.Join(e.Comments, "\n"))

	if suggestion != "" && e.Msgstr == "" {
		lines = append(lines, th.Suggestion.Render("  memory: "+suggestion), "")
	}

	meta := func(label, value string) {
		if value == "" {
			return
		}
		lines = append(lines, th.MetaLabel.Render("  "+label+" ")+th.MetaValue.Render(value))
	}
	if e.HasMsgctxt {
		meta("context", e.Msgctxt)
	}
	meta("references", strings.Join(e.References, " "))
	meta("flags", strings.Join(e.Flags, ", "))
	meta("notes", strings.Join(e.ExtractedComments, " | "))

	return lines
}

// WithCursor marks the codepoint at cursor with the cursor style. A
// cursor at end of text renders as a trailing block.
func WithCursor(text string, cursor int, th tuitheme.Theme) string {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(runes) {
		return text + th.Cursor.Render(" ")
	}
	if runes[cursor] == '\n' {
		return string(runes[:cursor]) + th.Cursor.Render(" ") + string(runes[cursor:])
	}
	return string(runes[:cursor]) + th.Cursor.Render(string(runes[cursor])) + string(runes[cursor+1:])
}

func wrapText(s string, width int) []string {
	if width < 10 {
		width = 10
	}
	return strings.Split(wordwrap.String(s, width), "\n")
}

func indentLines(lines []string, prefix string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = prefix + line
	}
	return out
}
