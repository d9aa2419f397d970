package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/potui/internal/catalog"
)

type Theme struct {
	Title      lipgloss.Style
	FilePill   lipgloss.Style
	Section    lipgloss.Style
	ActiveLine lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	Dirty      lipgloss.Style
	Cursor     lipgloss.Style
	Overlay    lipgloss.Style
	Suggestion lipgloss.Style
	StateWarn  lipgloss.Style

	Translated   lipgloss.Style
	Fuzzy        lipgloss.Style
	Untranslated lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		FilePill:   lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		Dirty:      lipgloss.NewStyle().Bold(true).Foreground(cpRed),
		Cursor:     lipgloss.NewStyle().Reverse(true),
		Overlay:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(cpMauve).Padding(1, 2),
		Suggestion: lipgloss.NewStyle().Italic(true).Foreground(cpSubtext0),
		StateWarn:  lipgloss.NewStyle().Foreground(cpRed),

		Translated:   lipgloss.NewStyle().Foreground(cpGreen),
		Fuzzy:        lipgloss.NewStyle().Foreground(cpYellow),
		Untranslated: lipgloss.NewStyle().Foreground(cpSubtext0),
	}
}

// StatusGlyph is the one-cell status marker shown in the entry list.
func StatusGlyph(e catalog.Entry) string {
	switch {
	case e.IsFuzzy:
		return "~"
	case e.IsTranslated:
		return "✓"
	default:
		return "○"
	}
}

// StyleEntryTitle colors an entry's list line by its status.
func (t Theme) StyleEntryTitle(e catalog.Entry, title string) string {
	if title == "" {
		return title
	}
	switch {
	case e.IsFuzzy:
		return t.Fuzzy.Render(title)
	case e.IsTranslated:
		return t.Translated.Render(title)
	default:
		return t.Untranslated.Render(title)
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
