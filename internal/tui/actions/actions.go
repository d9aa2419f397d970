// Package actions builds the asynchronous bubbletea commands the
// model dispatches for catalog persistence and translation-memory
// lookups.
package actions

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/potui/internal/catalog"
)

type Service interface {
	SaveCatalog(ctx context.Context, c *catalog.Catalog) error
	Suggest(ctx context.Context, c *catalog.Catalog, e catalog.Entry) (string, bool)
}

type SaveSuccessMsg struct {
	Path     string
	Duration time.Duration
}

type SaveErrorMsg struct {
	Err error
}

type SuggestResultMsg struct {
	EntryIndex int
	Suggestion string
	Found      bool
}

type CopySuccessMsg struct {
	What string
	Tool string
}

type CopyErrorMsg struct {
	Err error
}

func SaveCmd(service Service, c *catalog.Catalog) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		start := time.Now()

		if err := service.SaveCatalog(ctx, c); err != nil {
			return SaveErrorMsg{Err: err}
		}
		return SaveSuccessMsg{Path: c.Path, Duration: time.Since(start)}
	}
}

// SuggestCmd looks up a translation-memory suggestion for the entry at
// entryIndex. The entry is passed by value so the lookup never races
// with edits.
func SuggestCmd(service Service, c *catalog.Catalog, entryIndex int, e catalog.Entry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		suggestion, ok := service.Suggest(ctx, c, e)
		return SuggestResultMsg{EntryIndex: entryIndex, Suggestion: suggestion, Found: ok}
	}
}

func CopyCmd(what, text string, copyFn func(string) (string, error)) tea.Cmd {
	return func() tea.Msg {
		tool, err := copyFn(text)
		if err != nil {
			return CopyErrorMsg{Err: err}
		}
		return CopySuccessMsg{What: what, Tool: tool}
	}
}
