// Package tui is the bubbletea front end: it turns key events into
// session commands and renders the session state each frame.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/potui/internal/session"
	"github.com/glabrego/potui/internal/tui/actions"
	"github.com/glabrego/potui/internal/tui/platform"
	"github.com/glabrego/potui/internal/tui/state"
	tuitheme "github.com/glabrego/potui/internal/tui/theme"
	"github.com/glabrego/potui/internal/tui/view"
)

const statusTimeout = 3 * time.Second

type clearStatusMsg struct {
	id int
}

type Model struct {
	session *session.Session
	service actions.Service
	theme   tuitheme.Theme

	width  int
	height int

	status   string
	warning  bool
	statusID int

	// Translation-memory suggestions keyed by catalog entry index.
	suggestions    map[int]string
	suggestPending map[int]bool

	copyFn   func(string) (string, error)
	fatalErr error
	quitting bool
}

func NewModel(s *session.Session, service actions.Service) Model {
	return Model{
		session:        s,
		service:        service,
		theme:          tuitheme.Default(),
		suggestions:    make(map[int]string),
		suggestPending: make(map[int]bool),
		copyFn:         platform.CopyToClipboard,
	}
}

// FatalErr reports the error that forced the session to quit, if any.
// The caller checks it after the program loop returns.
func (m Model) FatalErr() error { return m.fatalErr }

func (m Model) Init() tea.Cmd {
	return m.suggestCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case actions.SaveSuccessMsg:
		return m.setStatus("saved "+msg.Path, false)
	case actions.SaveErrorMsg:
		return m.setStatus("save failed: "+msg.Err.Error(), true)
	case actions.SuggestResultMsg:
		delete(m.suggestPending, msg.EntryIndex)
		if msg.Found {
			m.suggestions[msg.EntryIndex] = msg.Suggestion
		} else {
			m.suggestions[msg.EntryIndex] = ""
		}
		return m, nil
	case actions.CopySuccessMsg:
		return m.setStatus("copied "+msg.What+" via "+msg.Tool, false)
	case actions.CopyErrorMsg:
		return m.setStatus("copy failed: "+msg.Err.Error(), true)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.warning = false
		}
		return m, nil
	}
	return m, nil
}

func (m Model) setStatus(status string, warning bool) (tea.Model, tea.Cmd) {
	m.status = status
	m.warning = warning
	m.statusID++
	id := m.statusID
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quitAndSave()
	}

	switch m.session.State() {
	case session.EditingField, session.EditingMetadata:
		return m.handleEditingKey(msg)
	case session.SearchInput:
		return m.handleSearchKey(msg)
	}
	return m.handleBrowsingKey(msg)
}

func (m Model) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	if s.HelpVisible() {
		switch msg.String() {
		case "esc":
			s.Cancel()
		case "f1", "?":
			s.ToggleHelp()
		case "q", "ctrl+q":
			return m.quitAndSave()
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+q":
		return m.quitAndSave()
	case "up", "k":
		s.Previous()
		return m, m.suggestCmd()
	case "down", "j":
		s.Next()
		return m, m.suggestCmd()
	case "pgup":
		s.PageUp()
		return m, m.suggestCmd()
	case "pgdown":
		s.PageDown()
		return m, m.suggestCmd()
	case "home", "g":
		s.Home()
		return m, m.suggestCmd()
	case "end", "G":
		s.End()
		return m, m.suggestCmd()
	case "enter", "i":
		s.StartEditing()
	case "tab":
		s.NextField()
	case "shift+tab":
		s.PreviousField()
	case "ctrl+f", "/":
		s.StartSearch()
	case "f3":
		s.FindNext()
		return m, m.suggestCmd()
	case "shift+f3":
		s.FindPrevious()
		return m, m.suggestCmd()
	case "ctrl+u":
		s.ToggleUntranslatedFilter()
		return m, m.suggestCmd()
	case "ctrl+z":
		s.ToggleFuzzyFilter()
		return m, m.suggestCmd()
	case "f2", "ctrl+t":
		s.ToggleCurrentFuzzy()
	case "ctrl+d":
		s.MarkDone()
	case "f9":
		s.ToggleMetadataMode()
	case "f1", "?":
		s.ToggleHelp()
	case "esc":
		s.Cancel()
	case "ctrl+s":
		return m, actions.SaveCmd(m.service, s.Catalog)
	case "ctrl+p":
		return m, actions.SaveCmd(m.service, s.Catalog)
	case "ctrl+y":
		if e, ok := s.Current(); ok && e.Msgstr != "" {
			return m, actions.CopyCmd("msgstr", e.Msgstr, m.copyFn)
		}
	}
	return m, nil
}

func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	switch msg.String() {
	case "esc":
		s.Cancel()
	case "enter":
		// Comments are multi-line; Enter extends them instead of
		// committing.
		if s.State() == session.EditingField && s.ActiveField() == session.FieldComments {
			s.InsertRune('\n')
			return m, nil
		}
		s.CommitEdit()
		return m, m.suggestCmd()
	case "ctrl+p":
		s.CommitEdit()
		return m, actions.SaveCmd(m.service, s.Catalog)
	case "backspace":
		s.DeleteBackward()
	case "delete":
		s.DeleteForward()
	case "left":
		s.CursorLeft()
	case "right":
		s.CursorRight()
	case "home":
		s.CursorHome()
	case "end":
		s.CursorEnd()
	default:
		m.insertKey(msg)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	switch msg.String() {
	case "esc":
		s.Cancel()
		return m, m.suggestCmd()
	case "enter":
		s.CommitEdit()
		return m, m.suggestCmd()
	case "backspace":
		s.DeleteBackward()
		return m, m.suggestCmd()
	case "delete":
		s.DeleteForward()
		return m, m.suggestCmd()
	case "left":
		s.CursorLeft()
	case "right":
		s.CursorRight()
	case "home":
		s.CursorHome()
	case "end":
		s.CursorEnd()
	default:
		m.insertKey(msg)
		return m, m.suggestCmd()
	}
	return m, nil
}

func (m Model) insertKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		m.session.InsertString(string(msg.Runes))
	case tea.KeySpace:
		m.session.InsertRune(' ')
	}
}

// suggestCmd kicks off a translation-memory lookup for the current
// entry, unless it is translated or a lookup already ran.
func (m Model) suggestCmd() tea.Cmd {
	s := m.session
	e, ok := s.Current()
	if !ok || e.Msgstr != "" {
		return nil
	}
	idx := s.Visible()[s.Position()]
	if _, known := m.suggestions[idx]; known || m.suggestPending[idx] {
		return nil
	}
	m.suggestPending[idx] = true
	return actions.SuggestCmd(m.service, s.Catalog, idx, *e)
}

// quitAndSave performs the implicit save-on-quit. A save failure is
// fatal: it is surfaced through FatalErr after the loop stops.
func (m Model) quitAndSave() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.session.Modified() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := m.service.SaveCatalog(ctx, m.session.Catalog); err != nil {
			m.fatalErr = err
		}
	}
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.session
	var b strings.Builder

	total, translated, fuzzy := s.Catalog.Stats()
	b.WriteString(view.Header(s.Catalog.Path, s.Modified(), total, translated, fuzzy, s.Filter(), m.theme))
	b.WriteString("\n\n")

	if s.HelpVisible() {
		b.WriteString(view.HelpOverlay(m.theme))
		b.WriteString("\n")
		b.WriteString(view.Footer(s.State(), s.MetadataMode(), s.ActiveField(), m.theme))
		return b.String()
	}

	if s.MetadataMode() {
		edit := view.EditState{}
		if s.State() == session.EditingMetadata {
			buf := s.Buffer()
			edit = view.EditState{Active: true, Text: buf.String(), Cursor: buf.Cursor()}
		}
		b.WriteString(view.MetadataBody(session.MetadataKeys(), s.Catalog.Header.Value, s.MetadataSelected(), edit, m.theme))
	} else {
		b.WriteString(m.renderPanels())
	}
	b.WriteString("\n")

	if s.State() == session.SearchInput {
		buf := s.Buffer()
		b.WriteString(view.SearchBar(buf.String(), buf.Cursor(), m.theme))
		b.WriteString("\n")
	}
	if status := view.StatusLine(m.status, m.warning, m.theme); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(view.Footer(s.State(), s.MetadataMode(), s.ActiveField(), m.theme))
	return b.String()
}

func (m Model) renderPanels() string {
	s := m.session

	listWidth, detailWidth := 40, 60
	if m.width > 0 {
		listWidth = m.width * 2 / 5
		detailWidth = m.width - listWidth - 2
	}

	rows := state.ListHeight(m.height)
	start, end := state.CenteredWindow(len(s.Visible()), s.Position(), rows)
	list := view.RenderListBody(view.ListInput{
		Entries:  s.Catalog.Entries,
		Visible:  s.Visible(),
		Position: s.Position(),
		Start:    start,
		End:      end,
		Width:    listWidth,
		Theme:    m.theme,
	})

	detail := ""
	if e, ok := s.Current(); ok {
		edit := view.EditState{}
		if s.State() == session.EditingField {
			buf := s.Buffer()
			edit = view.EditState{
				Active: true,
				Field:  s.ActiveField(),
				Text:   buf.String(),
				Cursor: buf.Cursor(),
			}
		}
		idx := s.Visible()[s.Position()]
		detail = strings.Join(view.DetailLines(*e, s.ActiveField(), edit, m.suggestions[idx], detailWidth, m.theme), "\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)
}
