// Package session implements the editing session state machine: a
// filtered view over a catalog plus the mode transitions for field
// edits, metadata edits and incremental search. It is UI-free; the
// terminal layer translates key events into the commands defined here.
package session

import (
	"strings"

	"github.com/glabrego/potui/internal/catalog"
)

// State is the session's editing mode. Exactly one edit buffer can be
// live at a time, and only in the editing/search states.
type State int

const (
	Browsing State = iota
	EditingField
	EditingMetadata
	SearchInput
)

func (s State) String() string {
	switch s {
	case EditingField:
		return "editing"
	case EditingMetadata:
		return "editing-metadata"
	case SearchInput:
		return "search"
	default:
		return "browsing"
	}
}

// Field identifies which entry field navigation and editing target.
type Field int

const (
	FieldMsgid Field = iota
	FieldMsgstr
	FieldComments

	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldMsgid:
		return "msgid"
	case FieldComments:
		return "comments"
	default:
		return "msgstr"
	}
}

// metadataKeys is the fixed set of header fields reachable in metadata
// mode, in display order.
var metadataKeys = []string{
	"Project-Id-Version",
	"Language",
	"Language-Team",
	"Last-Translator",
	"Report-Msgid-Bugs-To",
	"POT-Creation-Date",
	"PO-Revision-Date",
	"MIME-Version",
	"Content-Type",
	"Content-Transfer-Encoding",
	"Plural-Forms",
}

// MetadataKeys lists the header fields shown in metadata mode.
func MetadataKeys() []string { return metadataKeys }

const defaultPageSize = 10

// Options tune a session; zero values fall back to defaults.
type Options struct {
	PageSize int
	Fold     FoldFunc
}

// Session owns a catalog and the view state over it. All commands are
// synchronous; invalid-but-harmless commands (editing an empty view,
// toggling fuzzy mid-search) are silent no-ops.
type Session struct {
	Catalog *catalog.Catalog

	state State
	field Field

	filter   FilterMode
	query    string
	filtered []int
	current  int

	metadataMode     bool
	metadataSelected int
	helpVisible      bool

	buffer   EditBuffer
	fold     FoldFunc
	pageSize int
}

func New(c *catalog.Catalog, opts Options) *Session {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.Fold == nil {
		opts.Fold = UnicodeFold()
	}
	s := &Session{
		Catalog:  c,
		field:    FieldMsgstr,
		fold:     opts.Fold,
		pageSize: opts.PageSize,
	}
	s.recomputeView()
	return s
}

func (s *Session) State() State { return s.state }

func (s *Session) ActiveField() Field { return s.field }

func (s *Session) Filter() FilterMode { return s.filter }

func (s *Session) Query() string { return s.query }

func (s *Session) HelpVisible() bool { return s.helpVisible }

func (s *Session) MetadataMode() bool { return s.metadataMode }

func (s *Session) MetadataSelected() int { return s.metadataSelected }

func (s *Session) Buffer() EditBuffer { return s.buffer }

// Visible returns catalog indices currently in view, in catalog order.
func (s *Session) Visible() []int { return s.filtered }

// Position is the cursor within the visible slice.
func (s *Session) Position() int { return s.current }

// Current returns the entry under the cursor, or false on an empty
// view. The pointer aliases the catalog's entry slice.
func (s *Session) Current() (*catalog.Entry, bool) {
	if len(s.filtered) == 0 {
		return nil, false
	}
	return &s.Catalog.Entries[s.filtered[s.current]], true
}

func (s *Session) recomputeView() {
	s.filtered = visibleEntries(s.Catalog, s.filter, s.query, s.fold)
	s.current = clampIndex(s.current, len(s.filtered))
}

func clampIndex(v, n int) int {
	if n == 0 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// --- navigation ---

func (s *Session) move(delta int) {
	if s.state != Browsing {
		return
	}
	if s.metadataMode {
		s.metadataSelected = clampIndex(s.metadataSelected+delta, len(metadataKeys))
		return
	}
	if len(s.filtered) == 0 {
		return
	}
	s.current = clampIndex(s.current+delta, len(s.filtered))
}

func (s *Session) Next() { s.move(1) }

func (s *Session) Previous() { s.move(-1) }

func (s *Session) PageDown() { s.move(s.pageSize) }

func (s *Session) PageUp() { s.move(-s.pageSize) }

func (s *Session) Home() {
	if s.state != Browsing {
		return
	}
	if s.metadataMode {
		s.metadataSelected = 0
		return
	}
	s.current = 0
}

func (s *Session) End() {
	if s.state != Browsing {
		return
	}
	if s.metadataMode {
		s.metadataSelected = len(metadataKeys) - 1
		return
	}
	if len(s.filtered) > 0 {
		s.current = len(s.filtered) - 1
	}
}

// --- field cycling ---

func (s *Session) NextField() {
	if s.state != Browsing || s.metadataMode {
		return
	}
	s.field = (s.field + 1) % fieldCount
}

func (s *Session) PreviousField() {
	if s.state != Browsing || s.metadataMode {
		return
	}
	s.field = (s.field + fieldCount - 1) % fieldCount
}

// --- edit lifecycle ---

// StartEditing snapshots the active field (or the selected header
// value in metadata mode) into the edit buffer with the cursor at the
// end.
func (s *Session) StartEditing() {
	if s.state != Browsing || s.helpVisible {
		return
	}
	if s.metadataMode {
		key := metadataKeys[s.metadataSelected]
		s.buffer = NewEditBuffer(s.Catalog.Header.Value(key))
		s.state = EditingMetadata
		return
	}
	e, ok := s.Current()
	if !ok {
		return
	}
	s.buffer = NewEditBuffer(s.fieldText(e))
	s.state = EditingField
}

func (s *Session) fieldText(e *catalog.Entry) string {
	switch s.field {
	case FieldMsgid:
		return e.Msgid
	case FieldComments:
		return strings.Join(e.Comments, "\n")
	default:
		return e.Msgstr
	}
}

// CommitEdit writes the buffer into the catalog and returns to
// browsing. In search input it just leaves the mode; the query stays
// active as a filter.
func (s *Session) CommitEdit() {
	switch s.state {
	case EditingField:
		if e, ok := s.Current(); ok {
			text := s.buffer.String()
			switch s.field {
			case FieldMsgid:
				e.Msgid = text
			case FieldMsgstr:
				e.SetTranslation(text)
			case FieldComments:
				if text == "" {
					e.Comments = nil
				} else {
					e.Comments = strings.Split(text, "\n")
				}
			}
			s.Catalog.TouchRevisionDate()
		}
		s.buffer = EditBuffer{}
		s.state = Browsing
		s.recomputeView()
	case EditingMetadata:
		key := metadataKeys[s.metadataSelected]
		s.Catalog.SetHeaderField(key, s.buffer.String())
		// A hand-edited revision date wins over the stamp.
		if key != "PO-Revision-Date" {
			s.Catalog.TouchRevisionDate()
		}
		s.buffer = EditBuffer{}
		s.state = Browsing
	case SearchInput:
		s.buffer = EditBuffer{}
		s.state = Browsing
	}
}

// Cancel closes the help overlay if shown; otherwise it discards any
// in-flight edit buffer without touching the catalog, or leaves search
// input keeping the query.
func (s *Session) Cancel() {
	if s.helpVisible {
		s.helpVisible = false
		return
	}
	switch s.state {
	case EditingField, EditingMetadata, SearchInput:
		s.buffer = EditBuffer{}
		s.state = Browsing
	}
}

// --- text input ---

func (s *Session) InsertRune(r rune) {
	switch s.state {
	case EditingField, EditingMetadata:
		s.buffer.InsertRune(r)
	case SearchInput:
		s.buffer.InsertRune(r)
		s.queryChanged()
	}
}

func (s *Session) InsertString(text string) {
	switch s.state {
	case EditingField, EditingMetadata:
		s.buffer.InsertString(text)
	case SearchInput:
		s.buffer.InsertString(text)
		s.queryChanged()
	}
}

func (s *Session) DeleteBackward() {
	switch s.state {
	case EditingField, EditingMetadata:
		s.buffer.DeleteBackward()
	case SearchInput:
		s.buffer.DeleteBackward()
		s.queryChanged()
	}
}

func (s *Session) DeleteForward() {
	switch s.state {
	case EditingField, EditingMetadata:
		s.buffer.DeleteForward()
	case SearchInput:
		s.buffer.DeleteForward()
		s.queryChanged()
	}
}

func (s *Session) CursorLeft() {
	if s.inputActive() {
		s.buffer.Left()
	}
}

func (s *Session) CursorRight() {
	if s.inputActive() {
		s.buffer.Right()
	}
}

func (s *Session) CursorHome() {
	if s.inputActive() {
		s.buffer.Home()
	}
}

func (s *Session) CursorEnd() {
	if s.inputActive() {
		s.buffer.End()
	}
}

func (s *Session) inputActive() bool {
	return s.state == EditingField || s.state == EditingMetadata || s.state == SearchInput
}

// Every query keystroke re-filters immediately and jumps to the first
// match.
func (s *Session) queryChanged() {
	s.query = s.buffer.String()
	s.recomputeView()
	s.current = 0
}

// --- search ---

func (s *Session) StartSearch() {
	if s.state != Browsing || s.metadataMode || s.helpVisible {
		return
	}
	s.buffer = NewEditBuffer(s.query)
	s.state = SearchInput
}

func (s *Session) FindNext() {
	if s.state != Browsing || s.metadataMode || s.query == "" {
		return
	}
	s.recomputeView()
	s.move(1)
}

func (s *Session) FindPrevious() {
	if s.state != Browsing || s.metadataMode || s.query == "" {
		return
	}
	s.recomputeView()
	s.move(-1)
}

// --- filters ---

func (s *Session) ToggleUntranslatedFilter() { s.toggleFilter(FilterUntranslated) }

func (s *Session) ToggleFuzzyFilter() { s.toggleFilter(FilterFuzzy) }

// Selecting the active filter reverts to All; anything else replaces
// the prior filter.
func (s *Session) toggleFilter(mode FilterMode) {
	if s.state != Browsing || s.metadataMode {
		return
	}
	if s.filter == mode {
		s.filter = FilterAll
	} else {
		s.filter = mode
	}
	s.recomputeView()
}

// --- status mutation ---

// ToggleCurrentFuzzy flips the fuzzy flag on the current entry.
// Untranslated entries are left alone: fuzzy marks a translation as
// needing review, and there is nothing to review yet.
func (s *Session) ToggleCurrentFuzzy() {
	e, ok := s.mutableCurrent()
	if !ok || e.Msgstr == "" {
		return
	}
	e.ToggleFuzzy()
	s.Catalog.TouchRevisionDate()
	s.recomputeView()
}

// MarkDone clears the fuzzy flag on the current entry, under the same
// guards as ToggleCurrentFuzzy.
func (s *Session) MarkDone() {
	e, ok := s.mutableCurrent()
	if !ok || e.Msgstr == "" {
		return
	}
	e.MarkDone()
	s.Catalog.TouchRevisionDate()
	s.recomputeView()
}

func (s *Session) mutableCurrent() (*catalog.Entry, bool) {
	if s.state != Browsing || s.metadataMode {
		return nil, false
	}
	return s.Current()
}

// --- overlays and modes ---

func (s *Session) ToggleHelp() {
	if s.state != Browsing {
		return
	}
	s.helpVisible = !s.helpVisible
}

func (s *Session) ToggleMetadataMode() {
	if s.state != Browsing {
		return
	}
	s.metadataMode = !s.metadataMode
}

// --- persistence ---

// Save serializes the catalog to its path and clears the dirty flag.
func (s *Session) Save() error {
	return s.Catalog.Save()
}

// SaveEntry commits any in-flight edit, then persists the catalog.
// This is also the commit path for the multi-line comments field,
// where Enter inserts a newline instead of committing.
func (s *Session) SaveEntry() error {
	if s.state == EditingField || s.state == EditingMetadata {
		s.CommitEdit()
	}
	return s.Save()
}

// Modified reports whether the catalog has unsaved changes.
func (s *Session) Modified() bool { return s.Catalog.Modified }
