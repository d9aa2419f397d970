// Package catalog implements the gettext PO/POT data model with a
// lossless text parser and serializer.
package catalog

// FuzzyFlag marks a translation as stale or machine-suggested.
const FuzzyFlag = "fuzzy"

// Entry is one translatable unit of a catalog.
//
// IsFuzzy and IsTranslated are derived from Flags and Msgstr; they are
// recomputed by every mutating method and must never be set directly.
type Entry struct {
	Msgid      string
	Msgstr     string
	Msgctxt    string
	HasMsgctxt bool

	Comments          []string // translator comments, "#"
	ExtractedComments []string // developer comments, "#."
	References        []string // source locations, "#:"
	Flags             []string // catalog flags, "#,"

	IsFuzzy      bool
	IsTranslated bool
}

// UpdateStatus recomputes the derived status pair from Msgstr and Flags.
func (e *Entry) UpdateStatus() {
	e.IsFuzzy = e.HasFlag(FuzzyFlag)
	e.IsTranslated = e.Msgstr != "" && !e.IsFuzzy
}

// HasFlag reports whether flag is present in Flags.
func (e *Entry) HasFlag(flag string) bool {
	for _, f := range e.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// SetTranslation replaces Msgstr. Any content is allowed, including empty.
func (e *Entry) SetTranslation(text string) {
	e.Msgstr = text
	e.UpdateStatus()
}

// ToggleFuzzy adds the fuzzy flag if absent, removes it otherwise.
func (e *Entry) ToggleFuzzy() {
	if e.HasFlag(FuzzyFlag) {
		e.removeFlag(FuzzyFlag)
	} else {
		e.Flags = append(e.Flags, FuzzyFlag)
	}
	e.UpdateStatus()
}

// MarkDone removes the fuzzy flag unconditionally.
func (e *Entry) MarkDone() {
	e.removeFlag(FuzzyFlag)
	e.UpdateStatus()
}

func (e *Entry) removeFlag(flag string) {
	kept := e.Flags[:0]
	for _, f := range e.Flags {
		if f != flag {
			kept = append(kept, f)
		}
	}
	e.Flags = kept
}
