package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryStatusDerivation(t *testing.T) {
	tests := []struct {
		name           string
		msgstr         string
		flags          []string
		wantFuzzy      bool
		wantTranslated bool
	}{
		{name: "empty untranslated", msgstr: "", flags: nil},
		{name: "translated", msgstr: "Привет", flags: nil, wantTranslated: true},
		{name: "fuzzy with content", msgstr: "Привет", flags: []string{"fuzzy"}, wantFuzzy: true},
		{name: "fuzzy without content", msgstr: "", flags: []string{"fuzzy"}, wantFuzzy: true},
		{name: "other flags only", msgstr: "x", flags: []string{"c-format"}, wantTranslated: true},
		{name: "fuzzy among other flags", msgstr: "x", flags: []string{"c-format", "fuzzy"}, wantFuzzy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Msgid: "Hello", Msgstr: tt.msgstr, Flags: tt.flags}
			e.UpdateStatus()
			assert.Equal(t, tt.wantFuzzy, e.IsFuzzy)
			assert.Equal(t, tt.wantTranslated, e.IsTranslated)
		})
	}
}

func TestSetTranslationRecomputesStatus(t *testing.T) {
	e := Entry{Msgid: "Hello"}
	e.SetTranslation("Bonjour")
	require.True(t, e.IsTranslated)

	e.SetTranslation("")
	require.False(t, e.IsTranslated)
}

func TestToggleFuzzy(t *testing.T) {
	e := Entry{Msgid: "Hello", Msgstr: "Bonjour"}
	e.UpdateStatus()
	require.True(t, e.IsTranslated)

	e.ToggleFuzzy()
	assert.True(t, e.IsFuzzy)
	assert.False(t, e.IsTranslated)
	assert.Equal(t, []string{"fuzzy"}, e.Flags)

	e.ToggleFuzzy()
	assert.False(t, e.IsFuzzy)
	assert.True(t, e.IsTranslated)
	assert.Empty(t, e.Flags)
}

func TestToggleFuzzyKeepsOtherFlags(t *testing.T) {
	e := Entry{Msgid: "Hello", Msgstr: "Bonjour", Flags: []string{"c-format", "fuzzy", "no-wrap"}}
	e.UpdateStatus()

	e.ToggleFuzzy()
	assert.Equal(t, []string{"c-format", "no-wrap"}, e.Flags)
	assert.False(t, e.IsFuzzy)
}

func TestMarkDone(t *testing.T) {
	e := Entry{Msgid: "Hello", Msgstr: "Bonjour", Flags: []string{"fuzzy"}}
	e.UpdateStatus()
	require.True(t, e.IsFuzzy)

	e.MarkDone()
	assert.False(t, e.IsFuzzy)
	assert.True(t, e.IsTranslated)
	assert.NotContains(t, e.Flags, "fuzzy")

	// Idempotent on entries that were never fuzzy.
	e.MarkDone()
	assert.True(t, e.IsTranslated)
}
