package catalog

import (
	"fmt"
	"strings"
)

// escaper is the exact inverse of decodeLiteral. NewReplacer substitutes in
// a single pass, so a pre-existing backslash is never double-escaped.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
	`"`, `\"`,
)

func escapeLiteral(s string) string {
	return escaper.Replace(s)
}

// Serialize renders the catalog as PO text: header block first, then each
// entry in order. Output always parses back to a field-equal catalog.
func (c *Catalog) Serialize() string {
	var b strings.Builder

	if c.Header.Len() > 0 {
		b.WriteString("msgid \"\"\n")
		b.WriteString("msgstr \"\"\n")
		for _, key := range c.Header.Keys() {
			fmt.Fprintf(&b, "\"%s: %s\\n\"\n", escapeLiteral(key), escapeLiteral(c.Header.Value(key)))
		}
		b.WriteByte('\n')
	}

	for i := range c.Entries {
		writeEntry(&b, &c.Entries[i])
	}
	return b.String()
}

func writeEntry(b *strings.Builder, e *Entry) {
	for _, comment := range e.Comments {
		fmt.Fprintf(b, "# %s\n", comment)
	}
	for _, comment := range e.ExtractedComments {
		fmt.Fprintf(b, "#. %s\n", comment)
	}
	for _, ref := range e.References {
		fmt.Fprintf(b, "#: %s\n", ref)
	}
	if len(e.Flags) > 0 {
		fmt.Fprintf(b, "#, %s\n", strings.Join(e.Flags, ", "))
	}
	if e.HasMsgctxt {
		fmt.Fprintf(b, "msgctxt \"%s\"\n", escapeLiteral(e.Msgctxt))
	}
	fmt.Fprintf(b, "msgid \"%s\"\n", escapeLiteral(e.Msgid))
	fmt.Fprintf(b, "msgstr \"%s\"\n", escapeLiteral(e.Msgstr))
	b.WriteByte('\n')
}
