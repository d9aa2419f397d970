package catalog

import (
	"fmt"
	"os"
	"time"
)

// timestampLayout is the gettext revision date format, YYYY-MM-DD HH:MM±ZZZZ.
const timestampLayout = "2006-01-02 15:04-0700"

// creationPlaceholder appears in POT-Creation-Date values that were never filled.
const creationPlaceholder = "YEAR-MO-DA"

// Catalog is an ordered collection of entries plus header metadata for one file.
type Catalog struct {
	Path     string
	Header   *Header
	Entries  []Entry
	Modified bool

	nowFn func() time.Time
}

// New constructs an empty catalog at path with the placeholder default header.
func New(path string) *Catalog {
	return &Catalog{
		Path:   path,
		Header: DefaultHeader(),
		nowFn:  time.Now,
	}
}

// Load reads and parses the catalog at path. Recoverable parse problems are
// returned as diagnostics alongside a usable catalog; only I/O failures error.
func Load(path string) (*Catalog, []Diagnostic, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, diags := Parse(string(content))
	c.Path = path
	return c, diags, nil
}

// Save serializes the catalog and writes it to its path, clearing the
// modified flag on success.
func (c *Catalog) Save() error {
	if c.Path == "" {
		return fmt.Errorf("catalog has no file path")
	}
	if err := os.WriteFile(c.Path, []byte(c.Serialize()), 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", c.Path, err)
	}
	c.Modified = false
	return nil
}

// SaveAs writes the catalog to path and adopts it as the catalog's path.
func (c *Catalog) SaveAs(path string) error {
	if err := os.WriteFile(path, []byte(c.Serialize()), 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	c.Path = path
	c.Modified = false
	return nil
}

// SetHeaderField sets a header key and marks the catalog modified.
func (c *Catalog) SetHeaderField(key, value string) {
	c.Header.Set(key, value)
	c.Modified = true
}

// TouchRevisionDate stamps PO-Revision-Date with the current time.
func (c *Catalog) TouchRevisionDate() {
	c.SetHeaderField("PO-Revision-Date", c.now().Format(timestampLayout))
}

// MarkModified flags the catalog as having unsaved changes.
func (c *Catalog) MarkModified() {
	c.Modified = true
}

// Stats returns the total, translated and fuzzy entry counts.
func (c *Catalog) Stats() (total, translated, fuzzy int) {
	total = len(c.Entries)
	for i := range c.Entries {
		if c.Entries[i].IsTranslated {
			translated++
		}
		if c.Entries[i].IsFuzzy {
			fuzzy++
		}
	}
	return total, translated, fuzzy
}

// Equal reports field equality of two catalogs ignoring path and dirty state.
func (c *Catalog) Equal(other *Catalog) bool {
	if !c.Header.Equal(other.Header) {
		return false
	}
	if len(c.Entries) != len(other.Entries) {
		return false
	}
	for i := range c.Entries {
		if !entriesEqual(&c.Entries[i], &other.Entries[i]) {
			return false
		}
	}
	return true
}

func entriesEqual(a, b *Entry) bool {
	if a.Msgid != b.Msgid || a.Msgstr != b.Msgstr {
		return false
	}
	if a.HasMsgctxt != b.HasMsgctxt || a.Msgctxt != b.Msgctxt {
		return false
	}
	return stringsEqual(a.Comments, b.Comments) &&
		stringsEqual(a.ExtractedComments, b.ExtractedComments) &&
		stringsEqual(a.References, b.References) &&
		stringsEqual(a.Flags, b.Flags)
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (c *Catalog) now() time.Time {
	if c.nowFn != nil {
		return c.nowFn()
	}
	return time.Now()
}
