package catalog

import (
	"fmt"
	"os"
	"strings"
)

// FromTemplate instantiates a translation catalog at targetPath from POT
// text: every entry's translation and fuzzy flag are cleared, the revision
// date is stamped, and the creation date is stamped only when still unfilled.
// The result is marked modified since it has never been written.
func FromTemplate(potText, targetPath string) (*Catalog, []Diagnostic) {
	c, diags := Parse(potText)
	c.Path = targetPath

	now := c.now().Format(timestampLayout)
	c.Header.Set("PO-Revision-Date", now)
	if v, ok := c.Header.Get("POT-Creation-Date"); !ok || strings.Contains(v, creationPlaceholder) {
		c.Header.Set("POT-Creation-Date", now)
	}

	for i := range c.Entries {
		e := &c.Entries[i]
		if e.Msgid == "" {
			continue
		}
		e.Msgstr = ""
		e.removeFlag(FuzzyFlag)
		e.UpdateStatus()
	}

	c.Modified = true
	return c, diags
}

// LoadTemplate reads a POT file and instantiates it as a catalog at targetPath.
func LoadTemplate(potPath, targetPath string) (*Catalog, []Diagnostic, error) {
	content, err := os.ReadFile(potPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read template %s: %w", potPath, err)
	}
	c, diags := FromTemplate(string(content), targetPath)
	return c, diags, nil
}
