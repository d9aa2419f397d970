package catalog

// Header is the catalog metadata mapping. It preserves insertion order so
// serialization is deterministic and round trips keep header layout intact.
type Header struct {
	keys   []string
	values map[string]string
}

func NewHeader() *Header {
	return &Header{values: make(map[string]string)}
}

// DefaultHeader returns the placeholder header seeded into new catalogs,
// following the gettext convention.
func DefaultHeader() *Header {
	h := NewHeader()
	h.Set("Project-Id-Version", "PACKAGE VERSION")
	h.Set("Report-Msgid-Bugs-To", "")
	h.Set("POT-Creation-Date", "YEAR-MO-DA HO:MI+ZONE")
	h.Set("PO-Revision-Date", "YEAR-MO-DA HO:MI+ZONE")
	h.Set("Last-Translator", "FULL NAME <EMAIL@ADDRESS>")
	h.Set("Language-Team", "LANGUAGE <LL@li.org>")
	h.Set("Language", "")
	h.Set("MIME-Version", "1.0")
	h.Set("Content-Type", "text/plain; charset=UTF-8")
	h.Set("Content-Transfer-Encoding", "8bit")
	h.Set("Plural-Forms", "nplurals=INTEGER; plural=EXPRESSION;")
	return h
}

// Set updates key in place when it exists, otherwise appends it.
func (h *Header) Set(key, value string) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

func (h *Header) Get(key string) (string, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Value returns the value for key, or the empty string when absent.
func (h *Header) Value(key string) string {
	return h.values[key]
}

func (h *Header) Len() int {
	return len(h.keys)
}

// Keys returns the header keys in insertion order.
func (h *Header) Keys() []string {
	return append([]string(nil), h.keys...)
}

// Equal reports whether both headers hold the same keys in the same order
// with the same values.
func (h *Header) Equal(other *Header) bool {
	if h.Len() != other.Len() {
		return false
	}
	for i, key := range h.keys {
		if other.keys[i] != key {
			return false
		}
		if other.values[key] != h.values[key] {
			return false
		}
	}
	return true
}
