package session

import "unicode/utf8"

// EditBuffer holds in-flight text for a field edit, a metadata value or
// the search query. The cursor is tracked in codepoints; byte offsets
// are derived only at the moment of mutation so the cursor can never
// land inside a multi-byte character.
type EditBuffer struct {
	text   string
	cursor int
}

// NewEditBuffer snapshots text with the cursor at the end.
func NewEditBuffer(text string) EditBuffer {
	return EditBuffer{text: text, cursor: utf8.RuneCountInString(text)}
}

func (b EditBuffer) String() string { return b.text }

// Cursor is the position in codepoints, in [0, Len()].
func (b EditBuffer) Cursor() int { return b.cursor }

// Len is the buffer length in codepoints.
func (b EditBuffer) Len() int { return utf8.RuneCountInString(b.text) }

func (b *EditBuffer) byteOffset(pos int) int {
	off := 0
	for i := 0; i < pos; i++ {
		_, size := utf8.DecodeRuneInString(b.text[off:])
		off += size
	}
	return off
}

func (b *EditBuffer) InsertRune(r rune) {
	off := b.byteOffset(b.cursor)
	b.text = b.text[:off] + string(r) + b.text[off:]
	b.cursor++
}

func (b *EditBuffer) InsertString(s string) {
	if s == "" {
		return
	}
	off := b.byteOffset(b.cursor)
	b.text = b.text[:off] + s + b.text[off:]
	b.cursor += utf8.RuneCountInString(s)
}

func (b *EditBuffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	start := b.byteOffset(b.cursor - 1)
	_, size := utf8.DecodeRuneInString(b.text[start:])
	b.text = b.text[:start] + b.text[start+size:]
	b.cursor--
}

func (b *EditBuffer) DeleteForward() {
	off := b.byteOffset(b.cursor)
	if off >= len(b.text) {
		return
	}
	_, size := utf8.DecodeRuneInString(b.text[off:])
	b.text = b.text[:off] + b.text[off+size:]
}

func (b *EditBuffer) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *EditBuffer) Right() {
	if b.cursor < b.Len() {
		b.cursor++
	}
}

func (b *EditBuffer) Home() { b.cursor = 0 }

func (b *EditBuffer) End() { b.cursor = b.Len() }
