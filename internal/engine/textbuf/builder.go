package textbuf

import (
	"slices"
	"unicode/utf16"
)

// Builder accumulates text along a single lineage of appends. Each write
// extends the newest buffer, so after the first reallocation most writes
// land in place.
type Builder struct {
	buf Buffer
}

// NewBuilder creates a builder seeded with b.
func NewBuilder(b Buffer) *Builder {
	return &Builder{buf: b}
}

// WriteUnits appends code units. units may be reused by the caller after the
// call returns.
func (b *Builder) WriteUnits(units []uint16) {
	if b.buf.IsEmpty() {
		units = slices.Clone(units)
	}
	b.buf = Append(b.buf, units)
}

// WriteString appends s encoded as UTF-16.
func (b *Builder) WriteString(s string) {
	b.buf = AppendString(b.buf, s)
}

// WriteRune appends a single character.
func (b *Builder) WriteRune(r rune) {
	b.buf = Append(b.buf, utf16.AppendRune(nil, r))
}

// Len returns the number of code units written.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Buffer returns the accumulated buffer. The builder may keep writing; earlier
// results are unaffected.
func (b *Builder) Buffer() Buffer {
	return b.buf
}

// Reset discards the accumulated buffer.
func (b *Builder) Reset() {
	b.buf = Buffer{}
}
