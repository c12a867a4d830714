package textbuf

import (
	"unicode/utf16"
)

// firstGeneration is the token of a freshly allocated store. Roots built from
// external text carry generation 0 and have no store cell.
const firstGeneration = 1

// Buffer is an immutable view over a shared array of UTF-16 code units.
// The zero value is the empty buffer and the identity element for Merge.
type Buffer struct {
	units    []uint16 // backing array, shared by the lineage
	cell     *store   // generation cell; nil for roots over external text
	off      int      // start of the window in units
	n        int      // readable code units from off
	capacity int      // code units reserved from off for growth
	gen      uint64   // token observed when this value was produced
}

// FromUnits wraps t without copying. The result has no slack, so the first
// append that adds content always reallocates. The caller must not modify t
// afterwards.
func FromUnits(t []uint16) Buffer {
	if len(t) == 0 {
		return Buffer{}
	}
	return Buffer{
		units:    t,
		n:        len(t),
		capacity: len(t),
	}
}

// FromString encodes s as UTF-16 and wraps the result.
func FromString(s string) Buffer {
	if s == "" {
		return Buffer{}
	}
	return FromUnits(utf16.Encode([]rune(s)))
}

// Units returns the buffer contents without copying. The returned slice has
// its capacity clipped to the window so that appending to it cannot reach
// storage reserved for later growth. It must be treated as read-only.
func (b Buffer) Units() []uint16 {
	if b.n == 0 {
		return nil
	}
	end := b.off + b.n
	return b.units[b.off:end:end]
}

// String decodes the buffer contents into a Go string. Unpaired surrogates
// become U+FFFD.
func (b Buffer) String() string {
	return string(utf16.Decode(b.Units()))
}

// Len returns the number of code units in the buffer.
func (b Buffer) Len() int {
	return b.n
}

// IsEmpty returns true if the buffer holds no code units.
func (b Buffer) IsEmpty() bool {
	return b.n == 0
}

// Cap returns the number of code units reserved for this buffer's lineage.
func (b Buffer) Cap() int {
	return b.capacity
}

// Generation returns the generation token recorded when b was produced.
func (b Buffer) Generation() uint64 {
	return b.gen
}

// SharesStore reports whether b and other view the same backing array.
func (b Buffer) SharesStore(other Buffer) bool {
	if b.cell != nil || other.cell != nil {
		return b.cell == other.cell
	}
	if len(b.units) == 0 || len(other.units) == 0 {
		return false
	}
	return &b.units[0] == &other.units[0]
}
