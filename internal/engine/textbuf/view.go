package textbuf

import (
	"unicode/utf16"

	"github.com/cockroachdb/errors"

	"github.com/dshills/parsebuf/internal/invariants"
)

// Surrogate ranges of UTF-16.
const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF
)

// Substring returns the n code units starting at start without copying.
// It panics with an assertion failure unless 0 <= start <= Len() and
// 0 <= n <= Len()-start.
func (b Buffer) Substring(start, n int) []uint16 {
	if start < 0 || start > b.n || n < 0 || n > b.n-start {
		panic(errors.AssertionFailedf(
			"textbuf: substring [%d, %d+%d) out of range [0, %d)", start, start, n, b.n))
	}
	lo := b.off + start
	hi := lo + n
	return b.units[lo:hi:hi]
}

// DropPrefix returns the contents after the first n code units without
// copying. It panics with an assertion failure unless 0 <= n <= Len().
func (b Buffer) DropPrefix(n int) []uint16 {
	if n < 0 || n > b.n {
		panic(errors.AssertionFailedf(
			"textbuf: drop prefix %d out of range [0, %d]", n, b.n))
	}
	lo := b.off + n
	hi := b.off + b.n
	return b.units[lo:hi:hi]
}

// DecodeAt decodes the character starting at code unit i and returns it with
// the number of code units it occupies. A high surrogate is combined with the
// unit that follows it; a malformed pair decodes to U+FFFD but still reports
// width 2.
//
// The caller guarantees that i and i+width-1 are within [0, Len()). Bounds are
// only asserted in builds with the invariants tag.
func (b Buffer) DecodeAt(i int) (rune, int) {
	if invariants.Enabled {
		b.assertIndex(i)
	}
	u := b.units[b.off+i]
	if !isHighSurrogate(u) {
		return rune(u), 1
	}
	if invariants.Enabled {
		b.assertIndex(i + 1)
	}
	return utf16.DecodeRune(rune(u), rune(b.units[b.off+i+1])), 2
}

// DecodeWidthAt returns the width in code units of the character starting at
// i without decoding it. The same bounds contract as DecodeAt applies.
func (b Buffer) DecodeWidthAt(i int) int {
	if invariants.Enabled {
		b.assertIndex(i)
	}
	if isHighSurrogate(b.units[b.off+i]) {
		return 2
	}
	return 1
}

func (b Buffer) assertIndex(i int) {
	if i < 0 || i >= b.n {
		panic(errors.AssertionFailedf("textbuf: index %d out of range [0, %d)", i, b.n))
	}
}

func isHighSurrogate(u uint16) bool {
	return u >= highSurrogateMin && u <= highSurrogateMax
}

func isLowSurrogate(u uint16) bool {
	return u >= lowSurrogateMin && u <= lowSurrogateMax
}
