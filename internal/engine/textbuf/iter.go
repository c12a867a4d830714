package textbuf

// CharIterator walks the characters of a buffer in order, combining surrogate
// pairs. A high surrogate in the last position is reported on its own with
// width 1.
type CharIterator struct {
	buf   Buffer
	index int
	r     rune
	width int
}

// Chars returns an iterator over all characters in the buffer.
func (b Buffer) Chars() *CharIterator {
	return &CharIterator{buf: b}
}

// Next advances to the next character.
// Returns true if there is a character, false if iteration is complete.
func (it *CharIterator) Next() bool {
	it.index += it.width
	if it.index >= it.buf.n {
		it.width = 0
		return false
	}
	if it.buf.DecodeWidthAt(it.index) == 2 && it.index+1 >= it.buf.n {
		// Dangling high surrogate; its partner has not arrived.
		it.r, it.width = rune(it.buf.units[it.buf.off+it.index]), 1
		return true
	}
	it.r, it.width = it.buf.DecodeAt(it.index)
	return true
}

// Rune returns the current character.
func (it *CharIterator) Rune() rune {
	return it.r
}

// Width returns the code unit width of the current character.
func (it *CharIterator) Width() int {
	return it.width
}

// Index returns the code unit index of the current character.
func (it *CharIterator) Index() int {
	return it.index
}
