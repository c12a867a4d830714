package textbuf

import "slices"

// Merge returns a followed by b. Empty operands pass the other through
// unchanged, so the zero Buffer is the identity.
func Merge(a, b Buffer) Buffer {
	if a.capacity == 0 {
		return b
	}
	if b.capacity == 0 {
		return a
	}
	return Append(a, b.Units())
}

// MergeAll folds bufs left to right with Merge. It returns the empty buffer
// when bufs is empty.
func MergeAll(bufs ...Buffer) Buffer {
	var result Buffer
	for _, b := range bufs {
		result = Merge(result, b)
	}
	return result
}

// Equal reports whether a and b hold the same code units, regardless of how
// they are stored.
func Equal(a, b Buffer) bool {
	return slices.Equal(a.Units(), b.Units())
}
