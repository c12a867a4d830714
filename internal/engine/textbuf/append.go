package textbuf

import "unicode/utf16"

// growthFactor is the ratio of allocated capacity to content length when the
// grow path reallocates.
const growthFactor = 2

// Append returns a buffer holding b's contents followed by c. b remains valid
// and unchanged.
//
// When b is the newest extension of its store and the reserved tail has room,
// c is copied into the tail and the store is shared. Otherwise a new store of
// twice the combined length is allocated. c is always copied except when b is
// empty, in which case c is wrapped as with FromUnits.
func Append(b Buffer, c []uint16) Buffer {
	if len(c) == 0 {
		return b
	}
	if b.n == 0 {
		return FromUnits(c)
	}

	newLen := b.n + len(c)
	if b.cell != nil && newLen <= b.capacity && b.cell.claim(b.gen) {
		copy(b.units[b.off+b.n:b.off+newLen], c)
		return Buffer{
			units:    b.units,
			cell:     b.cell,
			off:      b.off,
			n:        newLen,
			capacity: b.capacity,
			gen:      b.gen + 1,
		}
	}

	return realloc(b, c, newLen)
}

// AppendString encodes s as UTF-16 and appends it to b.
func AppendString(b Buffer, s string) Buffer {
	if s == "" {
		return b
	}
	return Append(b, utf16.Encode([]rune(s)))
}

// realloc copies b's window and c into a fresh store with room to grow.
func realloc(b Buffer, c []uint16, newLen int) Buffer {
	capacity := growthFactor * newLen
	units := make([]uint16, capacity)
	copy(units, b.units[b.off:b.off+b.n])
	copy(units[b.n:], c)
	return Buffer{
		units:    units,
		cell:     newStore(),
		n:        newLen,
		capacity: capacity,
		gen:      firstGeneration,
	}
}
