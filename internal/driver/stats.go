package driver

import "github.com/dshills/parsebuf/internal/engine/textbuf"

// Stats describes one pass over an input.
type Stats struct {
	// Encoding is the canonical name of the encoding used to decode the
	// source, after any byte-order mark. Empty for Feed.
	Encoding string
	// Chunks is the number of non-empty chunks appended.
	Chunks int
	// Bytes is the number of UTF-8 bytes produced by decoding the source.
	Bytes int64
	// Units is the final length in UTF-16 code units.
	Units int
	// Scalars is the number of characters scanned. A high surrogate that is
	// not followed by a low surrogate counts as one character of width 1.
	Scalars int
	// SurrogatePairs is the number of characters outside the BMP.
	SurrogatePairs int
	// Lines is the number of newline characters.
	Lines int
	// LongestLine is the longest line in code units.
	LongestLine int
	// Graphemes is the number of grapheme clusters, when counting is enabled.
	Graphemes int
	// InPlace counts appends that extended the previous buffer's store.
	InPlace int
	// Reallocs counts appends that copied into a new store.
	Reallocs int
	// SnapshotsRetained is the size of the snapshot window at the end.
	SnapshotsRetained int
	// SnapshotsVerified counts snapshots checked against the final buffer.
	SnapshotsVerified int
}

// Growth classifies what an append did to its parent's storage.
type Growth int

const (
	// GrowthNone means the chunk was empty and the parent was returned.
	GrowthNone Growth = iota
	// GrowthWrapped means the parent was empty and the chunk became the store.
	GrowthWrapped
	// GrowthInPlace means the chunk was written into the parent's reserved tail.
	GrowthInPlace
	// GrowthRealloc means parent and chunk were copied into a new store.
	GrowthRealloc
)

// String returns the growth kind as a lowercase word.
func (g Growth) String() string {
	switch g {
	case GrowthNone:
		return "none"
	case GrowthWrapped:
		return "wrapped"
	case GrowthInPlace:
		return "in-place"
	case GrowthRealloc:
		return "realloc"
	default:
		return "unknown"
	}
}

func classify(parent, next textbuf.Buffer, chunk []uint16) Growth {
	switch {
	case len(chunk) == 0:
		return GrowthNone
	case parent.IsEmpty():
		return GrowthWrapped
	case next.SharesStore(parent):
		return GrowthInPlace
	default:
		return GrowthRealloc
	}
}

func (s *Stats) record(g Growth) {
	switch g {
	case GrowthInPlace:
		s.InPlace++
	case GrowthRealloc:
		s.Reallocs++
	}
}
