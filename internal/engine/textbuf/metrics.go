package textbuf

// Summary holds aggregated metrics for a run of code units.
// Summaries form a monoid under Add for any split of the units, including one
// that separates the halves of a surrogate pair, so a driver can summarize
// each newly arrived chunk and fold the results.
//
// A high surrogate that is not followed by a low surrogate counts as a
// character of width 1, as does a lone low surrogate.
type Summary struct {
	// Units is the UTF-16 code unit count.
	Units int

	// Scalars is the number of decoded characters. A surrogate pair counts once.
	Scalars int

	// SurrogatePairs is the number of two-unit characters.
	SurrogatePairs int

	// Lines is the number of newline characters.
	Lines int

	// LongestLine is the code unit length of the longest line.
	LongestLine int

	// FirstLineLen is the code unit length of the first line (excluding newline).
	FirstLineLen int

	// LastLineLen is the code unit length of the last line (excluding newline).
	LastLineLen int

	// Flags indicate text properties for fast paths.
	Flags TextFlags
}

// TextFlags indicate text properties for optimization fast paths.
type TextFlags uint8

const (
	// FlagASCII indicates all characters are ASCII (< 128).
	FlagASCII TextFlags = 1 << iota

	// FlagBMP indicates no character needs a surrogate pair.
	FlagBMP

	// FlagHasNewlines indicates the text contains newline characters.
	FlagHasNewlines

	// FlagLeadingLow indicates the run starts with a low surrogate, which Add
	// pairs with a trailing high surrogate on its left.
	FlagLeadingLow

	// FlagTrailingHigh indicates the run ends with an unpaired high surrogate.
	FlagTrailingHigh
)

// Add combines two summaries (monoid operation).
func (s Summary) Add(other Summary) Summary {
	if s.Units == 0 {
		return other
	}
	if other.Units == 0 {
		return s
	}

	result := Summary{
		Units:          s.Units + other.Units,
		Scalars:        s.Scalars + other.Scalars,
		SurrogatePairs: s.SurrogatePairs + other.SurrogatePairs,
		Lines:          s.Lines + other.Lines,
		Flags:          s.Flags & other.Flags & (FlagASCII | FlagBMP),
	}

	if other.Lines > 0 {
		result.LongestLine = max(s.LongestLine, other.LongestLine, s.LastLineLen+other.FirstLineLen)
		result.FirstLineLen = s.FirstLineLen
		if s.Lines == 0 {
			result.FirstLineLen = s.LastLineLen + other.FirstLineLen
		}
		result.LastLineLen = other.LastLineLen
	} else {
		combined := s.LastLineLen + other.LastLineLen
		result.LongestLine = max(s.LongestLine, combined)
		if s.Lines == 0 {
			result.FirstLineLen = combined
		} else {
			result.FirstLineLen = s.FirstLineLen
		}
		result.LastLineLen = combined
	}

	if (s.Flags|other.Flags)&FlagHasNewlines != 0 {
		result.Flags |= FlagHasNewlines
	}
	result.Flags |= s.Flags&FlagLeadingLow | other.Flags&FlagTrailingHigh

	// Rejoin a surrogate pair split at the boundary. Both halves were counted
	// with width 1, so the line lengths already agree.
	if s.Flags&FlagTrailingHigh != 0 && other.Flags&FlagLeadingLow != 0 {
		result.Scalars--
		result.SurrogatePairs++
		result.Flags &^= FlagASCII | FlagBMP
	}

	return result
}

// IsZero returns true if this is the zero/identity summary.
func (s Summary) IsZero() bool {
	return s.Units == 0
}

// Summarize computes metrics for the whole buffer.
func Summarize(b Buffer) Summary {
	return SummarizeUnits(b.Units())
}

// SummarizeUnits computes metrics for a run of code units.
func SummarizeUnits(units []uint16) Summary {
	if len(units) == 0 {
		return Summary{Flags: FlagASCII | FlagBMP}
	}

	sum := Summary{
		Units: len(units),
		Flags: FlagASCII | FlagBMP,
	}

	var lineLen int
	for i := 0; i < len(units); {
		u := units[i]
		w := 1
		if isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]) {
			w = 2
			sum.SurrogatePairs++
			sum.Flags &^= FlagASCII | FlagBMP
		} else if u > 127 {
			sum.Flags &^= FlagASCII
		}
		sum.Scalars++

		if u == '\n' {
			sum.Lines++
			sum.LongestLine = max(sum.LongestLine, lineLen)
			if sum.Lines == 1 {
				sum.FirstLineLen = lineLen
			}
			lineLen = 0
			sum.Flags |= FlagHasNewlines
		} else {
			lineLen += w
		}
		i += w
	}

	if isLowSurrogate(units[0]) {
		sum.Flags |= FlagLeadingLow
	}
	if isHighSurrogate(units[len(units)-1]) {
		sum.Flags |= FlagTrailingHigh
	}

	sum.LastLineLen = lineLen
	if sum.Lines == 0 {
		sum.FirstLineLen = lineLen
	}
	sum.LongestLine = max(sum.LongestLine, lineLen)

	return sum
}
