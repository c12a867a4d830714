package driver

import (
	"context"
	"io"
	"slices"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/rivo/uniseg"
	"golang.org/x/text/encoding"

	"github.com/dshills/parsebuf/internal/config"
	"github.com/dshills/parsebuf/internal/engine/textbuf"
	"github.com/dshills/parsebuf/internal/logging"
	"github.com/dshills/parsebuf/internal/unitenc"
)

// Source yields chunks of UTF-16 code units. Next returns io.EOF once the
// input is exhausted. Returned slices are owned by the caller.
// *unitenc.Decoder implements Source.
type Source interface {
	Next() ([]uint16, error)
}

// Feeder appends input chunk by chunk and scans each new character.
// A Feeder holds no per-run state and may be used from several goroutines.
type Feeder struct {
	cfg    config.Config
	enc    encoding.Encoding
	logger *logging.Logger
}

// New creates a feeder from cfg. A nil logger discards output.
func New(cfg config.Config, logger *logging.Logger) (*Feeder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "driver: invalid configuration")
	}
	enc, err := unitenc.Lookup(cfg.Input.Encoding)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Feeder{
		cfg:    cfg,
		enc:    enc,
		logger: logger.WithComponent("driver"),
	}, nil
}

// Run decodes r in the configured encoding and feeds it through the buffer.
func (f *Feeder) Run(ctx context.Context, r io.Reader) (Stats, error) {
	dec := unitenc.NewDecoder(r, f.enc, f.cfg.Input.ChunkSize)
	_, stats, err := f.Feed(ctx, dec)
	stats.Bytes = dec.BytesDecoded()
	stats.Encoding = unitenc.Name(dec.Encoding())
	if err != nil {
		return stats, err
	}

	f.logger.Info("scan complete",
		"encoding", stats.Encoding,
		"chunks", stats.Chunks,
		"units", stats.Units,
		"in_place", stats.InPlace,
		"reallocs", stats.Reallocs)
	return stats, nil
}

// Feed appends every chunk from src and returns the final buffer. Cancellation
// of ctx is checked between chunks; on error the stats cover the chunks
// consumed so far.
func (f *Feeder) Feed(ctx context.Context, src Source) (textbuf.Buffer, Stats, error) {
	var (
		cur   textbuf.Buffer
		stats Stats
		sc    scanner
		snaps []textbuf.Buffer
	)
	maxSnaps := f.cfg.Driver.MaxSnapshots

	for {
		if err := ctx.Err(); err != nil {
			return cur, stats, errors.Wrapf(err, "driver: after %d chunks", stats.Chunks)
		}

		chunk, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return cur, stats, errors.Wrapf(err, "driver: chunk %d", stats.Chunks)
		}
		if len(chunk) == 0 {
			continue
		}

		next := textbuf.Append(cur, chunk)
		growth := classify(cur, next, chunk)
		stats.record(growth)
		stats.Chunks++

		if f.logger.Enabled(logging.LevelDebug) {
			f.logger.Debug("chunk appended",
				"chunk", stats.Chunks,
				"units", len(chunk),
				"len", next.Len(),
				"cap", next.Cap(),
				"gen", next.Generation(),
				"growth", growth)
		}

		if maxSnaps > 0 {
			if len(snaps) == maxSnaps {
				snaps = slices.Delete(snaps, 0, 1)
			}
			snaps = append(snaps, next)
		}

		sc.scan(next, &stats, false)
		cur = next
	}

	sc.scan(cur, &stats, true)
	stats.Units = cur.Len()
	stats.SnapshotsRetained = len(snaps)

	sum := textbuf.Summarize(cur)
	stats.LongestLine = sum.LongestLine

	if f.cfg.Driver.Graphemes {
		stats.Graphemes = uniseg.GraphemeClusterCount(cur.String())
	}

	if f.cfg.Driver.Verify {
		if err := checkCounts(sum, stats); err != nil {
			return cur, stats, err
		}
		verified, err := verifySnapshots(ctx, cur, snaps, f.cfg.Driver.VerifyWorkers)
		stats.SnapshotsVerified = verified
		if err != nil {
			return cur, stats, err
		}
		f.logger.Debug("snapshots verified", "count", verified)
	}

	return cur, stats, nil
}

// scanner tracks the next unscanned code unit across a lineage.
type scanner struct {
	pos int
}

// scan consumes the characters of b from the current position. Unless final
// is set, a high surrogate in the last position is left for the next chunk.
// A high surrogate without a low partner is one character of width 1, so the
// unit after it is still scanned.
func (s *scanner) scan(b textbuf.Buffer, stats *Stats, final bool) {
	n := b.Len()
	for s.pos < n {
		if b.DecodeWidthAt(s.pos) == 2 && s.pos+1 >= n {
			if !final {
				return
			}
			stats.Scalars++
			s.pos++
			continue
		}

		r, w := b.DecodeAt(s.pos)
		if w == 2 && r == unicode.ReplacementChar {
			// Malformed pair: only the high surrogate is consumed.
			w = 1
		}
		stats.Scalars++
		if w == 2 {
			stats.SurrogatePairs++
		}
		if r == '\n' {
			stats.Lines++
		}
		s.pos += w
	}
}

func checkCounts(sum textbuf.Summary, stats Stats) error {
	if sum.Units != stats.Units ||
		sum.Scalars != stats.Scalars ||
		sum.SurrogatePairs != stats.SurrogatePairs ||
		sum.Lines != stats.Lines {
		return errors.Wrapf(ErrCountMismatch,
			"scanned %d/%d/%d, summary %d/%d/%d (scalars/pairs/lines)",
			stats.Scalars, stats.SurrogatePairs, stats.Lines,
			sum.Scalars, sum.SurrogatePairs, sum.Lines)
	}
	return nil
}
