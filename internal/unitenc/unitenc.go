package unitenc

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultChunkSize is the number of source bytes read per chunk.
const DefaultChunkSize = 64 * 1024

// ErrUnknownEncoding indicates an encoding name that is not recognized.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Lookup returns the encoding registered under name. An empty name selects
// UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
	}
	return enc, nil
}

// Name returns the canonical name of enc, or "unknown".
func Name(enc encoding.Encoding) string {
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "unknown"
	}
	return name
}

// Encode converts s to UTF-16 code units.
func Encode(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Decoder reads a byte stream and yields UTF-16 code units chunk by chunk.
type Decoder struct {
	src     *bufio.Reader
	enc     encoding.Encoding
	r       io.Reader // set on the first call to Next
	buf     []byte
	pending []byte // incomplete UTF-8 sequence carried from the last read
	err     error
	bytes   int64
}

// NewDecoder creates a decoder reading r in the given encoding. A nil enc
// means UTF-8 and a non-positive chunkSize means DefaultChunkSize.
func NewDecoder(r io.Reader, enc encoding.Encoding, chunkSize int) *Decoder {
	if enc == nil {
		enc = unicode.UTF8
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Decoder{
		src: bufio.NewReader(r),
		enc: enc,
		buf: make([]byte, chunkSize),
	}
}

// Encoding returns the encoding in use. Once Next has been called it reflects
// a byte-order mark found at the start of the stream.
func (d *Decoder) Encoding() encoding.Encoding {
	return d.enc
}

// start sniffs a byte-order mark and sets up the transform. A read error
// while peeking is left for the first Read to report.
func (d *Decoder) start() {
	head, _ := d.src.Peek(3)
	if bom := sniffBOM(head); bom != nil {
		d.enc = bom
	}
	d.r = transform.NewReader(d.src, unicode.BOMOverride(d.enc.NewDecoder()))
}

// sniffBOM returns the encoding named by a byte-order mark at the start of
// head, or nil. It recognizes the same marks as unicode.BOMOverride.
func sniffBOM(head []byte) encoding.Encoding {
	switch {
	case bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}):
		return unicode.UTF8
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	default:
		return nil
	}
}

// Next returns the next non-empty chunk of code units. It returns io.EOF once
// the input is exhausted. Each returned slice is freshly allocated and owned
// by the caller.
func (d *Decoder) Next() ([]uint16, error) {
	if d.r == nil {
		d.start()
	}
	for d.err == nil {
		n, err := d.r.Read(d.buf)
		if err != nil {
			if err == io.EOF {
				d.err = io.EOF
			} else {
				d.err = errors.Wrap(err, "unitenc: read")
			}
		}
		d.bytes += int64(n)

		data := d.buf[:n]
		if len(d.pending) > 0 {
			data = append(d.pending, data...)
		}
		units, used := appendUnits(make([]uint16, 0, len(data)), data, d.err != nil)
		d.pending = append(d.pending[:0], data[used:]...)

		if len(units) > 0 {
			return units, nil
		}
	}
	return nil, d.err
}

// BytesDecoded returns the number of UTF-8 bytes produced by the transform so
// far.
func (d *Decoder) BytesDecoded() int64 {
	return d.bytes
}

// appendUnits encodes complete UTF-8 sequences from p onto dst and reports how
// many bytes were consumed. At EOF a truncated trailing sequence decodes to
// U+FFFD instead of being held back.
func appendUnits(dst []uint16, p []byte, atEOF bool) ([]uint16, int) {
	i := 0
	for i < len(p) {
		if !atEOF && !utf8.FullRune(p[i:]) {
			break
		}
		r, size := utf8.DecodeRune(p[i:])
		dst = utf16.AppendRune(dst, r)
		i += size
	}
	return dst, i
}
