// Package textbuf provides an append-optimized, copy-on-write buffer of UTF-16
// code units for incremental parsing.
//
// A Buffer is an immutable handle (offset, length, capacity, generation) over a
// backing store that may be shared by many Buffer values. Appending returns a
// new Buffer; the original stays readable and its window is never overwritten.
//
// Key features:
//   - Amortized O(1) append per code unit along a single lineage of growth
//   - Zero-copy views (Units, Substring, DropPrefix) that survive later appends
//   - Surrogate-pair aware decoding via DecodeAt and DecodeWidthAt
//   - Thread-safe for concurrent read access
//
// In-place growth is arbitrated by a generation token shared by every Buffer
// over the same store. Only the Buffer produced by the most recent in-place
// extension may extend the store again; any other holder copies instead.
//
// Basic usage:
//
//	b := textbuf.FromString("ab")
//	b = textbuf.AppendString(b, "cd") // "abcd"
//	b.Substring(1, 2)                 // "bc" as code units
//	r, w := b.DecodeAt(0)             // 'a', 1
//
// Exactly one goroutine should append to buffers descended from a given store.
// Any number of goroutines may read Buffer values they already hold.
package textbuf
