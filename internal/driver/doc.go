// Package driver feeds a byte stream into a textbuf.Buffer one chunk at a
// time, the way an incremental parser consumes its input.
//
// Each chunk is appended to the newest buffer, so a single-writer lineage
// extends in place. Earlier buffers are kept in a bounded window of snapshots
// and remain valid after later appends; Verify checks that property against
// the final text. Characters are scanned as they arrive with DecodeWidthAt and
// DecodeAt, and a high surrogate at the end of a chunk is held back until its
// partner is available.
//
// Fork appends to an earlier snapshot, which is what a parser does after
// backtracking. The snapshot's existing extensions are never disturbed.
package driver
