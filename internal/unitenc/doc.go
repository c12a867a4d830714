// Package unitenc turns byte streams in any WHATWG-named encoding into chunks
// of UTF-16 code units suitable for textbuf.
//
// A byte-order mark at the start of the stream overrides the configured
// encoding. Characters split across reads are carried to the next chunk, so
// every chunk ends on a character boundary.
package unitenc
