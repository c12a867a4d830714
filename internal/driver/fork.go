package driver

import "github.com/dshills/parsebuf/internal/engine/textbuf"

// Fork appends units to an earlier snapshot. If the snapshot has already been
// extended, its store's tail belongs to that extension and the result is
// copied into a new store.
func Fork(snapshot textbuf.Buffer, units []uint16) (textbuf.Buffer, Growth) {
	next := textbuf.Append(snapshot, units)
	return next, classify(snapshot, next, units)
}
