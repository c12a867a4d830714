package textbuf

import "sync/atomic"

// store is the generation cell attached to a backing array allocated by the
// grow path. The units themselves live in Buffer.units; the cell only
// arbitrates who may write into the unused tail.
type store struct {
	gen atomic.Uint64
}

// newStore returns a cell whose token starts at the first generation.
func newStore() *store {
	s := &store{}
	s.gen.Store(firstGeneration)
	return s
}

// claim moves the token from gen to gen+1. It succeeds for exactly one caller
// holding gen; every later claimant observes a newer token and fails.
func (s *store) claim(gen uint64) bool {
	return s.gen.CompareAndSwap(gen, gen+1)
}

