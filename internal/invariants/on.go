//go:build invariants || race

package invariants

// Enabled is true when built with the invariants or race build tags. It turns
// on bounds assertions in hot paths that are otherwise left to the caller.
const Enabled = true
