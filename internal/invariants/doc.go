// Package invariants exposes a compile-time switch for expensive or hot-path
// assertions.
//
// Build with -tags invariants (or -race) to enable them:
//
//	go test -tags invariants ./...
package invariants
