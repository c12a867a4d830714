package driver

import "github.com/cockroachdb/errors"

// Sentinel errors for driver operations.
var (
	// ErrSnapshotMismatch indicates a retained snapshot is not a prefix of the
	// final buffer.
	ErrSnapshotMismatch = errors.New("snapshot does not match final buffer")

	// ErrCountMismatch indicates the incremental scan disagrees with a full
	// summary of the final buffer.
	ErrCountMismatch = errors.New("incremental counts do not match summary")
)
