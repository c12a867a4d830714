package driver

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/parsebuf/internal/engine/textbuf"
)

// verifySnapshots checks that every snapshot is a prefix of final, running at
// most workers checks at once. It returns the number of snapshots that
// passed.
func verifySnapshots(ctx context.Context, final textbuf.Buffer, snaps []textbuf.Buffer, workers int) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	var passed atomic.Int64
	for i, snap := range snaps {
		i, snap := i, snap
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if snap.Len() > final.Len() {
				return errors.Wrapf(ErrSnapshotMismatch,
					"snapshot %d has %d units, final has %d", i, snap.Len(), final.Len())
			}
			if !slices.Equal(snap.Units(), final.Substring(0, snap.Len())) {
				return errors.Wrapf(ErrSnapshotMismatch, "snapshot %d (len %d)", i, snap.Len())
			}
			passed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	return int(passed.Load()), err
}
