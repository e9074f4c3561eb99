package source

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/drodenkirchen/rio/pkg/errors"
	"github.com/drodenkirchen/rio/pkg/layouter"
	"github.com/drodenkirchen/rio/pkg/observability"
	"github.com/drodenkirchen/rio/pkg/snapshot"
)

// Recorded wraps another source and records what it fetches. When replay
// is enabled and an entry exists under the key, the upstream is not
// contacted at all.
type Recorded struct {
	upstream layouter.Source
	store    snapshot.Store
	key      string
	replay   bool
}

// NewRecorded creates a recording source. With replay true, a stored
// snapshot under key short-circuits the upstream fetch.
func NewRecorded(upstream layouter.Source, store snapshot.Store, key string, replay bool) *Recorded {
	return &Recorded{upstream: upstream, store: store, key: key, replay: replay}
}

// Fetch serves from the store when replaying, otherwise fetches upstream
// and records the result. Recording failures are logged, not fatal: a
// broken snapshot dir should not abort a live validation run.
func (r *Recorded) Fetch(ctx context.Context) (*layouter.Snapshot, error) {
	logger := log.FromContext(ctx)

	if r.replay {
		entry, err := r.store.Load(ctx, r.key)
		if err == nil {
			observability.Store().OnStoreHit(ctx, r.key)
			logger.Debug("replaying recorded snapshot", "key", r.key, "saved_at", entry.SavedAt)
			return entry.Snapshot, nil
		}
		if !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
			return nil, err
		}
		observability.Store().OnStoreMiss(ctx, r.key)
		logger.Debug("no recorded snapshot, fetching live", "key", r.key)
	}

	snap, err := r.upstream.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.store.Save(ctx, r.key, snap); err != nil {
		logger.Warn("could not record snapshot", "key", r.key, "err", err)
	} else {
		observability.Store().OnStoreSave(ctx, r.key, len(snap.Records))
	}
	return snap, nil
}
