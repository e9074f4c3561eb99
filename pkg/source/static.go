package source

import (
	"context"

	"github.com/drodenkirchen/rio/pkg/layouter"
)

// Static serves a snapshot that is already in memory. It is the source
// used for scene fixtures with embedded client reports and for tests.
type Static struct {
	Snapshot *layouter.Snapshot
}

// NewStatic creates a static source.
func NewStatic(snap *layouter.Snapshot) *Static {
	return &Static{Snapshot: snap}
}

// Fetch returns the wrapped snapshot.
func (s *Static) Fetch(ctx context.Context) (*layouter.Snapshot, error) {
	return s.Snapshot, nil
}
