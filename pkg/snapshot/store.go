// Package snapshot persists client layout snapshots so that expensive
// round-trips to a live rendering client can be replayed offline.
//
// Entries are stored under caller-chosen keys (typically a scene name or
// client URL); the file backend hashes keys into safe filenames. The
// store deliberately mirrors a cache interface so alternative backends
// can be added without touching callers.
package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/drodenkirchen/rio/pkg/errors"
	"github.com/drodenkirchen/rio/pkg/layouter"
)

// Entry is a stored snapshot with its bookkeeping metadata.
type Entry struct {
	Key      string             `json:"key"`
	SavedAt  time.Time          `json:"saved_at"`
	RunID    string             `json:"run_id,omitempty"`
	Snapshot *layouter.Snapshot `json:"snapshot"`
}

// Store persists and retrieves snapshots by key.
type Store interface {
	// Save stores snap under key, overwriting any previous entry.
	Save(ctx context.Context, key string, snap *layouter.Snapshot) error

	// Load retrieves the entry stored under key, or an error carrying
	// [errors.ErrCodeSnapshotNotFound] when there is none.
	Load(ctx context.Context, key string) (*Entry, error)

	// List returns all stored entries, most recent first.
	List(ctx context.Context) ([]*Entry, error)

	// Delete removes the entry under key; deleting a missing entry is not
	// an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// NotFound builds the canonical missing-entry error for a key.
func NotFound(key string) error {
	return errors.New(errors.ErrCodeSnapshotNotFound, "no snapshot recorded for %q", key)
}

// hashKey turns an arbitrary key into a filesystem-safe name.
func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Null is a no-op store: Save discards, Load always misses. Useful when
// recording is disabled.
type Null struct{}

// NewNull creates a null store.
func NewNull() Store { return Null{} }

func (Null) Save(ctx context.Context, key string, snap *layouter.Snapshot) error { return nil }

func (Null) Load(ctx context.Context, key string) (*Entry, error) { return nil, NotFound(key) }

func (Null) List(ctx context.Context) ([]*Entry, error) { return nil, nil }

func (Null) Delete(ctx context.Context, key string) error { return nil }

func (Null) Close() error { return nil }
