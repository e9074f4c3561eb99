package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/drodenkirchen/rio/pkg/layouter"
)

// FileStore keeps one JSON file per entry in a directory. Multiple
// processes can safely share a directory: writes go through a temp file
// and an atomic rename, so readers never see a torn entry.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store in dir, creating the directory
// if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// DefaultDir returns the conventional snapshot directory for app,
// honoring XDG_CACHE_HOME and falling back to ~/.cache.
func DefaultDir(app string) (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, app, "snapshots"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", app, "snapshots"), nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, hashKey(key)+".json")
}

// Save stores snap under key, overwriting any previous entry.
func (s *FileStore) Save(ctx context.Context, key string, snap *layouter.Snapshot) error {
	entry := Entry{
		Key:      key,
		SavedAt:  time.Now().UTC(),
		Snapshot: snap,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot entry: %w", err)
	}

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load retrieves the entry stored under key.
func (s *FileStore) Load(ctx context.Context, key string) (*Entry, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, NotFound(key)
	}
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		// A corrupt entry is treated as missing; the next Save heals it.
		_ = os.Remove(s.path(key))
		return nil, NotFound(key)
	}
	return &entry, nil
}

// List returns all stored entries, most recent first.
func (s *FileStore) List(ctx context.Context) ([]*Entry, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, err
	}

	var entries []*Entry
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			continue
		}
		entries = append(entries, &entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SavedAt.After(entries[j].SavedAt)
	})
	return entries, nil
}

// Delete removes the entry under key; deleting a missing entry is not an
// error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }
