package snapshot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/drodenkirchen/rio/pkg/component"
	"github.com/drodenkirchen/rio/pkg/errors"
	"github.com/drodenkirchen/rio/pkg/layouter"
)

func testSnapshot() *layouter.Snapshot {
	rec := layouter.NewRecord()
	rec.NaturalWidth = 10
	return &layouter.Snapshot{
		WindowWidth:  800,
		WindowHeight: 600,
		Records:      map[component.ID]*layouter.Record{1: rec},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	defer store.Close()

	if err := store.Save(ctx, "scene:login", testSnapshot()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	entry, err := store.Load(ctx, "scene:login")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if entry.Key != "scene:login" {
		t.Errorf("Key = %q, want %q", entry.Key, "scene:login")
	}
	if entry.Snapshot.WindowWidth != 800 {
		t.Errorf("WindowWidth = %v, want 800", entry.Snapshot.WindowWidth)
	}
	if rec, ok := entry.Snapshot.Records[1]; !ok || rec.NaturalWidth != 10 {
		t.Errorf("Records[1] not preserved: %+v", entry.Snapshot.Records)
	}
}

func TestFileStore_MissingKey(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	_, err = store.Load(ctx, "nope")
	if !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
		t.Errorf("Load() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeSnapshotNotFound)
	}
}

func TestFileStore_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	for _, key := range []string{"a", "b"} {
		if err := store.Save(ctx, key, testSnapshot()); err != nil {
			t.Fatalf("Save(%q) error: %v", key, err)
		}
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(entries))
	}

	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := store.Delete(ctx, "a"); err != nil {
		t.Errorf("Delete() of missing key should not error, got: %v", err)
	}

	entries, _ = store.List(ctx)
	if len(entries) != 1 || entries[0].Key != "b" {
		t.Errorf("after delete, List() = %d entries, want just %q", len(entries), "b")
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := DefaultDir("riolayout")
	if err != nil {
		t.Fatalf("DefaultDir() error: %v", err)
	}
	want := filepath.Join("/tmp/xdg-cache", "riolayout", "snapshots")
	if dir != want {
		t.Errorf("DefaultDir() = %q, want %q", dir, want)
	}
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	store := NewNull()
	defer store.Close()

	if err := store.Save(ctx, "key", testSnapshot()); err != nil {
		t.Errorf("Save() error: %v", err)
	}
	if _, err := store.Load(ctx, "key"); !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
		t.Error("Null store should never store data")
	}
}
