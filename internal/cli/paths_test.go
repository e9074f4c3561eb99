package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnapshotDir(t *testing.T) {
	// Clear XDG_CACHE_HOME to test default behavior
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Unsetenv("XDG_CACHE_HOME")
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		}
	}()

	dir, err := snapshotDir()
	if err != nil {
		t.Fatalf("snapshotDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("snapshotDir() = %q, should be under home %q", dir, home)
	}

	expected := filepath.Join(home, ".cache", appName, "snapshots")
	if dir != expected {
		t.Errorf("snapshotDir() = %q, want %q", dir, expected)
	}
}

func TestSnapshotDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := snapshotDir()
	if err != nil {
		t.Fatalf("snapshotDir() error: %v", err)
	}

	expected := filepath.Join("/tmp/xdg-cache", appName, "snapshots")
	if dir != expected {
		t.Errorf("snapshotDir() = %q, want %q", dir, expected)
	}
}
