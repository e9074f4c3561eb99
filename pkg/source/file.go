package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/drodenkirchen/rio/pkg/errors"
	"github.com/drodenkirchen/rio/pkg/layouter"
)

// File reads the client snapshot from a JSON file, typically one written
// with [WriteFile] during an earlier live run.
type File struct {
	Path string
}

// NewFile creates a file source.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Fetch reads and decodes the snapshot file.
func (f *File) Fetch(ctx context.Context) (*layouter.Snapshot, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "snapshot file %s", f.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return DecodeSnapshot(data)
}

// WriteFile writes a snapshot as indented JSON, re-readable by [File].
func WriteFile(snap *layouter.Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// DecodeSnapshot unmarshals and sanity-checks a snapshot. A snapshot with
// no window dimensions or no records is rejected early; the desync check
// later would report every component missing, which buries the real
// problem.
func DecodeSnapshot(data []byte) (*layouter.Snapshot, error) {
	var snap layouter.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode snapshot")
	}
	if snap.WindowWidth <= 0 || snap.WindowHeight <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"snapshot window is %gx%g, want positive dimensions", snap.WindowWidth, snap.WindowHeight)
	}
	if len(snap.Records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "snapshot contains no records")
	}
	return &snap, nil
}
