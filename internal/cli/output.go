package cli

import (
	"fmt"
	"io"
	"os"
)

// openOutput opens path for writing, creating or truncating it. The paths
// "" and "-" select stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// writeOutput writes data to path (or stdout) and reports the file when one
// was written.
func writeOutput(data []byte, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" && path != "-" {
		printFile(path)
	}
	return nil
}
