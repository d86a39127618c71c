package io

import (
	"fmt"
	"io"
	"os"
)

// Write copies a rendered artifact to w.
func Write(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// Export writes a rendered artifact to a file at path.
// This is a convenience wrapper around [Write] for file-based output.
func Export(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, data)
}
