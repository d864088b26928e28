package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir writes blobs as files under Root. Existing files with the same name
// are overwritten.
type Dir struct {
	Root   string
	closed bool
}

// NewDir creates root (and parents) if needed and returns a sink over it.
func NewDir(root string) (*Dir, error) {
	if root == "" {
		return nil, fmt.Errorf("NewDir: %w", ErrInvalidName)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", root, err)
	}
	return &Dir{Root: root}, nil
}

// Write stores data in Root/name and returns the path.
func (d *Dir) Write(name string, data []byte) (string, error) {
	if d.closed {
		return "", ErrClosed
	}
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("write %q: %w", name, ErrInvalidName)
	}
	path := filepath.Join(d.Root, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Close marks the sink closed.
func (d *Dir) Close() error {
	d.closed = true
	return nil
}
