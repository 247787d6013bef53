package database

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend keeps one JSON file per storage key under a data directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the data directory if needed and returns a backend
// rooted there.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load reads the blob stored under key.
func (f *FileBackend) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", key, err)
	}
	return data, nil
}

// Store writes the blob via a temp file and rename so a crash mid-write never
// leaves a truncated document behind.
func (f *FileBackend) Store(key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("error replacing %s: %w", key, err)
	}
	return nil
}
