package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"wortkiste/internal/ports"
)

// Store implements ports.DictionaryStore on the local filesystem
type Store struct{}

// Ensure Store implements DictionaryStore
var _ ports.DictionaryStore = (*Store)(nil)

// NewStore creates a new filesystem store
func NewStore() *Store {
	return &Store{}
}

// Exists reports whether a regular file is present at path
func (s *Store) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}

// ReadFile reads the whole file at path
func (s *Store) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile streams r into a temporary file next to path and renames it into
// place. Readers never observe a partial file and a failed write leaves
// nothing behind.
func (s *Store) WriteFile(path string, r io.Reader) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	tmpPath := tmp.Name()

	n, err := io.Copy(tmp, r)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmpPath, 0644)
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		os.Remove(tmpPath)
		return n, fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return n, nil
}
