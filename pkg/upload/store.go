package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DiskStore persists uploads under a single directory with one fixed
// filename per category. The file on disk is the "current" pointer:
// it survives restarts, and a re-upload replaces it in place.
type DiskStore struct {
	Dir string
}

// NewDiskStore ensures dir exists before the first write.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir %s: %w", dir, err)
	}
	return &DiskStore{Dir: dir}, nil
}

// Store writes the incoming file for category and returns the path
// used. A reader racing with the replacement sees either the old file
// or the new one, never a partial write.
func (s *DiskStore) Store(category Category, src io.Reader) (string, error) {
	if _, err := ParseCategory(string(category)); err != nil {
		return "", err
	}

	dst := filepath.Join(s.Dir, category.Filename())
	if err := s.write(dst, src); err != nil {
		return "", err
	}
	return dst, nil
}

// StoreFallback keeps an upload that matched no category under a
// unique timestamp-derived name. Fallback files are never the current
// file of any category. No route reaches this today; it preserves the
// uncategorized-intake behavior for future upload paths.
func (s *DiskStore) StoreFallback(origName string, src io.Reader) (string, error) {
	name := strconv.FormatInt(time.Now().UnixNano(), 10) + filepath.Ext(origName)
	dst := filepath.Join(s.Dir, name)
	if err := s.write(dst, src); err != nil {
		return "", err
	}
	return dst, nil
}

// CurrentPath reports the current file for category. ok is false until
// the first upload lands (or if the file was removed from disk).
func (s *DiskStore) CurrentPath(category Category) (string, bool) {
	path := filepath.Join(s.Dir, category.Filename())
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

func (s *DiskStore) write(dst string, src io.Reader) error {
	tmp, err := os.CreateTemp(s.Dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("failed to move upload into place: %w", err)
	}
	return nil
}
