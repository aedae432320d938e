// Package blobs stores photo attachments as individual files under an
// app-private directory, addressed by generated filename.
package blobs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/emizen/notesapp/internal/common"
)

// Extension appended to every generated blob filename.
const blobExt = ".jpg"

// Store describes content file storage for photo attachments. Filenames are
// always generated by Write and never derived from external input.
type Store interface {
	// Write stores data under a freshly generated filename and returns it.
	Write(data []byte) (string, error)

	// Read returns the blob content, or common.ErrNotFound if the filename
	// does not exist.
	Read(filename string) ([]byte, error)

	// Delete removes the blob. A missing file is not an error.
	Delete(filename string) error
}

// FileStore implements Store on the local filesystem, one file per blob.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a FileStore rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Write stores data under a random UUID filename. Collisions with existing
// files are not checked; the identifier space makes them negligible.
func (s *FileStore) Write(data []byte) (string, error) {
	filename := uuid.NewString() + blobExt
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o600); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return filename, nil
}

func (s *FileStore) Read(filename string) ([]byte, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

// Delete removes the blob file, best effort: a missing file is not an error.
func (s *FileStore) Delete(filename string) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

// resolve rejects anything that is not a bare filename, so a ref can never
// escape the blob directory.
func (s *FileStore) resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid blob filename %q", filename)
	}
	return filepath.Join(s.dir, filename), nil
}
