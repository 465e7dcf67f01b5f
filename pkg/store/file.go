package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/glyphsmith/pkg/errors"
)

// File stores each document as a file in a directory.
type File struct {
	dir string
}

// NewFile creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create store directory %s", dir)
	}
	return &File{dir: dir}, nil
}

// Dir returns the directory documents are stored in.
func (s *File) Dir() string {
	return s.dir
}

// Path returns the file path of the document called name.
func (s *File) Path(name string) (string, error) {
	if err := errors.ValidateResourceName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// Put writes data to a temporary file and renames it into place, so readers
// never observe a partially written document.
func (s *File) Put(ctx context.Context, name string, data []byte) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".put-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s", name)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s", name)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s", name)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s", name)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s", name)
	}
	return nil
}

// Get reads the document called name.
func (s *File) Get(ctx context.Context, name string) ([]byte, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read %s", name)
	}
	return data, nil
}

// Delete removes the document called name.
func (s *File) Delete(ctx context.Context, name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return errors.Wrap(errors.ErrCodeStorage, err, "delete %s", name)
}

// Close does nothing for the file store.
func (s *File) Close() error {
	return nil
}

// Ensure File implements Store.
var _ Store = (*File)(nil)
