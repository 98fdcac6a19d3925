package localfs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"drivesync/internal/util"
)

var ErrNotFound = errors.New("local file not found")

type Store interface {
	ModifiedTime(path string) (time.Time, error)
	Open(path string) (io.ReadCloser, error)
	WriteAtomic(path string, r io.Reader) error
	SetModTime(path string, t time.Time) error
}

type OSStore struct{}

func NewOSStore() *OSStore {
	return &OSStore{}
}

func (s *OSStore) ModifiedTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, ErrNotFound
		}

		return time.Time{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info.ModTime().UTC(), nil
}

func (s *OSStore) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return f, nil
}

func (s *OSStore) WriteAtomic(path string, r io.Reader) error {
	return util.AtomicWrite(path, r)
}

func (s *OSStore) SetModTime(path string, t time.Time) error {
	if err := os.Chtimes(path, t, t); err != nil {
		return fmt.Errorf("failed to set mtime on %s: %w", path, err)
	}

	return nil
}
