package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// ErrNotFound reports that the Drive file behind an ID no longer exists.
// The engine treats it as "no remote counterpart" and re-creates.
var ErrNotFound = errors.New("remote file not found")

type Store interface {
	ModifiedTime(ctx context.Context, id string) (time.Time, error)
	Create(ctx context.Context, folderID, name string, r io.Reader, modTime time.Time) (string, error)
	Update(ctx context.Context, id string, r io.Reader, modTime time.Time) error
	Download(ctx context.Context, id string) (io.ReadCloser, error)
}

type DriveStore struct {
	svc *drive.Service
}

func NewDriveStore(svc *drive.Service) *DriveStore {
	return &DriveStore{svc: svc}
}

func (s *DriveStore) ModifiedTime(ctx context.Context, id string) (time.Time, error) {
	f, err := s.svc.Files.Get(id).Fields("modifiedTime").Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return time.Time{}, ErrNotFound
		}

		return time.Time{}, fmt.Errorf("failed to get metadata: %w", err)
	}

	t, err := time.Parse(time.RFC3339, f.ModifiedTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse modified time %q: %w", f.ModifiedTime, err)
	}

	return t.UTC(), nil
}

// Create uploads a new file and pins its modifiedTime to the local one;
// otherwise Drive stamps the upload time and the next comparison sees
// the remote side as newer.
func (s *DriveStore) Create(ctx context.Context, folderID, name string, r io.Reader, modTime time.Time) (string, error) {
	driveFile := &drive.File{
		Name:         name,
		Parents:      []string{folderID},
		ModifiedTime: modTime.UTC().Format(time.RFC3339),
	}

	created, err := s.svc.Files.Create(driveFile).Media(r).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	return created.Id, nil
}

func (s *DriveStore) Update(ctx context.Context, id string, r io.Reader, modTime time.Time) error {
	driveFile := &drive.File{
		ModifiedTime: modTime.UTC().Format(time.RFC3339),
	}

	if _, err := s.svc.Files.Update(id, driveFile).Media(r).Context(ctx).Do(); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}

		return fmt.Errorf("failed to update file: %w", err)
	}

	return nil
}

func (s *DriveStore) Download(ctx context.Context, id string) (io.ReadCloser, error) {
	resp, err := s.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to download: %w", err)
	}

	return resp.Body, nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}

	return false
}
