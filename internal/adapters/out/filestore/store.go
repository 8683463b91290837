// Package filestore keeps delivery photos in a local upload directory.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"deliveryproof/internal/core/ports"

	"github.com/google/renameio/v2"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// LocalPhotoStore implements ports.PhotoStore on the local filesystem.
type LocalPhotoStore struct {
	dir    string
	logger *slog.Logger
}

// NewLocalPhotoStore creates a store rooted at dir. The directory is created
// on first use if it does not exist.
func NewLocalPhotoStore(dir string, logger *slog.Logger) *LocalPhotoStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalPhotoStore{
		dir:    dir,
		logger: logger.With("component", "photo_store"),
	}
}

// Dir returns the upload directory.
func (s *LocalPhotoStore) Dir() string {
	return s.dir
}

// Save writes data to dir/name and returns that path. name must be a bare
// file name. An existing file is overwritten and the overwrite is logged.
// The file appears complete or not at all.
func (s *LocalPhotoStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: invalid file name %q", ports.ErrPhotoStorage, name)
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrPhotoStorage, err)
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		s.logger.WarnContext(ctx, "Overwriting existing delivery photo", "path", path)
	}

	if err := renameio.WriteFile(path, data, filePerm,
		renameio.WithTempDir(s.dir),
		renameio.WithStaticPermissions(filePerm),
	); err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrPhotoStorage, err)
	}

	return path, nil
}

// Remove deletes path. A missing file is not an error.
func (s *LocalPhotoStore) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ports.ErrPhotoStorage, err)
	}
	return nil
}
