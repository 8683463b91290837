package ports

import (
	"context"
	"errors"
)

// ErrPhotoStorage is wrapped by PhotoStore implementations on filesystem failures.
var ErrPhotoStorage = errors.New("photo storage failed")

// PhotoStore keeps delivery photos under a single upload directory.
type PhotoStore interface {
	// Save writes data under name and returns the stored path. An existing
	// file with the same name is overwritten.
	Save(ctx context.Context, name string, data []byte) (string, error)

	// Remove deletes a stored photo. Removing a missing file is not an error.
	Remove(ctx context.Context, path string) error
}

// PhotoArchive keeps an off-site copy of processed photos. It is optional and
// its failures never change a delivery outcome.
type PhotoArchive interface {
	Archive(ctx context.Context, path string) error
}
