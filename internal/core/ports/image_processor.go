package ports

import (
	"context"
	"errors"
)

// ErrImageProcessing is wrapped by ImageProcessor implementations when the
// upload cannot be decoded, transformed or written.
var ErrImageProcessing = errors.New("image processing failed")

// ImageProcessor normalizes a delivery photo into the stored JPEG form.
type ImageProcessor interface {
	// Process decodes raw, converts it to RGB, shrinks it to fit the maximum
	// edge and overwrites destination with the encoded JPEG. On error the
	// destination may hold the unprocessed upload; removing it is the
	// caller's responsibility.
	Process(ctx context.Context, raw []byte, destination string) error
}
