// Package imageproc normalizes uploaded delivery photos into bounded,
// compressed JPEG files.
package imageproc

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"deliveryproof/internal/core/ports"

	"github.com/disintegration/imaging"
	"github.com/google/renameio/v2"
	_ "golang.org/x/image/webp" // registers the WebP decoder
)

const (
	// MaxEdge is the longest edge, in pixels, of a stored photo.
	MaxEdge = 1024

	// Quality is the JPEG quality of a stored photo.
	Quality = 50

	// MaxPixels bounds the decoded size of an upload.
	MaxPixels = 50_000_000

	// TempPrefix starts the name of a pending write next to its destination.
	// Leftovers of interrupted writes are removed by the upload sweeper.
	TempPrefix = "."

	filePerm = 0o644
)

// IsPendingWrite reports whether name is a pending write rather than a photo.
func IsPendingWrite(name string) bool {
	return strings.HasPrefix(name, TempPrefix)
}

// Processor implements ports.ImageProcessor with disintegration/imaging.
type Processor struct {
	maxEdge int
	quality int
}

// NewProcessor creates a processor with the default edge and quality.
func NewProcessor() *Processor {
	return &Processor{maxEdge: MaxEdge, quality: Quality}
}

// Process decodes raw (EXIF orientation applied), flattens it onto white RGB,
// shrinks it to fit MaxEdge×MaxEdge and atomically replaces destination with
// the JPEG encoding.
func (p *Processor) Process(ctx context.Context, raw []byte, destination string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrImageProcessing, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: decode config: %w", ports.ErrImageProcessing, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxPixels {
		return fmt.Errorf("%w: unsupported dimensions %dx%d", ports.ErrImageProcessing, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("%w: decode: %w", ports.ErrImageProcessing, err)
	}

	img = imaging.Fit(flatten(img), p.maxEdge, p.maxEdge, imaging.Lanczos)

	if err = p.writeAtomically(img, destination); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrImageProcessing, err)
	}

	return nil
}

// flatten composites img over an opaque white canvas, dropping any alpha.
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

func (p *Processor) writeAtomically(img image.Image, destination string) error {
	pending, err := renameio.NewPendingFile(destination,
		renameio.WithTempDir(filepath.Dir(destination)),
		renameio.WithStaticPermissions(filePerm),
	)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer pending.Cleanup()

	if err = imaging.Encode(pending, img, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err = pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", destination, err)
	}

	return nil
}
