package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"pnoise/internal/raster"
)

// ErrUnsupportedFormat is returned for destinations without a .png extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

const tempPattern = ".pnoise-*.tmp"

// Gray wraps the pixel buffer as an image without copying.
func Gray(p *raster.PixelBuffer) *image.Gray {
	return &image.Gray{
		Pix:    p.Pix,
		Stride: p.Width,
		Rect:   image.Rect(0, 0, p.Width, p.Height),
	}
}

// Save encodes p as PNG into path. The image is written to a temporary file
// in the same directory and renamed into place, so path never holds a
// partial file.
func Save(path string, p *raster.PixelBuffer) (err error) {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".png") {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = png.Encode(tmp, Gray(p)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

// RemoveTemps deletes temporary files left in dir by an interrupted Save.
func RemoveTemps(dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, tempPattern))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
