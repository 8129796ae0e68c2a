// ABOUTME: Header-only image probing through the registered decoders (PNG, JPEG, GIF, WebP, BMP)
// ABOUTME: Lets the loader reject oversized images before paying for a full decode

package image

import (
	"errors"
	"fmt"
	goimage "image"
	"io"

	// Register decoders for every format the viewer accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrTooLarge reports an image whose pixel count exceeds the configured limit.
var ErrTooLarge = errors.New("image too large")

// Dimensions holds the width and height of an image in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// Pixels returns Width*Height.
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Probe reads just enough of r to report the image size and format name.
func Probe(r io.Reader) (Dimensions, string, error) {
	cfg, format, err := goimage.DecodeConfig(r)
	if err != nil {
		return Dimensions{}, "", fmt.Errorf("reading image header: %w", err)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, format, nil
}

// CheckPixels returns an error wrapping ErrTooLarge when d exceeds maxPixels.
// A maxPixels of zero or less disables the check.
func CheckPixels(d Dimensions, maxPixels int) error {
	if maxPixels > 0 && d.Pixels() > maxPixels {
		return fmt.Errorf("%w: %s is %d pixels, limit %d", ErrTooLarge, d, d.Pixels(), maxPixels)
	}
	return nil
}
