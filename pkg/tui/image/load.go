// ABOUTME: Load reads an image file, guards its pixel count, decodes it, and applies EXIF orientation
// ABOUTME: Orientation comes from rwcarlsen/goexif; the flips and rotations from disintegration/imaging

package image

import (
	"bytes"
	"fmt"
	goimage "image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// Info describes a loaded image before any scaling.
type Info struct {
	Path        string
	Format      string
	Size        Dimensions // after orientation
	Orientation int        // EXIF orientation tag, 1 when absent
}

// Load decodes the image at path. Images larger than maxPixels (when
// positive) are rejected from their header, before decoding.
func Load(path string, maxPixels int) (goimage.Image, Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Info{}, fmt.Errorf("reading image: %w", err)
	}

	dim, format, err := Probe(bytes.NewReader(data))
	if err != nil {
		return nil, Info{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := CheckPixels(dim, maxPixels); err != nil {
		return nil, Info{}, fmt.Errorf("%s: %w", path, err)
	}

	img, _, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, Info{}, fmt.Errorf("decoding %s image %s: %w", format, path, err)
	}

	orient := 1
	if format == "jpeg" {
		orient = exifOrientation(bytes.NewReader(data))
	}
	img = Orient(img, orient)

	b := img.Bounds()
	return img, Info{
		Path:        path,
		Format:      format,
		Size:        Dimensions{Width: b.Dx(), Height: b.Dy()},
		Orientation: orient,
	}, nil
}

// exifOrientation returns the EXIF orientation tag, or 1 when the data has
// no usable EXIF block.
func exifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil || x == nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil || tag == nil || tag.Count == 0 {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil || v < 1 || v > 8 {
		return 1
	}
	return v
}

// Orient transforms img so that EXIF orientation o displays upright.
func Orient(img goimage.Image, o int) goimage.Image {
	switch o {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
