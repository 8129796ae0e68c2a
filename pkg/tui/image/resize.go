// ABOUTME: Resampling and grayscale conversion on disintegration/imaging with named filters
// ABOUTME: Cap bounds the decoded image per dimension; Resize scales a gray bitmap to an exact size

package image

import (
	"errors"
	"fmt"
	goimage "image"
	"sort"

	"github.com/disintegration/imaging"
)

// ErrUnknownFilter reports a resample filter name that is not supported.
var ErrUnknownFilter = errors.New("unknown resample filter")

// DefaultFilter is the high-quality kernel used unless configured otherwise.
const DefaultFilter = "lanczos"

var filters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"mitchell":   imaging.MitchellNetravali,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
}

// ParseFilter looks up a resample filter by name.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	f, ok := filters[name]
	if !ok {
		return imaging.ResampleFilter{}, fmt.Errorf("%w %q (want one of %v)", ErrUnknownFilter, name, FilterNames())
	}
	return f, nil
}

// FilterNames returns the supported filter names in sorted order.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cap downscales img so its width is at most maxW and its height at most
// maxH. Each dimension is clamped on its own, so the aspect ratio changes
// when only one of them is over. Images already within bounds are returned
// unchanged.
func Cap(img goimage.Image, maxW, maxH int, filter imaging.ResampleFilter) goimage.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}
	return imaging.Resize(img, min(w, maxW), min(h, maxH), filter)
}

// Grayscale converts img to an 8-bit single-channel bitmap anchored at (0, 0).
func Grayscale(img goimage.Image) *goimage.Gray {
	return toGray(imaging.Grayscale(img))
}

// Resize scales src to exactly w x h pixels.
func Resize(src *goimage.Gray, w, h int, filter imaging.ResampleFilter) *goimage.Gray {
	if b := src.Bounds(); b.Dx() == w && b.Dy() == h && b.Min == (goimage.Point{}) {
		return src
	}
	return toGray(imaging.Resize(src, w, h, filter))
}

// toGray copies the red channel of an already-gray NRGBA image.
func toGray(n *goimage.NRGBA) *goimage.Gray {
	w, h := n.Rect.Dx(), n.Rect.Dy()
	g := goimage.NewGray(goimage.Rect(0, 0, w, h))
	for y := range h {
		src := n.Pix[y*n.Stride : y*n.Stride+w*4]
		dst := g.Pix[y*g.Stride : y*g.Stride+w]
		for x := range w {
			dst[x] = src[x*4]
		}
	}
	return g
}
