// ABOUTME: Binarisation of gray bitmaps into 0/255 pixels: Floyd-Steinberg, ordered Bayer 4x4, or a fixed threshold
// ABOUTME: Floyd-Steinberg error diffusion is delegated to golang.org/x/image/draw onto a two-colour palette

package image

import (
	"errors"
	"fmt"
	goimage "image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
)

// ErrUnknownDither reports a dither algorithm name that is not supported.
var ErrUnknownDither = errors.New("unknown dither algorithm")

// Dither selects a binarisation algorithm.
type Dither int

const (
	FloydSteinberg Dither = iota // error diffusion, the default
	Bayer                        // ordered 4x4 matrix
	Threshold                    // fixed cut at mid-grey
)

var ditherNames = map[Dither]string{
	FloydSteinberg: "floyd-steinberg",
	Bayer:          "bayer",
	Threshold:      "threshold",
}

func (d Dither) String() string {
	if name, ok := ditherNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dither(%d)", int(d))
}

// DitherNames returns the supported algorithm names in sorted order.
func DitherNames() []string {
	names := make([]string, 0, len(ditherNames))
	for _, name := range ditherNames {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseDither looks up an algorithm by name.
func ParseDither(name string) (Dither, error) {
	for d, n := range ditherNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want floyd-steinberg, bayer or threshold)", ErrUnknownDither, name)
}

const (
	off = 0x00
	on  = 0xff
)

var bilevel = color.Palette{color.Gray{Y: off}, color.Gray{Y: on}}

// bayer4 is the 4x4 ordered dither index matrix.
var bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Apply returns a new bitmap the size of src whose pixels are all 0 or 255.
func (d Dither) Apply(src *goimage.Gray) *goimage.Gray {
	b := src.Bounds()
	out := goimage.NewGray(goimage.Rect(0, 0, b.Dx(), b.Dy()))

	switch d {
	case Bayer:
		for y := range b.Dy() {
			for x := range b.Dx() {
				v := int(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
				// Thresholds run 8, 24, ... 248 so pure black and white stay put.
				if v > (int(bayer4[y&3][x&3])*2+1)*8 {
					out.Pix[y*out.Stride+x] = on
				}
			}
		}
	case Threshold:
		for y := range b.Dy() {
			for x := range b.Dx() {
				if src.GrayAt(b.Min.X+x, b.Min.Y+y).Y >= 0x80 {
					out.Pix[y*out.Stride+x] = on
				}
			}
		}
	default:
		p := goimage.NewPaletted(out.Rect, bilevel)
		draw.FloydSteinberg.Draw(p, p.Rect, src, b.Min)
		for i, idx := range p.Pix {
			if idx != 0 {
				out.Pix[i] = on
			}
		}
	}
	return out
}

// Invert swaps on and off pixels in place.
func Invert(g *goimage.Gray) {
	for i, v := range g.Pix {
		g.Pix[i] = ^v
	}
}
