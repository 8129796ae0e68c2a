// ABOUTME: Tests for filter lookup, per-dimension capping, grayscale conversion, and exact resizing
// ABOUTME: Builds images in memory; checks bounds, origin, and that gray levels survive conversion

package image

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/disintegration/imaging"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()

	for _, name := range FilterNames() {
		if _, err := ParseFilter(name); err != nil {
			t.Errorf("ParseFilter(%q) error: %v", name, err)
		}
	}
	if !slices.Contains(FilterNames(), DefaultFilter) {
		t.Errorf("FilterNames() %v lacks the default %q", FilterNames(), DefaultFilter)
	}
	if !slices.IsSorted(FilterNames()) {
		t.Errorf("FilterNames() %v not sorted", FilterNames())
	}

	_, err := ParseFilter("bicubic-ish")
	if !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("ParseFilter(unknown) error = %v, want ErrUnknownFilter", err)
	}
}

func TestCap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{name: "within bounds", w: 100, h: 40, wantW: 100, wantH: 40},
		{name: "exactly at bounds", w: 512, h: 64, wantW: 512, wantH: 64},
		{name: "too wide", w: 1000, h: 40, wantW: 512, wantH: 40},
		{name: "too tall", w: 100, h: 300, wantW: 100, wantH: 64},
		{name: "both over", w: 2000, h: 1000, wantW: 512, wantH: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := Cap(src, 512, 64, imaging.Lanczos).Bounds()
			if got.Dx() != tt.wantW || got.Dy() != tt.wantH {
				t.Errorf("Cap(%dx%d) = %dx%d, want %dx%d", tt.w, tt.h, got.Dx(), got.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCap_UnchangedImageIsSameValue(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if got := Cap(src, 512, 64, imaging.Lanczos); got != image.Image(src) {
		t.Error("Cap() copied an image that was already within bounds")
	}
}

func TestGrayscale(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(5, 5, 9, 7)) // offset origin
	for y := 5; y < 7; y++ {
		for x := 5; x < 9; x++ {
			src.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	src.Set(5, 5, color.RGBA{A: 255})

	g := Grayscale(src)
	if g.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Fatalf("Grayscale() bounds = %v, want (0,0)-(4,2)", g.Bounds())
	}
	if v := g.GrayAt(0, 0).Y; v != 0 {
		t.Errorf("black pixel became %d", v)
	}
	if v := g.GrayAt(3, 1).Y; v != 255 {
		t.Errorf("white pixel became %d", v)
	}
}

func TestResize(t *testing.T) {
	t.Parallel()

	src := image.NewGray(image.Rect(0, 0, 37, 11))
	for i := range src.Pix {
		src.Pix[i] = 200
	}

	got := Resize(src, 160, 192, imaging.Lanczos)
	if got.Bounds() != image.Rect(0, 0, 160, 192) {
		t.Fatalf("Resize() bounds = %v, want (0,0)-(160,192)", got.Bounds())
	}
	// A flat image stays flat under any normalised kernel.
	for _, v := range []uint8{got.GrayAt(0, 0).Y, got.GrayAt(80, 96).Y, got.GrayAt(159, 191).Y} {
		if v < 198 || v > 202 {
			t.Errorf("flat 200 image resampled to %d", v)
		}
	}
}

func TestResize_SameSizeReturnsSource(t *testing.T) {
	t.Parallel()

	src := image.NewGray(image.Rect(0, 0, 8, 8))
	if got := Resize(src, 8, 8, imaging.Lanczos); got != src {
		t.Error("Resize() to the same size should return the source")
	}
}
