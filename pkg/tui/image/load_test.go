// ABOUTME: Tests for file loading: format detection, the pixel guard, error wrapping, and EXIF orientation mapping
// ABOUTME: Writes fixtures into t.TempDir so nothing depends on files in the repository

package image

import (
	"errors"
	goimage "image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		file       string
		data       []byte
		wantFormat string
		wantSize   Dimensions
	}{
		{name: "png", file: "a.png", data: makePNG(t, 40, 30), wantFormat: "png", wantSize: Dimensions{40, 30}},
		{name: "jpeg without exif", file: "a.jpg", data: makeJPEG(t, 24, 16), wantFormat: "jpeg", wantSize: Dimensions{24, 16}},
		{name: "gif", file: "a.gif", data: makeGIF(t, 9, 7), wantFormat: "gif", wantSize: Dimensions{9, 7}},
		{name: "bmp", file: "a.bmp", data: makeBMP(t, 5, 3), wantFormat: "bmp", wantSize: Dimensions{5, 3}},
		{name: "extension is ignored", file: "a.txt", data: makePNG(t, 2, 2), wantFormat: "png", wantSize: Dimensions{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFixture(t, tt.file, tt.data)

			img, info, err := Load(path, 0)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if info.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", info.Format, tt.wantFormat)
			}
			if info.Size != tt.wantSize {
				t.Errorf("Size = %s, want %s", info.Size, tt.wantSize)
			}
			if info.Orientation != 1 {
				t.Errorf("Orientation = %d, want 1", info.Orientation)
			}
			if info.Path != path {
				t.Errorf("Path = %q, want %q", info.Path, path)
			}
			if b := img.Bounds(); b.Dx() != tt.wantSize.Width || b.Dy() != tt.wantSize.Height {
				t.Errorf("image bounds = %v, want %s", b, tt.wantSize)
			}
		})
	}
}

func TestLoad_TooLarge(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "big.png", makePNG(t, 100, 100))
	_, _, err := Load(path, 9_999)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Load() error = %v, want ErrTooLarge", err)
	}
	if _, _, err := Load(path, 10_000); err != nil {
		t.Errorf("Load() at the limit error: %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.png"), 0); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}

	garbage := writeFixture(t, "garbage.png", []byte("definitely not a png"))
	if _, _, err := Load(garbage, 0); err == nil {
		t.Error("Load(garbage) succeeded, want error")
	}
}

func TestOrient(t *testing.T) {
	t.Parallel()

	// 2x1: black on the left, white on the right.
	src := goimage.NewNRGBA(goimage.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{A: 255})
	src.Set(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	tests := []struct {
		orientation int
		wantW       int
		wantH       int
		wantFirstW  bool // is pixel (0,0) white after the transform
	}{
		{orientation: 1, wantW: 2, wantH: 1, wantFirstW: false},
		{orientation: 2, wantW: 2, wantH: 1, wantFirstW: true},
		{orientation: 3, wantW: 2, wantH: 1, wantFirstW: true},
		{orientation: 4, wantW: 2, wantH: 1, wantFirstW: false},
		{orientation: 5, wantW: 1, wantH: 2, wantFirstW: false},
		{orientation: 6, wantW: 1, wantH: 2, wantFirstW: false},
		{orientation: 7, wantW: 1, wantH: 2, wantFirstW: true},
		{orientation: 8, wantW: 1, wantH: 2, wantFirstW: true},
		{orientation: 0, wantW: 2, wantH: 1, wantFirstW: false},
		{orientation: 9, wantW: 2, wantH: 1, wantFirstW: false},
	}

	for _, tt := range tests {
		got := Orient(src, tt.orientation)
		b := got.Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("Orient(%d) size = %dx%d, want %dx%d", tt.orientation, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			continue
		}
		r, _, _, _ := got.At(b.Min.X, b.Min.Y).RGBA()
		if white := r > 0x8000; white != tt.wantFirstW {
			t.Errorf("Orient(%d) first pixel white = %v, want %v", tt.orientation, white, tt.wantFirstW)
		}
	}
}
