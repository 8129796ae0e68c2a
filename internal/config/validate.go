// ABOUTME: Validation of effective settings and conversion into render and pipeline options
// ABOUTME: Reports every problem at once; unknown filter and dither names get a "did you mean" hint

package config

import (
	"errors"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/mauromedda/brailleview/internal/render"
	"github.com/mauromedda/brailleview/pkg/tui/fuzzy"
	"github.com/mauromedda/brailleview/pkg/tui/image"
)

// Grid returns the configured initial grid.
func (s *Settings) Grid() render.Grid {
	return render.Grid{Width: s.Width, Height: s.Height}
}

// Validate returns all problems with s joined into one error, or nil.
func (s *Settings) Validate() error {
	var errs []error

	if err := s.Grid().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("width/height: %w", err))
	}
	if s.MaxWidth < render.MinSize || s.MaxHeight < render.MinSize {
		errs = append(errs, fmt.Errorf("max_width/max_height: %dx%d is smaller than %dx%d",
			s.MaxWidth, s.MaxHeight, render.MinSize, render.MinSize))
	}
	if s.MaxPixels < 0 {
		errs = append(errs, fmt.Errorf("max_pixels: %d is negative", s.MaxPixels))
	}
	if _, err := image.ParseFilter(s.Filter); err != nil {
		errs = append(errs, fmt.Errorf("filter: %w", hint(err, s.Filter, image.FilterNames())))
	}
	if _, err := image.ParseDither(s.Dither); err != nil {
		errs = append(errs, fmt.Errorf("dither: %w", hint(err, s.Dither, image.DitherNames())))
	}

	return errors.Join(errs...)
}

// hint appends a suggestion to err when value is close to a valid name.
func hint(err error, value string, valid []string) error {
	if s, ok := fuzzy.Suggest(value, valid); ok {
		return fmt.Errorf("%w; did you mean %q?", err, s)
	}
	return err
}

// Pipeline returns the image pipeline options for s. Call Validate first;
// invalid names fall back to the defaults.
func (s *Settings) Pipeline() image.PipelineOptions {
	filter, err := image.ParseFilter(s.Filter)
	if err != nil {
		filter = imaging.Lanczos
	}
	dither, err := image.ParseDither(s.Dither)
	if err != nil {
		dither = image.FloydSteinberg
	}
	return image.PipelineOptions{Filter: filter, Dither: dither, Invert: s.Invert}
}
