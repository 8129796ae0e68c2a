// ABOUTME: Pipeline holds the prepared gray source and produces one binary bitmap per frame
// ABOUTME: Frame = resize to the requested grid with the chosen filter, dither, optionally invert

package image

import (
	goimage "image"

	"github.com/disintegration/imaging"
)

// Pipeline turns a prepared source into per-frame bitmaps. It keeps no
// state between frames.
type Pipeline struct {
	src    *goimage.Gray
	filter imaging.ResampleFilter
	dither Dither
	invert bool
}

// PipelineOptions configures a Pipeline.
type PipelineOptions struct {
	Filter imaging.ResampleFilter
	Dither Dither
	Invert bool
}

// NewPipeline converts src to grayscale once and keeps it for every frame.
func NewPipeline(src goimage.Image, opts PipelineOptions) *Pipeline {
	return &Pipeline{
		src:    Grayscale(src),
		filter: opts.Filter,
		dither: opts.Dither,
		invert: opts.Invert,
	}
}

// Source returns the size of the prepared source.
func (p *Pipeline) Source() Dimensions {
	b := p.src.Bounds()
	return Dimensions{Width: b.Dx(), Height: b.Dy()}
}

// Frame returns a w x h bitmap whose pixels are 0 (dot off) or 255 (dot on).
func (p *Pipeline) Frame(w, h int) *goimage.Gray {
	out := p.dither.Apply(Resize(p.src, w, h, p.filter))
	if p.invert {
		Invert(out)
	}
	return out
}
