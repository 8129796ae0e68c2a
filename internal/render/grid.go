// ABOUTME: Grid is the requested render size in pixels; arrow keys step it by 4 with a floor of 4
// ABOUTME: Widths stay multiples of the 2-pixel glyph width and heights multiples of the 4-pixel glyph height

package render

import (
	"errors"
	"fmt"

	"github.com/mauromedda/brailleview/pkg/braille"
	"github.com/mauromedda/brailleview/pkg/tui/key"
)

const (
	// Step is how many pixels one arrow key press adds or removes.
	Step = 4
	// MinSize is the smallest width or height a key press can reach.
	MinSize = 4
)

// ErrInvalidGrid reports a grid that cannot be drawn as whole glyphs.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is a render size in pixels. Each glyph covers 2x4 pixels.
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid is 80 glyph columns by 48 glyph rows.
var DefaultGrid = Grid{Width: 160, Height: 192}

// Cols is the number of glyphs per row.
func (g Grid) Cols() int { return g.Width / braille.Cols }

// Rows is the number of glyph rows.
func (g Grid) Rows() int { return g.Height / braille.Rows }

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Validate checks that g is at least MinSize in both directions and maps
// onto whole glyphs.
func (g Grid) Validate() error {
	switch {
	case g.Width < MinSize || g.Height < MinSize:
		return fmt.Errorf("%w: %s is smaller than %dx%d", ErrInvalidGrid, g, MinSize, MinSize)
	case g.Width%braille.Cols != 0:
		return fmt.Errorf("%w: width %d is not a multiple of %d", ErrInvalidGrid, g.Width, braille.Cols)
	case g.Height%braille.Rows != 0:
		return fmt.Errorf("%w: height %d is not a multiple of %d", ErrInvalidGrid, g.Height, braille.Rows)
	}
	return nil
}

// Apply returns the grid after pressing k and whether k was a resize key.
// Shrinking stops at MinSize; growing has no upper bound.
func (g Grid) Apply(k key.Key) (Grid, bool) {
	switch k.Type {
	case key.Up:
		g.Height = max(g.Height-Step, MinSize)
	case key.Down:
		g.Height += Step
	case key.Left:
		g.Width = max(g.Width-Step, MinSize)
	case key.Right:
		g.Width += Step
	default:
		return g, false
	}
	return g, true
}

// Fit returns the largest grid that fills a terminal of cols x lines cells
// while leaving one line for the status.
func Fit(cols, lines int) Grid {
	return Grid{
		Width:  max(cols*braille.Cols, MinSize),
		Height: max((lines-1)*braille.Rows, MinSize),
	}
}
