// ABOUTME: Formats the one-line status shown under each frame: grid size, source size, file name, key hints
// ABOUTME: Plain text is cut to the terminal width before lipgloss styling so escapes never count as columns

package statusline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/brailleview/pkg/tui/width"
)

const hints = "arrows resize | esc quits"

// Info is the data shown on the status line.
type Info struct {
	Width        int // grid width in pixels
	Height       int // grid height in pixels
	SourceWidth  int
	SourceHeight int
	Path         string
}

// Styles controls how the two halves of the line are drawn.
type Styles struct {
	Size   lipgloss.Style
	Detail lipgloss.Style
}

// DefaultStyles draws the size in reverse video and the rest dimmed.
func DefaultStyles() Styles {
	return Styles{
		Size:   lipgloss.NewStyle().Reverse(true).Bold(true),
		Detail: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
	}
}

// Line renders status lines with a fixed set of styles.
type Line struct {
	styles Styles
}

// New creates a Line using styles.
func New(styles Styles) *Line {
	return &Line{styles: styles}
}

// Text returns the unstyled status text. The grid size always comes first.
func Text(info Info) string {
	s := fmt.Sprintf("%dx%d", info.Width, info.Height)
	if info.Path != "" {
		s += fmt.Sprintf("  %s %dx%d", filepath.Base(info.Path), info.SourceWidth, info.SourceHeight)
	}
	return s + "  " + hints
}

// Render returns the styled line, at most maxCols columns wide. A maxCols
// of zero or less means the width is unknown and nothing is cut.
func (l *Line) Render(info Info, maxCols int) string {
	size := fmt.Sprintf("%dx%d", info.Width, info.Height)
	plain := Text(info)

	if maxCols > 0 && width.Width(plain) > maxCols {
		cut := width.Truncate(plain, maxCols)
		rest, whole := strings.CutPrefix(cut, size)
		if !whole {
			return l.styles.Size.Render(cut)
		}
		return l.styles.Size.Render(size) + l.styles.Detail.Render(rest)
	}
	return l.styles.Size.Render(size) + l.styles.Detail.Render(plain[len(size):])
}
