// ABOUTME: The -keys reference: a markdown table of key bindings rendered with glamour
// ABOUTME: Word-wraps to the terminal width when stdout is a terminal, 80 columns otherwise

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const keysMarkdown = `# brailleview keys

Each braille glyph covers 2x4 pixels. One key press changes the size by 4
pixels: two glyph columns or one glyph row.

| Key | Action |
|-----|--------|
| Up | Shrink height by 4 pixels, never below 4 |
| Down | Grow height by 4 pixels |
| Left | Shrink width by 4 pixels, never below 4 |
| Right | Grow width by 4 pixels |
| Esc | Quit and restore the terminal |

Other keys are ignored. Modified arrows (Shift, Alt, Ctrl) act like plain arrows.
`

func renderKeys(width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := renderer.Render(keysMarkdown)
	if err != nil {
		return "", fmt.Errorf("rendering key reference: %w", err)
	}
	// Trim trailing whitespace that glamour adds
	return strings.TrimRight(out, " \n") + "\n", nil
}
