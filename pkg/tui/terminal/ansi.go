// ABOUTME: xterm control sequences for the alternate screen, clearing, cursor homing, and cursor visibility.
// ABOUTME: Written through Terminal.Write; no terminfo lookup.

package terminal

import "fmt"

const (
	EnterAltScreen = "\x1b[?1049h"
	LeaveAltScreen = "\x1b[?1049l"
	ClearScreen    = "\x1b[2J"
	CursorHome     = "\x1b[H"
	HideCursor     = "\x1b[?25l"
	ShowCursor     = "\x1b[?25h"
)

// WriteString writes a control sequence to t.
func WriteString(t Terminal, seq string) error {
	if _, err := t.Write([]byte(seq)); err != nil {
		return fmt.Errorf("writing control sequence %q: %w", seq, err)
	}
	return nil
}
