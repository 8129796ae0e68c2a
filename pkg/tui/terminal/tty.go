// ABOUTME: TTY detection with mattn/go-isatty, including Cygwin/MSYS pseudo terminals.
// ABOUTME: RequireTerminal turns a redirected stdin or stdout into a descriptive startup error.

package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNotTerminal reports that a file the viewer must drive is not a TTY.
var ErrNotTerminal = errors.New("not a terminal")

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RequireTerminal returns an error wrapping ErrNotTerminal unless both in
// and out are terminals.
func RequireTerminal(in, out *os.File) error {
	if !IsTerminal(in) {
		return fmt.Errorf("%s: %w", in.Name(), ErrNotTerminal)
	}
	if !IsTerminal(out) {
		return fmt.Errorf("%s: %w", out.Name(), ErrNotTerminal)
	}
	return nil
}
