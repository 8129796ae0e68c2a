// ABOUTME: RestoreOnPanic recovers from panics, closes the terminal session, and prints the stack trace.
// ABOUTME: Deferred at the top of main so a crash never leaves the TTY raw or on the alternate screen.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Swapped in tests.
var (
	panicOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// RestoreOnPanic should be deferred directly by the goroutine that owns the
// terminal. On panic it closes c (normally a *Session), prints the panic
// value and stack trace, then exits with code 1. Without a panic it does
// nothing; c is closed by its own defer on the normal path.
func RestoreOnPanic(c io.Closer) {
	r := recover()
	if r == nil {
		return
	}

	if c != nil {
		_ = c.Close()
	}

	fmt.Fprintf(panicOutput, "\npanic: %v\n\n%s\n", r, debug.Stack())
	exit(1)
}
