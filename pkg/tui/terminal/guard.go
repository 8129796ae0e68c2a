// ABOUTME: Guard pairs an acquire step with a cleanup that runs exactly once on any exit path.
// ABOUTME: Session stacks the raw-mode and alternate-screen guards and releases them in reverse order.

package terminal

import (
	"errors"
	"fmt"
	"sync"
)

// Guard holds a cleanup function for a state that was entered successfully.
// Release may be called any number of times, from defers, error paths or
// panic handlers; the cleanup runs on the first call only.
type Guard struct {
	once  sync.Once
	leave func() error
	err   error
}

// Acquire runs enter and, if it succeeds, returns a Guard that will run
// leave. When enter fails nothing was entered and no Guard is returned.
func Acquire(enter, leave func() error) (*Guard, error) {
	if err := enter(); err != nil {
		return nil, err
	}
	return &Guard{leave: leave}, nil
}

// Release runs the cleanup once and returns its error on every call.
func (g *Guard) Release() error {
	g.once.Do(func() {
		g.err = g.leave()
	})
	return g.err
}

// Session owns the terminal for a full-screen program: raw mode plus the
// alternate screen with a hidden cursor.
type Session struct {
	term Terminal
	raw  *Guard
	alt  *Guard
}

// OpenSession enters raw mode and then the alternate screen. If the second
// step fails the first is undone before returning.
func OpenSession(t Terminal) (*Session, error) {
	raw, err := Acquire(t.EnterRawMode, t.ExitRawMode)
	if err != nil {
		return nil, err
	}

	alt, err := Acquire(
		func() error { return WriteString(t, EnterAltScreen+HideCursor) },
		func() error { return WriteString(t, ShowCursor+LeaveAltScreen) },
	)
	if err != nil {
		if rerr := raw.Release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
		return nil, fmt.Errorf("entering alternate screen: %w", err)
	}

	return &Session{term: t, raw: raw, alt: alt}, nil
}

// Terminal returns the terminal the session owns.
func (s *Session) Terminal() Terminal {
	return s.term
}

// Close leaves the alternate screen and then raw mode. It is safe to call
// more than once; later calls report the first result.
func (s *Session) Close() error {
	return errors.Join(s.alt.Release(), s.raw.Release())
}
