// ABOUTME: Defines the Terminal interface for raw mode, size queries, and output.
// ABOUTME: Abstracts terminal operations so the viewer can target a real TTY or a virtual one in tests.

package terminal

// Terminal abstracts the low-level terminal operations the viewer needs:
// raw mode, size queries and output writing. Control sequences such as the
// alternate screen are written through Write (see ansi.go).
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
}
