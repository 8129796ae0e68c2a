// ABOUTME: The interactive loop: draw a frame, block for a key, resize on arrows, stop on Esc
// ABOUTME: Single goroutine; state is observable so tests can follow Rendering -> AwaitingInput -> Terminated

package render

import (
	"fmt"
	"image"
	"time"

	"github.com/mauromedda/brailleview/internal/log"
	"github.com/mauromedda/brailleview/internal/statusline"
	imgpkg "github.com/mauromedda/brailleview/pkg/tui/image"
	"github.com/mauromedda/brailleview/pkg/tui/key"
	"github.com/mauromedda/brailleview/pkg/tui/terminal"
)

// State is the loop's position in its draw/wait cycle.
type State int

const (
	Rendering State = iota
	AwaitingInput
	Terminated
)

func (s State) String() string {
	switch s {
	case Rendering:
		return "rendering"
	case AwaitingInput:
		return "awaiting-input"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Source produces one binary bitmap per frame.
type Source interface {
	Frame(w, h int) *image.Gray
	Source() imgpkg.Dimensions
}

// KeyReader blocks until the next key press.
type KeyReader interface {
	ReadKey() (key.Key, error)
}

// Options configures a Loop.
type Options struct {
	Grid   Grid             // initial size; DefaultGrid when zero
	Path   string           // shown on the status line
	Status *statusline.Line // nil uses statusline.DefaultStyles
}

// Loop owns the grid and draws frames until Esc or an I/O error.
type Loop struct {
	term   terminal.Terminal
	keys   KeyReader
	src    Source
	frame  *FrameWriter
	status *statusline.Line
	path   string

	grid   Grid
	state  State
	frames int

	// onState, when set, is called on every transition.
	onState func(State)
}

// NewLoop creates a Loop drawing src on t and reading keys from keys.
func NewLoop(t terminal.Terminal, keys KeyReader, src Source, opts Options) *Loop {
	grid := opts.Grid
	if grid == (Grid{}) {
		grid = DefaultGrid
	}
	status := opts.Status
	if status == nil {
		status = statusline.New(statusline.DefaultStyles())
	}
	return &Loop{
		term:   t,
		keys:   keys,
		src:    src,
		frame:  NewFrameWriter(t),
		status: status,
		path:   opts.Path,
		grid:   grid,
		state:  Rendering,
	}
}

// State returns the current state.
func (l *Loop) State() State { return l.state }

// Grid returns the current grid.
func (l *Loop) Grid() Grid { return l.grid }

// Frames returns how many frames have been written.
func (l *Loop) Frames() int { return l.frames }

// Run draws and waits for keys until Esc, which returns nil. Write and read
// failures end the loop with a wrapped error. Either way the final state is
// Terminated.
func (l *Loop) Run() error {
	defer l.setState(Terminated)

	for {
		l.setState(Rendering)
		if err := l.draw(); err != nil {
			return err
		}

		l.setState(AwaitingInput)
		for {
			k, err := l.keys.ReadKey()
			if err != nil {
				return fmt.Errorf("waiting for key: %w", err)
			}
			if k.Type == key.Escape {
				log.Debug("escape after %d frames at %s", l.frames, l.grid)
				return nil
			}
			next, resize := l.grid.Apply(k)
			if resize {
				log.Debug("%s: grid %s -> %s", k, l.grid, next)
				l.grid = next
				break
			}
		}
	}
}

func (l *Loop) draw() error {
	start := time.Now()

	bits := l.src.Frame(l.grid.Width, l.grid.Height)
	src := l.src.Source()
	info := statusline.Info{
		Width:        l.grid.Width,
		Height:       l.grid.Height,
		SourceWidth:  src.Width,
		SourceHeight: src.Height,
		Path:         l.path,
	}

	cols, _, err := l.term.Size()
	if err != nil {
		log.Debug("terminal size unavailable, status line not truncated: %v", err)
		cols = 0
	}

	if err := l.frame.Write(bits, l.status.Render(info, cols)); err != nil {
		return err
	}
	l.frames++
	log.Debug("frame %d at %s in %s", l.frames, l.grid, time.Since(start))
	return nil
}

func (l *Loop) setState(s State) {
	l.state = s
	if l.onState != nil {
		l.onState(s)
	}
}
