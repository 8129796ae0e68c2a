// ABOUTME: CLI entry point for brailleview with terminal crash recovery
// ABOUTME: Parses flags, loads config and the image, owns the terminal for the render loop

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	// termfix must run its init before anything renders a lipgloss style.
	_ "github.com/mauromedda/brailleview/internal/termfix"

	"github.com/mauromedda/brailleview/internal/config"
	"github.com/mauromedda/brailleview/internal/log"
	"github.com/mauromedda/brailleview/internal/render"
	"github.com/mauromedda/brailleview/pkg/tui/image"
	"github.com/mauromedda/brailleview/pkg/tui/input"
	"github.com/mauromedda/brailleview/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// ErrNoImage reports a missing or extra image argument.
var ErrNoImage = errors.New("expected exactly one image path")

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if args.version {
		fmt.Printf("brailleview %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if args.keys {
		width := 80
		if cols, _, err := terminal.NewProcessTerminal().Size(); err == nil && cols > 0 {
			width = cols
		}
		out, err := renderKeys(width)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run returns only after the terminal has been restored, so main can print
// errors to a normal screen.
func run(args cliArgs) (err error) {
	if !args.explain && len(args.paths) != 1 {
		return fmt.Errorf("%w (got %d); usage: brailleview [flags] <image>", ErrNoImage, len(args.paths))
	}

	settings, sources, err := config.Load(args.configPath)
	if err != nil {
		return err
	}
	args.overrides.Apply(settings)
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}
	log.Debug("config sources: defaults %v", sources)

	if args.explain {
		fmt.Print(config.Explain(settings, sources))
		return settings.Validate()
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	path := args.paths[0]

	opts := settings.Pipeline()
	img, info, err := image.Load(path, settings.MaxPixels)
	if err != nil {
		return err
	}
	log.Debug("loaded %s: %s %s, orientation %d", info.Path, info.Format, info.Size, info.Orientation)
	img = image.Cap(img, settings.MaxWidth, settings.MaxHeight, opts.Filter)
	pipeline := image.NewPipeline(img, opts)
	log.Debug("source capped to %s", pipeline.Source())

	if err := terminal.RequireTerminal(os.Stdin, os.Stdout); err != nil {
		return err
	}
	tty := terminal.NewProcessTerminal()

	grid := settings.Grid()
	if settings.Fit {
		if cols, lines, err := tty.Size(); err != nil {
			log.Warn("cannot fit to terminal, using %s: %v", grid, err)
		} else {
			grid = render.Fit(cols, lines)
		}
	}

	restoreLog, err := redirectLog(settings.LogFile)
	if err != nil {
		return err
	}
	defer restoreLog()

	session, err := terminal.OpenSession(tty)
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("restoring terminal: %w", cerr))
		}
	}()
	defer terminal.RestoreOnPanic(session)

	loop := render.NewLoop(session.Terminal(), input.NewReader(os.Stdin), pipeline, render.Options{
		Grid: grid,
		Path: path,
	})
	return loop.Run()
}

// redirectLog points the logger at path, or discards log lines when path
// is empty, and returns a function that puts the previous sink back.
func redirectLog(path string) (func(), error) {
	if path == "" {
		prev := log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}
