// ABOUTME: CLI flag parsing using the stdlib flag package
// ABOUTME: Only flags given explicitly become config overrides; defaults stay with the config layer

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/brailleview/internal/config"
	"github.com/mauromedda/brailleview/pkg/tui/image"
)

type cliArgs struct {
	configPath string
	verbose    bool
	version    bool
	keys       bool
	explain    bool
	overrides  config.Overrides
	paths      []string
}

func parseFlags(argv []string, output io.Writer) (cliArgs, error) {
	var (
		args    cliArgs
		width   int
		height  int
		filter  string
		dither  string
		invert  bool
		fit     bool
		logFile string
	)

	defaults := config.Defaults()
	fs := flag.NewFlagSet("brailleview", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "usage: brailleview [flags] <image>\n\nflags:\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&args.configPath, "config", "", "Read settings from this YAML or TOML file")
	fs.IntVar(&width, "width", defaults.Width, "Initial render width in pixels (multiple of 2)")
	fs.IntVar(&height, "height", defaults.Height, "Initial render height in pixels (multiple of 4)")
	fs.StringVar(&filter, "filter", defaults.Filter, "Resample filter: "+strings.Join(image.FilterNames(), ", "))
	fs.StringVar(&dither, "dither", defaults.Dither, "Dither: "+strings.Join(image.DitherNames(), ", "))
	fs.BoolVar(&invert, "invert", false, "Swap lit and unlit dots")
	fs.BoolVar(&fit, "fit", false, "Size the initial grid to the terminal")
	fs.StringVar(&logFile, "log-file", "", "Append log lines here while the screen is in use")
	fs.BoolVar(&args.verbose, "v", false, "Verbose (debug) logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.BoolVar(&args.keys, "keys", false, "Show the key reference and exit")
	fs.BoolVar(&args.explain, "explain", false, "Print the effective settings and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			args.overrides.Width = &width
		case "height":
			args.overrides.Height = &height
		case "filter":
			args.overrides.Filter = &filter
		case "dither":
			args.overrides.Dither = &dither
		case "invert":
			args.overrides.Invert = &invert
		case "fit":
			args.overrides.Fit = &fit
		case "log-file":
			args.overrides.LogFile = &logFile
		}
	})

	args.paths = fs.Args()
	return args, nil
}
