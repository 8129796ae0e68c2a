// ABOUTME: Settings loading: defaults, then the global file, then an explicit file, then CLI overrides
// ABOUTME: Files are YAML (gopkg.in/yaml.v3) or TOML (BurntSushi/toml), chosen by extension

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat reports a config file whose extension is not a known format.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Settings holds the merged configuration.
type Settings struct {
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	MaxWidth  int    `yaml:"max_width" toml:"max_width"`
	MaxHeight int    `yaml:"max_height" toml:"max_height"`
	MaxPixels int    `yaml:"max_pixels" toml:"max_pixels"`
	Filter    string `yaml:"filter" toml:"filter"`
	Dither    string `yaml:"dither" toml:"dither"`
	Invert    bool   `yaml:"invert" toml:"invert"`
	Fit       bool   `yaml:"fit" toml:"fit"`
	LogFile   string `yaml:"log_file" toml:"log_file"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Width:     160,
		Height:    192,
		MaxWidth:  512,
		MaxHeight: 64,
		MaxPixels: 50_000_000,
		Filter:    "lanczos",
		Dither:    "floyd-steinberg",
	}
}

// Load builds the effective settings. The global file is optional; an
// explicit path, when given, must exist. It returns the files that were
// read, in order.
func Load(explicit string) (*Settings, []string, error) {
	s := Defaults()
	var sources []string

	if global := FindGlobalConfigFile(); global != "" {
		if err := loadFile(global, s); err != nil {
			return nil, nil, fmt.Errorf("loading global config: %w", err)
		}
		sources = append(sources, global)
	}

	if explicit != "" {
		if err := loadFile(explicit, s); err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		sources = append(sources, explicit)
	}

	ResolveEnvVars(s)
	return s, sources, nil
}

// loadFile decodes path over s. Keys absent from the file keep their
// current values, so a file can set invert: false over an earlier true.
func loadFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return decodeYAML(path, data, s)
	case ".toml":
		return decodeTOML(path, data, s)
	default:
		return fmt.Errorf("%w %q for %s (want .yaml, .yml or .toml)", ErrUnsupportedFormat, ext, path)
	}
}

func decodeYAML(path string, data []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func decodeTOML(path string, data []byte, s *Settings) error {
	md, err := toml.Decode(string(data), s)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return fmt.Errorf("parsing %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Overrides carries values given on the command line. Nil fields were not
// given and leave the loaded settings alone.
type Overrides struct {
	Width   *int
	Height  *int
	Filter  *string
	Dither  *string
	Invert  *bool
	Fit     *bool
	LogFile *string
}

// Apply copies every set override onto s.
func (o Overrides) Apply(s *Settings) {
	if o.Width != nil {
		s.Width = *o.Width
	}
	if o.Height != nil {
		s.Height = *o.Height
	}
	if o.Filter != nil {
		s.Filter = *o.Filter
	}
	if o.Dither != nil {
		s.Dither = *o.Dither
	}
	if o.Invert != nil {
		s.Invert = *o.Invert
	}
	if o.Fit != nil {
		s.Fit = *o.Fit
	}
	if o.LogFile != nil {
		s.LogFile = expandEnv(*o.LogFile)
	}
}
