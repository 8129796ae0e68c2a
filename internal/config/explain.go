// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the -explain flag to show merged settings and the files they came from

package config

import (
	"fmt"
	"strings"
)

// Explain renders s and the files it was read from.
func Explain(s *Settings, sources []string) string {
	if s == nil {
		s = Defaults()
	}

	var b strings.Builder

	b.WriteString("=== Sources ===\n")
	b.WriteString("  defaults\n")
	for _, src := range sources {
		fmt.Fprintf(&b, "  %s\n", src)
	}
	b.WriteString("\n")

	b.WriteString("=== Grid ===\n")
	fmt.Fprintf(&b, "  Size:      %dx%d\n", s.Width, s.Height)
	fmt.Fprintf(&b, "  Fit:       %v\n", s.Fit)
	b.WriteString("\n")

	b.WriteString("=== Image ===\n")
	fmt.Fprintf(&b, "  Cap:       %dx%d\n", s.MaxWidth, s.MaxHeight)
	if s.MaxPixels > 0 {
		fmt.Fprintf(&b, "  MaxPixels: %d\n", s.MaxPixels)
	} else {
		b.WriteString("  MaxPixels: unlimited\n")
	}
	fmt.Fprintf(&b, "  Filter:    %s\n", s.Filter)
	fmt.Fprintf(&b, "  Dither:    %s\n", s.Dither)
	fmt.Fprintf(&b, "  Invert:    %v\n", s.Invert)
	b.WriteString("\n")

	b.WriteString("=== Logging ===\n")
	if s.LogFile != "" {
		fmt.Fprintf(&b, "  LogFile:   %s\n", s.LogFile)
	} else {
		b.WriteString("  LogFile:   (discarded while drawing)\n")
	}

	return b.String()
}
