// ABOUTME: Fixes lipgloss's background guess at init so styling never sends an OSC 11 query
// ABOUTME: A query answered while raw mode owns stdin would arrive as stray input bytes

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// The status line uses adaptive colours, which would otherwise ask the
	// terminal for its background the first time one is rendered.
	lipgloss.SetHasDarkBackground(true)
}
