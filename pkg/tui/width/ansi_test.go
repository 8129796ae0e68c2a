// ABOUTME: Tests for escape sequence stripping
// ABOUTME: Covers SGR, cursor movement, OSC with both terminators, string controls, and truncated input

package width

import "testing"

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no escapes", input: "plain text", want: "plain text"},
		{name: "sgr colour", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "compound sgr", input: "\x1b[1;38;5;208mstatus\x1b[m", want: "status"},
		{name: "cursor home and clear", input: "\x1b[2J\x1b[Hframe", want: "frame"},
		{name: "private mode", input: "\x1b[?1049hin\x1b[?1049l", want: "in"},
		{name: "osc bel", input: "\x1b]0;title\atext", want: "text"},
		{name: "osc st", input: "\x1b]8;;http://x\x1b\\link", want: "link"},
		{name: "dcs", input: "a\x1bPq#0\x1b\\b", want: "ab"},
		{name: "charset", input: "\x1b(Bx", want: "x"},
		{name: "two byte", input: "\x1b7saved\x1b8", want: "saved"},
		{name: "unterminated csi", input: "ok\x1b[31", want: "ok"},
		{name: "lone esc", input: "ok\x1b", want: "ok"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
