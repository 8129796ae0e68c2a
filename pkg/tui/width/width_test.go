// ABOUTME: Tests for column measurement and truncation
// ABOUTME: Covers ASCII, wide CJK, emoji, styled text, and cuts that would split a wide cluster

package width

import "testing"

func TestWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "160x192", want: 7},
		{name: "braille is narrow", input: "⣿⣿⣿", want: 3},
		{name: "cjk", input: "你好", want: 4},
		{name: "emoji", input: "👋", want: 2},
		{name: "styled", input: "\x1b[7m 80x48 \x1b[0m", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Width(tt.input); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		maxCols int
		want    string
	}{
		{name: "fits", input: "160x192", maxCols: 10, want: "160x192"},
		{name: "exact", input: "160x192", maxCols: 7, want: "160x192"},
		{name: "cut", input: "160x192 source 512x64", maxCols: 8, want: "160x192…"},
		{name: "one column", input: "abc", maxCols: 1, want: "…"},
		{name: "zero", input: "abc", maxCols: 0, want: ""},
		{name: "negative", input: "abc", maxCols: -3, want: ""},
		{name: "wide cluster not split", input: "你好世界", maxCols: 4, want: "你…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tt.input, tt.maxCols)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxCols, got, tt.want)
			}
			if w := Width(got); w > max(tt.maxCols, 0) {
				t.Errorf("Truncate(%q, %d) is %d columns wide", tt.input, tt.maxCols, w)
			}
		})
	}
}
