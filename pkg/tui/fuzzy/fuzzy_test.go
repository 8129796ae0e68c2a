// ABOUTME: Tests for option value suggestions
// ABOUTME: Covers subsequence hits, prefix fallback, case folding, and inputs with no plausible match

package fuzzy

import "testing"

func TestSuggest(t *testing.T) {
	t.Parallel()

	filters := []string{"box", "catmullrom", "lanczos", "linear", "mitchell", "nearest"}
	dithers := []string{"bayer", "floyd-steinberg", "threshold"}

	tests := []struct {
		name       string
		input      string
		candidates []string
		want       string
		wantOK     bool
	}{
		{name: "truncated", input: "lanc", candidates: filters, want: "lanczos", wantOK: true},
		{name: "dropped letters", input: "ctmlrm", candidates: filters, want: "catmullrom", wantOK: true},
		{name: "upper case", input: "BAYR", candidates: dithers, want: "bayer", wantOK: true},
		{name: "short name", input: "floyd", candidates: dithers, want: "floyd-steinberg", wantOK: true},
		{name: "transposed but same prefix", input: "thrsehold", candidates: dithers, want: "threshold", wantOK: true},
		{name: "nothing close", input: "qqq", candidates: dithers, wantOK: false},
		{name: "empty", input: "  ", candidates: dithers, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Suggest(tt.input, tt.candidates)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Suggest(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
