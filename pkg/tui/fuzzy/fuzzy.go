// ABOUTME: "Did you mean" suggestions for mistyped option values, backed by sahilm/fuzzy
// ABOUTME: Tries subsequence matching first, then falls back to a shared-prefix check

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns the candidate that best matches input, or false when
// none is close enough to be worth proposing.
func Suggest(input string, candidates []string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}
	if matches := fuzzy.Find(input, candidates); len(matches) > 0 {
		return matches[0].Str, true
	}
	// Typos break subsequence matching; a shared first few letters still
	// makes a useful hint.
	prefix := input[:min(len(input), 3)]
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			return c, true
		}
	}
	return "", false
}
