// ABOUTME: Truncate cuts plain text to a column budget on grapheme boundaries
// ABOUTME: A trailing ellipsis marks the cut; wide clusters never straddle the edge

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Truncate returns s cut to at most maxCols columns. When anything is cut,
// the last column holds an ellipsis. s must not contain escape sequences;
// style the result afterwards.
func Truncate(s string, maxCols int) string {
	if maxCols <= 0 {
		return ""
	}
	if Width(s) <= maxCols {
		return s
	}

	var b strings.Builder
	budget := maxCols - 1
	col := 0
	rest := s
	state := -1
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cw := clusterWidth(cluster)
		if col+cw > budget {
			break
		}
		b.WriteString(cluster)
		col += cw
	}
	b.WriteString(ellipsis)
	return b.String()
}
