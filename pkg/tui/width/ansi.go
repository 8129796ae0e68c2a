// ABOUTME: Removes terminal escape sequences so styled text can be measured
// ABOUTME: Understands CSI, OSC, string controls (DCS, APC, PM), charset designation, and two-byte ESC forms

package width

import "strings"

const esc = '\x1b'

// StripANSI returns s without its escape sequences.
func StripANSI(s string) string {
	i := strings.IndexByte(s, esc)
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i >= 0 {
		b.WriteString(s[:i])
		s = s[sequenceEnd(s, i):]
		i = strings.IndexByte(s, esc)
	}
	b.WriteString(s)
	return b.String()
}

// sequenceEnd returns the index just past the escape sequence at s[i].
// Unterminated sequences run to the end of s.
func sequenceEnd(s string, i int) int {
	i++
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		// Parameters and intermediates, then a final byte in 0x40-0x7E.
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return len(s)
	case ']':
		// OSC ends at BEL or ST.
		for i++; i < len(s); i++ {
			if s[i] == '\a' {
				return i + 1
			}
			if isST(s, i) {
				return i + 2
			}
		}
		return len(s)
	case 'P', '_', '^':
		for i++; i < len(s); i++ {
			if isST(s, i) {
				return i + 2
			}
		}
		return len(s)
	case '(', ')':
		return min(i+2, len(s))
	default:
		return i + 1
	}
}

func isST(s string, i int) bool {
	return s[i] == esc && i+1 < len(s) && s[i+1] == '\\'
}
