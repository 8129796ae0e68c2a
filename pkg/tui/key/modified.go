// ABOUTME: Parser for xterm modifier-carrying sequences: CSI 1 ; <mod> <letter> and CSI <n> ; <mod> ~.
// ABOUTME: Lets Shift/Alt/Ctrl+arrow arrive as the arrow key with modifier flags set.

package key

import (
	"strconv"
	"strings"
)

// xterm modifier bitmask; the wire value is mask+1.
const (
	modShift = 1 << iota
	modAlt
	modCtrl
)

var letterTypes = map[byte]Type{
	'A': Up,
	'B': Down,
	'C': Right,
	'D': Left,
	'H': Home,
	'F': End,
}

var tildeTypes = map[int]Type{
	1: Home,
	3: Delete,
	4: End,
	5: PageUp,
	6: PageDown,
}

// parseModified recognizes "\x1b[1;5A" and "\x1b[5;2~" style sequences.
func parseModified(data string) (Key, bool) {
	if len(data) < 6 || data[0] != esc || data[1] != '[' {
		return Key{}, false
	}

	body := data[2 : len(data)-1]
	final := data[len(data)-1]

	num, modStr, ok := strings.Cut(body, ";")
	if !ok {
		return Key{}, false
	}
	mod, err := strconv.Atoi(modStr)
	if err != nil || mod < 1 {
		return Key{}, false
	}

	var k Key
	switch {
	case final == '~':
		n, err := strconv.Atoi(num)
		if err != nil {
			return Key{}, false
		}
		t, ok := tildeTypes[n]
		if !ok {
			return Key{}, false
		}
		k.Type = t
	case num == "1":
		t, ok := letterTypes[final]
		if !ok {
			return Key{}, false
		}
		k.Type = t
	default:
		return Key{}, false
	}

	mask := mod - 1
	k.Shift = mask&modShift != 0
	k.Alt = mask&modAlt != 0
	k.Ctrl = mask&modCtrl != 0
	return k, true
}
