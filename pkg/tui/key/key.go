// ABOUTME: Defines the Key type and ParseKey for raw-mode terminal keyboard input.
// ABOUTME: Handles printable runes, control bytes, lone Esc, and delegates escape sequences to the CSI/SS3 tables.

package key

import (
	"strings"
	"unicode/utf8"
)

// Key is one parsed keyboard event.
type Key struct {
	Type  Type
	Rune  rune // set when Type is Rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

// Type enumerates the keys the viewer can tell apart.
type Type int

const (
	Unknown   Type = iota // Unrecognized input
	Rune                  // Printable character
	Enter                 // Enter / Return
	Tab                   // Tab
	BackTab               // Shift+Tab
	Backspace             // Backspace / DEL (0x7F)
	Delete                // Delete
	Up                    // Arrow up
	Down                  // Arrow down
	Left                  // Arrow left
	Right                 // Arrow right
	Home                  // Home
	End                   // End
	PageUp                // Page Up
	PageDown              // Page Down
	Escape                // Escape
	CtrlC                 // Ctrl+C
	CtrlD                 // Ctrl+D
	CtrlL                 // Ctrl+L
)

const esc = 0x1b

// ctrlKeys maps the control bytes that have a dedicated Type.
var ctrlKeys = map[byte]Key{
	0x03: {Type: CtrlC, Ctrl: true},
	0x04: {Type: CtrlD, Ctrl: true},
	0x0c: {Type: CtrlL, Ctrl: true},
}

// ParseKey parses one complete chunk of terminal input into a Key.
// Partial or unrecognized sequences yield Type Unknown.
func ParseKey(data string) Key {
	switch {
	case len(data) == 0:
		return Key{Type: Unknown}
	case len(data) == 1:
		return parseByte(data[0])
	case data[0] == esc:
		return parseEscape(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: Unknown}
	}
	return Key{Type: Rune, Rune: r}
}

func parseByte(b byte) Key {
	switch {
	case b == '\r' || b == '\n':
		return Key{Type: Enter}
	case b == '\t':
		return Key{Type: Tab}
	case b == 0x7f || b == 0x08:
		return Key{Type: Backspace}
	case b == esc:
		return Key{Type: Escape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: Rune, Rune: rune(b)}
	}

	if k, ok := ctrlKeys[b]; ok {
		return k
	}
	return Key{Type: Unknown}
}

func parseEscape(data string) Key {
	if k, ok := sequences[data]; ok {
		return k
	}
	if k, ok := parseModified(data); ok {
		return k
	}

	// Alt+letter: ESC followed by one printable byte.
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: Rune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: Unknown}
}

var typeNames = map[Type]string{
	Unknown:   "Unknown",
	Enter:     "Enter",
	Tab:       "Tab",
	BackTab:   "BackTab",
	Backspace: "Backspace",
	Delete:    "Delete",
	Up:        "Up",
	Down:      "Down",
	Left:      "Left",
	Right:     "Right",
	Home:      "Home",
	End:       "End",
	PageUp:    "PageUp",
	PageDown:  "PageDown",
	Escape:    "Esc",
	CtrlC:     "Ctrl+C",
	CtrlD:     "Ctrl+D",
	CtrlL:     "Ctrl+L",
}

// String returns a readable name, prefixed with any modifiers, for logs.
func (k Key) String() string {
	name := typeNames[k.Type]
	if k.Type == Rune {
		name = string(k.Rune)
	}
	if name == "" {
		name = "Unknown"
	}

	var b strings.Builder
	if k.Ctrl && k.Type != CtrlC && k.Type != CtrlD && k.Type != CtrlL {
		b.WriteString("Ctrl+")
	}
	if k.Alt {
		b.WriteString("Alt+")
	}
	if k.Shift && k.Type != BackTab {
		b.WriteString("Shift+")
	}
	b.WriteString(name)
	return b.String()
}
