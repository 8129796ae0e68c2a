// ABOUTME: Unmodified CSI and SS3 escape sequences sent by xterm-compatible terminals.
// ABOUTME: Maps raw escape strings to Key values for arrows, home, end, page, delete, and backtab.

package key

// sequences maps the common unmodified escape sequences to keys.
var sequences = map[string]Key{
	// CSI
	"\x1b[A":  {Type: Up},
	"\x1b[B":  {Type: Down},
	"\x1b[C":  {Type: Right},
	"\x1b[D":  {Type: Left},
	"\x1b[H":  {Type: Home},
	"\x1b[F":  {Type: End},
	"\x1b[1~": {Type: Home},
	"\x1b[4~": {Type: End},
	"\x1b[5~": {Type: PageUp},
	"\x1b[6~": {Type: PageDown},
	"\x1b[3~": {Type: Delete},
	"\x1b[Z":  {Type: BackTab, Shift: true},

	// SS3, sent in application cursor mode
	"\x1bOA": {Type: Up},
	"\x1bOB": {Type: Down},
	"\x1bOC": {Type: Right},
	"\x1bOD": {Type: Left},
	"\x1bOH": {Type: Home},
	"\x1bOF": {Type: End},
}

// MaxSequenceLen bounds how many bytes a reader must look at before it can
// give up on matching an escape sequence ("\x1b[1;10A").
const MaxSequenceLen = 8
