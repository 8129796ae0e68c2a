// ABOUTME: Reader turns raw-mode terminal bytes into one key.Key per blocking ReadKey call.
// ABOUTME: Buffers partial escape sequences, treats a lone ESC ending a short read as Escape, and skips bracketed paste.

package input

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mauromedda/brailleview/pkg/tui/key"
)

const (
	readBufSize  = 256
	bracketStart = "\x1b[200~"
	bracketEnd   = "\x1b[201~"
)

// Reader reads keys from r. It is not safe for concurrent use; the render
// loop owns it and calls ReadKey from a single goroutine.
type Reader struct {
	r   io.Reader
	buf []byte
	tmp []byte
	err error
	// full is set when the last read filled tmp, so the end of buf is
	// not a write boundary and may fall inside a sequence.
	full bool
}

// NewReader returns a Reader over r (normally os.Stdin in raw mode).
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:   r,
		buf: make([]byte, 0, readBufSize),
		tmp: make([]byte, readBufSize),
	}
}

// ReadKey blocks until one key is available and returns it. Input that does
// not map to a known key is returned as key.Unknown. Once the underlying
// reader fails, buffered keys are drained first and then the wrapped error is
// returned on every call.
func (r *Reader) ReadKey() (key.Key, error) {
	for {
		if len(r.buf) > 0 {
			n, k, more := parse(r.buf, !r.full)
			if more && r.err != nil {
				// No more bytes are coming; settle for what is buffered.
				n, k, more = 1, key.ParseKey(string(r.buf[:1])), false
			}
			if !more {
				r.buf = r.buf[n:]
				return k, nil
			}
		}
		if r.err != nil {
			return key.Key{}, r.err
		}
		r.fill()
	}
}

// Buffered reports how many unconsumed bytes are held.
func (r *Reader) Buffered() int {
	return len(r.buf)
}

func (r *Reader) fill() {
	n, err := r.r.Read(r.tmp)
	r.full = n == len(r.tmp)
	if n > 0 {
		r.buf = append(r.buf, r.tmp[:n]...)
	}
	if err != nil {
		r.err = fmt.Errorf("reading input: %w", err)
	}
}

// parse extracts one key from the front of buf. It returns the bytes
// consumed, the key, and whether more input is needed before deciding.
// When boundary is set the end of buf is a write boundary: terminals emit
// each escape sequence in a single write, so a trailing lone ESC is the
// Escape key. Otherwise a trailing ESC waits for the rest of its sequence.
func parse(buf []byte, boundary bool) (int, key.Key, bool) {
	if bytes.HasPrefix(buf, []byte(bracketStart)) {
		end := bytes.Index(buf[len(bracketStart):], []byte(bracketEnd))
		if end < 0 {
			return 0, key.Key{}, true
		}
		return len(bracketStart) + end + len(bracketEnd), key.Key{Type: key.Unknown}, false
	}

	if buf[0] == 0x1b {
		return parseEscape(buf, boundary)
	}

	if !utf8.FullRune(buf) {
		if len(buf) < utf8.UTFMax {
			return 0, key.Key{}, true
		}
		return 1, key.Key{Type: key.Unknown}, false
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return 1, key.Key{Type: key.Unknown}, false
	}
	return size, key.ParseKey(string(buf[:size])), false
}

func parseEscape(buf []byte, boundary bool) (int, key.Key, bool) {
	if len(buf) == 1 {
		if !boundary {
			return 0, key.Key{}, true
		}
		return 1, key.Key{Type: key.Escape}, false
	}

	// Longest match first so "\x1b[1;5A" wins over shorter prefixes.
	for end := min(len(buf), key.MaxSequenceLen); end >= 3; end-- {
		if k := key.ParseKey(string(buf[:end])); k.Type != key.Unknown {
			return end, k, false
		}
	}

	switch buf[1] {
	case '[':
		return parseCSITail(buf)
	case 'O':
		if len(buf) == 2 {
			return 0, key.Key{}, true
		}
		return 3, key.Key{Type: key.Unknown}, false
	}

	if buf[1] >= 0x20 && buf[1] <= 0x7e {
		return 2, key.Key{Type: key.Rune, Rune: rune(buf[1]), Alt: true}, false
	}
	return 1, key.Key{Type: key.Escape}, false
}

// parseCSITail handles a CSI that matched no known key: wait while it is
// still a plausible prefix, otherwise drop it through its final byte.
func parseCSITail(buf []byte) (int, key.Key, bool) {
	for i := 2; i < len(buf); i++ {
		c := buf[i]
		if c >= 0x40 && c <= 0x7e {
			return i + 1, key.Key{Type: key.Unknown}, false
		}
		if c < 0x20 || c > 0x3f {
			// Not a parameter or intermediate byte: malformed.
			return i, key.Key{Type: key.Unknown}, false
		}
	}
	if len(buf) < key.MaxSequenceLen {
		return 0, key.Key{}, true
	}
	return len(buf), key.Key{Type: key.Unknown}, false
}
