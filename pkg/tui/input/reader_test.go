// ABOUTME: Tests for Reader key decoding from an io.Reader.
// ABOUTME: Uses scripted chunk readers for deterministic boundaries; covers split sequences, lone ESC, paste, and EOF.

package input

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mauromedda/brailleview/pkg/tui/key"
)

// chunkReader returns one scripted chunk per Read call, then io.EOF.
type chunkReader struct {
	chunks []string
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks[0] = c.chunks[0][n:]
	if c.chunks[0] == "" {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

func readAll(t *testing.T, r *Reader) []key.Key {
	t.Helper()

	var got []key.Key
	for {
		k, err := r.ReadKey()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("ReadKey() unexpected error: %v", err)
			}
			return got
		}
		got = append(got, k)
	}
}

func TestReader_Keys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		chunks []string
		want   []key.Key
	}{
		{
			name:   "single rune",
			chunks: []string{"a"},
			want:   []key.Key{{Type: key.Rune, Rune: 'a'}},
		},
		{
			name:   "several runes in one chunk",
			chunks: []string{"abc"},
			want: []key.Key{
				{Type: key.Rune, Rune: 'a'},
				{Type: key.Rune, Rune: 'b'},
				{Type: key.Rune, Rune: 'c'},
			},
		},
		{
			name:   "arrows in one chunk",
			chunks: []string{"\x1b[A\x1b[B\x1b[C\x1b[D"},
			want: []key.Key{
				{Type: key.Up},
				{Type: key.Down},
				{Type: key.Right},
				{Type: key.Left},
			},
		},
		{
			name:   "arrow split across reads",
			chunks: []string{"\x1b[", "A"},
			want:   []key.Key{{Type: key.Up}},
		},
		{
			name:   "modified arrow split across reads",
			chunks: []string{"\x1b[1;", "5C"},
			want:   []key.Key{{Type: key.Right, Ctrl: true}},
		},
		{
			name:   "lone escape at chunk end",
			chunks: []string{"\x1b"},
			want:   []key.Key{{Type: key.Escape}},
		},
		{
			name:   "escape after arrow",
			chunks: []string{"\x1b[A\x1b"},
			want:   []key.Key{{Type: key.Up}, {Type: key.Escape}},
		},
		{
			name:   "double escape",
			chunks: []string{"\x1b\x1b"},
			want:   []key.Key{{Type: key.Escape}, {Type: key.Escape}},
		},
		{
			name:   "alt letter",
			chunks: []string{"\x1bq"},
			want:   []key.Key{{Type: key.Rune, Rune: 'q', Alt: true}},
		},
		{
			name:   "multi-byte rune split across reads",
			chunks: []string{"\xe2\xa0", "\x80"},
			want:   []key.Key{{Type: key.Rune, Rune: '⠀'}},
		},
		{
			name:   "unknown csi is dropped whole",
			chunks: []string{"\x1b[99Zx"},
			want:   []key.Key{{Type: key.Unknown}, {Type: key.Rune, Rune: 'x'}},
		},
		{
			name:   "bracketed paste is skipped",
			chunks: []string{"\x1b[200~hello", " world\x1b[201~", "\x1b[B"},
			want:   []key.Key{{Type: key.Unknown}, {Type: key.Down}},
		},
		{
			name:   "truncated csi at eof settles as escape",
			chunks: []string{"\x1b["},
			want:   []key.Key{{Type: key.Escape}, {Type: key.Rune, Rune: '['}},
		},
		{
			name:   "invalid utf-8 byte",
			chunks: []string{"\xffz"},
			want:   []key.Key{{Type: key.Unknown}, {Type: key.Rune, Rune: 'z'}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewReader(&chunkReader{chunks: append([]string(nil), tt.chunks...)})
			got := readAll(t, r)

			if len(got) != len(tt.want) {
				t.Fatalf("got %d keys %v, want %d keys %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("key[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if r.Buffered() != 0 {
				t.Errorf("Buffered() = %d after EOF, want 0", r.Buffered())
			}
		})
	}
}

func TestReader_ErrorIsWrappedAndSticky(t *testing.T) {
	t.Parallel()

	boom := errors.New("tty gone")
	r := NewReader(io.MultiReader(strings.NewReader("x"), &failingReader{err: boom}))

	k, err := r.ReadKey()
	if err != nil {
		t.Fatalf("first ReadKey() error: %v", err)
	}
	if k.Type != key.Rune || k.Rune != 'x' {
		t.Fatalf("first ReadKey() = %+v, want rune x", k)
	}

	for i := range 2 {
		_, err = r.ReadKey()
		if !errors.Is(err, boom) {
			t.Fatalf("call %d: ReadKey() error = %v, want wrapping %v", i, err, boom)
		}
		if !strings.Contains(err.Error(), "reading input") {
			t.Errorf("call %d: error %q lacks context", i, err)
		}
	}
}

func TestReader_QueuedArrowsAcrossFullReads(t *testing.T) {
	t.Parallel()

	// 3-byte arrows never line up with the read buffer, so some read ends
	// right after an ESC that starts the next arrow.
	const n = 300
	r := NewReader(strings.NewReader(strings.Repeat("\x1b[B", n)))
	got := readAll(t, r)

	if len(got) != n {
		t.Fatalf("got %d keys, want %d", len(got), n)
	}
	for i, k := range got {
		if k.Type != key.Down {
			t.Fatalf("key %d of %d = %+v, want Down", i, n, k)
		}
	}
}

func TestReader_EscapeAfterFullReadAtEOF(t *testing.T) {
	t.Parallel()

	// A full read ending in ESC waits for more; EOF then settles it as Escape.
	chunk := strings.Repeat("a", readBufSize-1) + "\x1b"
	got := readAll(t, NewReader(&chunkReader{chunks: []string{chunk}}))

	if len(got) != readBufSize {
		t.Fatalf("got %d keys, want %d", len(got), readBufSize)
	}
	if last := got[len(got)-1]; last.Type != key.Escape {
		t.Errorf("last key = %+v, want Escape", last)
	}
}

type failingReader struct {
	err error
}

func (f *failingReader) Read([]byte) (int, error) {
	return 0, f.err
}
