// ABOUTME: FrameWriter turns a binary bitmap into braille rows and writes one whole frame per call
// ABOUTME: Each frame is clear + home, rows of 3-byte glyphs ending in \r\n, then the status line

package render

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"slices"

	"github.com/mauromedda/brailleview/pkg/braille"
	"github.com/mauromedda/brailleview/pkg/tui/terminal"
)

// FrameWriter encodes frames onto w. The row buffer is reused across
// frames and only grows. After a write error every later Write fails.
type FrameWriter struct {
	out *bufio.Writer
	row []byte
}

// NewFrameWriter returns a FrameWriter that writes to w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{out: bufio.NewWriterSize(w, 64*1024)}
}

// EncodeRow appends the glyphs for glyph row r of bits to dst. A dot is on
// when its pixel is nonzero. Pixels past the last whole glyph are ignored.
func EncodeRow(dst []byte, bits *image.Gray, r int) []byte {
	b := bits.Rect
	cols := b.Dx() / braille.Cols
	y0 := b.Min.Y + r*braille.Rows
	start := len(dst)
	dst = slices.Grow(dst, braille.UTF8Len*cols)[:start+braille.UTF8Len*cols]
	for c := range cols {
		x0 := b.Min.X + c*braille.Cols
		p := braille.FromBlock(func(x braille.Column, y braille.Row) bool {
			return bits.Pix[bits.PixOffset(x0+int(x), y0+int(y))] != 0
		})
		off := start + c*braille.UTF8Len
		p.EncodeUTF8((*[braille.UTF8Len]byte)(dst[off : off+braille.UTF8Len]))
	}
	return dst
}

// Write draws bits followed by status. Nothing reaches the terminal until
// the whole frame is assembled.
func (f *FrameWriter) Write(bits *image.Gray, status string) error {
	cols := bits.Rect.Dx() / braille.Cols
	rows := bits.Rect.Dy() / braille.Rows
	if need := braille.UTF8Len*cols + 2; cap(f.row) < need {
		f.row = make([]byte, 0, need)
	}

	f.out.WriteString(terminal.ClearScreen + terminal.CursorHome)
	for r := range rows {
		f.row = append(EncodeRow(f.row[:0], bits, r), '\r', '\n')
		f.out.Write(f.row)
	}
	f.out.WriteString(status)
	f.out.WriteString("\r\n")

	if err := f.out.Flush(); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
