// ABOUTME: Pattern encodes one 2x4 braille cell as an offset into the U+2800..U+28FF block
// ABOUTME: Dot-to-bit layout follows Unicode dot numbering; encoding never allocates

package braille

import (
	"fmt"
	"unicode/utf8"
)

const (
	// Base is the blank braille cell; every pattern is Base + offset.
	Base rune = 0x2800

	// UTF8Len is the encoded size of every braille glyph.
	UTF8Len = 3

	// Cols and Rows are the dot dimensions of one cell.
	Cols = 2
	Rows = 4
)

// All 256 offsets stay inside the block and inside the 3-byte UTF-8 range.
// A violation makes these constants negative and fails compilation.
const (
	_ uint = 0x28FF - uint(Base+0xFF)
	_ uint = 0xFFFF - uint(Base+0xFF)
	_ uint = uint(Base) - 0x0800
)

// layoutTable packs the bit index of dot (x, y) into the nibble starting at
// bit 16x+4y: column 0 in the low half, column 1 in the high half.
//
//	x=0: y0=0 y1=1 y2=2 y3=6
//	x=1: y0=3 y1=4 y2=5 y3=7
const layoutTable uint32 = 0x7543_6210

// Column addresses a dot column, 0 (left) or 1 (right).
type Column uint8

// Row addresses a dot row, 0 (top) to 3 (bottom).
type Row uint8

// bit returns the pattern bit that holds dot (x, y).
// Out-of-range coordinates are a programming error and panic.
func bit(x Column, y Row) uint {
	if x >= Cols || y >= Rows {
		panic(fmt.Sprintf("braille: dot (%d, %d) outside 2x4 cell", x, y))
	}
	return uint(layoutTable>>(16*uint(x)+4*uint(y))) & 0xF
}

// Pattern is one braille glyph. Bit b is set when the dot mapped to b is raised.
type Pattern uint8

// Empty is the blank cell, U+2800.
const Empty Pattern = 0

// FromOffset returns the pattern at the given offset from Base.
func FromOffset(offset uint8) Pattern {
	return Pattern(offset)
}

// Offset returns the distance of p from Base.
func (p Pattern) Offset() uint8 {
	return uint8(p)
}

// With returns p with dot (x, y) raised.
func (p Pattern) With(x Column, y Row) Pattern {
	return p | Pattern(1)<<bit(x, y)
}

// Set returns p with dot (x, y) raised when on is true and p unchanged otherwise.
// Set never lowers a dot.
func (p Pattern) Set(x Column, y Row, on bool) Pattern {
	if !on {
		return p
	}
	return p.With(x, y)
}

// Has reports whether dot (x, y) is raised.
func (p Pattern) Has(x Column, y Row) bool {
	return p&(Pattern(1)<<bit(x, y)) != 0
}

// Rune returns the codepoint of p.
func (p Pattern) Rune() rune {
	return Base + rune(p)
}

// EncodeUTF8 writes the glyph into buf and returns the written span.
func (p Pattern) EncodeUTF8(buf *[UTF8Len]byte) []byte {
	n := utf8.EncodeRune(buf[:], p.Rune())
	return buf[:n]
}

// AppendUTF8 appends the glyph to dst.
func (p Pattern) AppendUTF8(dst []byte) []byte {
	return utf8.AppendRune(dst, p.Rune())
}

// String returns the glyph as text.
func (p Pattern) String() string {
	return string(p.Rune())
}

// FromBlock builds a pattern by sampling all eight dots of a cell.
func FromBlock(sample func(x Column, y Row) bool) Pattern {
	p := Empty
	for x := Column(0); x < Cols; x++ {
		for y := Row(0); y < Rows; y++ {
			p = p.Set(x, y, sample(x, y))
		}
	}
	return p
}
