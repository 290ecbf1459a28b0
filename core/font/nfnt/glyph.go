package nfnt

import (
	"fmt"
	"image"
	"strings"
)

// Glyph is the image of a single character, together with its layout
// metrics. Glyphs are immutable.
//
// The image is Size().X pixels wide and as high as the font rectangle. Its
// width may differ from the advance width, as kerned characters may reach
// into their neighbours.
type Glyph struct {
	width  int // advance width
	offset int // left side bearing, may be negative
	size   image.Point
	pix    []bool // row-major, size.X*size.Y
}

func newGlyph(width, offset int, size image.Point, pix []bool) *Glyph {
	if len(pix) != size.X*size.Y {
		panic(fmt.Sprintf("nfnt: glyph of size %v with %d pixels", size, len(pix)))
	}
	return &Glyph{width: width, offset: offset, size: size, pix: pix}
}

// Width is the advance width of the character, in pixels.
func (g *Glyph) Width() int {
	return g.width
}

// Offset is the horizontal distance from the pen position to the left edge
// of the glyph image. Kerned characters have negative offsets.
func (g *Glyph) Offset() int {
	return g.offset
}

// Size returns width and height of the glyph image.
func (g *Glyph) Size() image.Point {
	return g.size
}

// At reports whether pixel (x, y) of the glyph image is set. Pixels outside
// the image are off.
func (g *Glyph) At(x, y int) bool {
	if x < 0 || y < 0 || x >= g.size.X || y >= g.size.Y {
		return false
	}
	return g.pix[y*g.size.X+x]
}

// Pixels returns a copy of the glyph image, row by row.
func (g *Glyph) Pixels() []bool {
	pix := make([]bool, len(g.pix))
	copy(pix, g.pix)
	return pix
}

// IsWhitespace is true if no pixel of the glyph image is set.
func (g *Glyph) IsWhitespace() bool {
	for _, p := range g.pix {
		if p {
			return false
		}
	}
	return true
}

// DebugString dumps the glyph image as a text figure of X's and .'s,
// one line per row.
func (g *Glyph) DebugString() string {
	var sb strings.Builder
	for y := 0; y < g.size.Y; y++ {
		for x := 0; x < g.size.X; x++ {
			if g.pix[y*g.size.X+x] {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Glyph) String() string {
	return fmt.Sprintf("[glyph w=%d off=%d %dx%d]", g.width, g.offset, g.size.X, g.size.Y)
}
