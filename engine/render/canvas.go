package render

import (
	"image"
	"image/color"

	"github.com/npillmayer/macfont/core/font/nfnt"
	"github.com/npillmayer/macfont/core/macroman"
)

// Palette indices of canvas pixels.
const (
	paper uint8 = 0
	ink   uint8 = 1
)

var canvasPalette = color.Palette{color.White, color.Black}

// Canvas is a monochrome bitmap to render text onto.
type Canvas struct {
	img  *image.Paletted
	font *nfnt.Font
}

// NewCanvas creates a blank canvas of the given size.
func NewCanvas(size image.Point) *Canvas {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	return &Canvas{
		img: image.NewPaletted(image.Rectangle{Max: size}, canvasPalette),
	}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() image.Point {
	return c.img.Rect.Size()
}

// SetFont sets the font for subsequent measuring and rendering.
func (c *Canvas) SetFont(f *nfnt.Font) {
	c.font = f
}

// Font returns the current font, which may be nil.
func (c *Canvas) Font() *nfnt.Font {
	return c.font
}

// Clear sets all pixels of the canvas to off.
func (c *Canvas) Clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = paper
	}
}

// MeasureWidth returns the sum of the advance widths of the characters of s
// in the current font. Whitespace is included, nothing is trimmed.
// Without a current font, the width is 0.
func (c *Canvas) MeasureWidth(s macroman.String) int {
	if c.font == nil {
		return 0
	}
	w := 0
	for i := 0; i < s.Len(); i++ {
		w += c.font.ImageForCharacter(int(s.At(i))).Width()
	}
	return w
}

// RenderAt renders s onto the canvas, without any layout. origin is the
// point on the baseline where the first character starts. Pixels falling
// outside the canvas are dropped.
func (c *Canvas) RenderAt(s macroman.String, origin image.Point) {
	if c.font == nil {
		tracer().Infof("canvas has no font, cannot render %q", s.String())
		return
	}
	c.renderLine(s, origin, nil)
}

// renderLine draws the glyphs of s side by side, starting at origin on the
// baseline. If clip is non-nil, glyphs whose image does not fit wholly
// inside clip are skipped.
func (c *Canvas) renderLine(s macroman.String, origin image.Point, clip *image.Rectangle) {
	pen := origin.X
	top := origin.Y - c.font.Ascent()
	for i := 0; i < s.Len(); i++ {
		g := c.font.ImageForCharacter(int(s.At(i)))
		at := image.Pt(pen+g.Offset(), top)
		if clip == nil || glyphBounds(g, at).In(*clip) {
			c.drawGlyph(g, at)
		} else {
			tracer().Debugf("glyph for code %d at %v does not fit into %v", s.At(i), at, *clip)
		}
		pen += g.Width()
	}
}

func glyphBounds(g *nfnt.Glyph, at image.Point) image.Rectangle {
	return image.Rectangle{Min: at, Max: at.Add(g.Size())}
}

// drawGlyph ORs the set pixels of g onto the canvas, with the top left
// corner of the glyph image at position at.
func (c *Canvas) drawGlyph(g *nfnt.Glyph, at image.Point) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if !g.At(x, y) {
				continue
			}
			if p := at.Add(image.Pt(x, y)); p.In(c.img.Rect) {
				c.img.SetColorIndex(p.X, p.Y, ink)
			}
		}
	}
}

// Pixel reports whether the pixel at (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if !image.Pt(x, y).In(c.img.Rect) {
		return false
	}
	return c.img.ColorIndexAt(x, y) == ink
}
