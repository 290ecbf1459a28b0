/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Geneva". Classic Mac OS
identifies a family by the upper bits of a font resource ID.

* A "font" is a bitmap font resource (FONT or NFNT) of a family at a
fixed pixel size, e.g. "Geneva 12". See package nfnt.

* A "typecase" is a font prepared for drawing. The name is reminiscent of
the wooden boxes of typesetters in the era of metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently, actually more or less in an opposite manner. TypeCase
implements golang.org/x/image/font.Face, thus bitmap fonts may be drawn with
font.Drawer onto any draw.Image.

Bitmap fonts have no kerning pairs and are not scalable, a TypeCase always
draws at the resource's native size, one pixel per dot.
*/
package font

import (
	"image"

	"github.com/npillmayer/macfont/core/font/nfnt"
	"github.com/npillmayer/macfont/core/macroman"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'macfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("macfont.fonts")
}

// TypeCase adapts a bitmap font to the golang.org/x/image/font.Face interface.
// Runes are mapped to character codes through Mac OS Roman.
//
// Characters not present in the font are reported with ok == false, but the
// font's missing symbol is returned nevertheless.
type TypeCase struct {
	font  *nfnt.Font
	masks map[*nfnt.Glyph]*image.Alpha
}

var _ xfont.Face = &TypeCase{}

// NewTypeCase creates a typecase for a parsed bitmap font.
// f must not be nil.
func NewTypeCase(f *nfnt.Font) *TypeCase {
	return &TypeCase{
		font:  f,
		masks: make(map[*nfnt.Glyph]*image.Alpha),
	}
}

// Font returns the underlying bitmap font.
func (tc *TypeCase) Font() *nfnt.Font {
	return tc.font
}

// PtSize is the nominal point size of the font.
func (tc *TypeCase) PtSize() float64 {
	return float64(tc.font.PointSize())
}

func (tc *TypeCase) glyph(r rune) (*nfnt.Glyph, bool) {
	code, ok := macroman.Code(r)
	if !ok {
		tracer().Debugf("rune %q has no Mac OS Roman code", r)
		return tc.font.MissingCharacterImage(), false
	}
	return tc.font.ImageForCharacter(int(code)), tc.font.CharacterIsPresent(int(code))
}

// Close is a no-op.
func (tc *TypeCase) Close() error {
	return nil
}

// Glyph returns the drawing information for r. The glyph's top is placed
// ascent pixels above the dot, its left edge offset by the glyph's offset.
// Dots are rounded to whole pixels.
func (tc *TypeCase) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	g, ok := tc.glyph(r)
	at := image.Pt(dot.X.Round()+g.Offset(), dot.Y.Round()-tc.font.Ascent())
	dr = image.Rectangle{Min: at, Max: at.Add(g.Size())}
	return dr, tc.mask(g), image.Point{}, fixed.I(g.Width()), ok
}

// mask converts a glyph image to an alpha mask. Masks are cached per glyph,
// a TypeCase is therefore not safe for concurrent use.
func (tc *TypeCase) mask(g *nfnt.Glyph) *image.Alpha {
	if m, ok := tc.masks[g]; ok {
		return m
	}
	size := g.Size()
	m := image.NewAlpha(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if g.At(x, y) {
				m.Pix[y*m.Stride+x] = 0xff
			}
		}
	}
	tc.masks[g] = m
	return m
}

// GlyphBounds returns the bounding box of r's image, relative to the dot.
func (tc *TypeCase) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g, ok := tc.glyph(r)
	top := -tc.font.Ascent()
	bounds = fixed.R(g.Offset(), top, g.Offset()+g.Size().X, top+g.Size().Y)
	return bounds, fixed.I(g.Width()), ok
}

// GlyphAdvance returns the advance width of r.
func (tc *TypeCase) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	g, ok := tc.glyph(r)
	return fixed.I(g.Width()), ok
}

// Kern is always 0, bitmap font resources carry no kerning pairs.
func (tc *TypeCase) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// Metrics returns the font's line metrics. Cap height and x-height are
// measured from the glyphs for 'H' and 'x', if present.
func (tc *TypeCase) Metrics() xfont.Metrics {
	return xfont.Metrics{
		Height:    fixed.I(tc.font.LineHeight()),
		Ascent:    fixed.I(tc.font.Ascent()),
		Descent:   fixed.I(tc.font.Descent()),
		XHeight:   fixed.I(tc.inkAboveBaseline('x')),
		CapHeight: fixed.I(tc.inkAboveBaseline('H')),
	}
}

// inkAboveBaseline measures the height of the topmost set pixel of a
// character above the baseline.
func (tc *TypeCase) inkAboveBaseline(code int) int {
	if !tc.font.CharacterIsPresent(code) {
		return 0
	}
	g := tc.font.ImageForCharacter(code)
	for y := 0; y < g.Size().Y; y++ {
		for x := 0; x < g.Size().X; x++ {
			if g.At(x, y) {
				return tc.font.Ascent() - y
			}
		}
	}
	return 0
}
