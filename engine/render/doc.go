/*
Package render draws text in classic Macintosh bitmap fonts onto a
monochrome canvas.

A Canvas is a fixed-size bitmap with a current font. Text is measured and
rendered either starting at an origin on the baseline, without any layout,
or inside a rectangle with simple word wrapping:

	c := render.NewCanvas(image.Pt(200, 40))
	c.SetFont(font)
	c.RenderInRect(macroman.FromString("Hello World"), image.Rect(2, 2, 198, 38))
	err := c.EncodePNG(w, 4, true)

Word wrapping is naive: lines are broken at spaces only, and consecutive
spaces are not collapsed. Glyphs which do not fit wholly inside the
rectangle are not drawn at all, there is no pixel clipping.

Rendering never fails. Characters not present in the font are drawn with the
font's missing symbol. A canvas must not be used by more than one goroutine
at a time; fonts may be shared between canvases.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'macfont.render'
func tracer() tracing.Trace {
	return tracing.Select("macfont.render")
}
