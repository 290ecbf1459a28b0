package render

import (
	"image"

	"github.com/npillmayer/macfont/core/macroman"
)

const (
	space = 0x20
	cr    = 0x0d
	lf    = 0x0a
)

// RenderInRect renders s inside rect, breaking lines at spaces where the
// next word would overflow the rectangle's width. Carriage returns and line
// feeds force a line break. The first baseline is at rect.Min.Y plus the
// font's ascent, subsequent baselines are one line height apart.
//
// Glyphs whose bitmap does not fit completely inside rect are skipped.
func (c *Canvas) RenderInRect(s macroman.String, rect image.Rectangle) {
	if c.font == nil {
		tracer().Infof("canvas has no font, cannot render %q", s.String())
		return
	}
	lines := c.breakLines(s, rect.Dx())
	tracer().Debugf("text broken into %d lines for width %d", len(lines), rect.Dx())
	baseline := rect.Min.Y + c.font.Ascent()
	for _, line := range lines {
		c.renderLine(line, image.Pt(rect.Min.X, baseline), &rect)
		baseline += c.font.LineHeight()
	}
}

// RenderCharSet renders every present character of the current font inside
// rect, wrapping after any glyph.
func (c *Canvas) RenderCharSet(rect image.Rectangle) {
	if c.font == nil {
		return
	}
	codes := c.font.PresentCharacters()
	b := make([]byte, len(codes))
	for i, code := range codes {
		b[i] = byte(code)
	}
	s := macroman.Decode(b)
	baseline := rect.Min.Y + c.font.Ascent()
	start, pen := 0, 0
	for i := 0; i < s.Len(); i++ {
		w := c.font.ImageForCharacter(int(s.At(i))).Width()
		if pen > 0 && pen+w > rect.Dx() {
			c.renderLine(s.Substring(start, i), image.Pt(rect.Min.X, baseline), &rect)
			baseline += c.font.LineHeight()
			start, pen = i, 0
		}
		pen += w
	}
	c.renderLine(s.Substring(start, s.Len()), image.Pt(rect.Min.X, baseline), &rect)
}

// breakLines splits s greedily into lines of at most width pixels. A word
// together with its trailing spaces stays on one line; only the visible part
// of a word counts against the width. A word wider than width gets a line of
// its own.
func (c *Canvas) breakLines(s macroman.String, width int) []macroman.String {
	var lines []macroman.String
	start, pen := 0, 0
	for i := 0; i < s.Len(); {
		if ch := s.At(i); ch == cr || ch == lf {
			lines = append(lines, s.Substring(start, i))
			i++
			if ch == cr && i < s.Len() && s.At(i) == lf {
				i++
			}
			start, pen = i, 0
			continue
		}
		j := i
		for j < s.Len() && !isBreak(s.At(j)) {
			j++
		}
		visible := c.MeasureWidth(s.Substring(i, j))
		for j < s.Len() && s.At(j) == space {
			j++
		}
		if pen > 0 && pen+visible > width {
			lines = append(lines, s.Substring(start, i))
			start, pen = i, 0
		}
		pen += c.MeasureWidth(s.Substring(i, j))
		i = j
	}
	return append(lines, s.Substring(start, s.Len()))
}

func isBreak(ch byte) bool {
	return ch == space || ch == cr || ch == lf
}
