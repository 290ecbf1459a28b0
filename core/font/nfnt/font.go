package nfnt

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Font is a decoded bitmap font. It holds the font's metrics and the images
// of all of its characters, plus the image of the missing symbol.
//
// A Font is read-only after Parse returns and may be shared freely.
type Font struct {
	header       FontHeader
	resID        int
	name         string
	size         int
	firstChar    int
	lastChar     int
	proportional bool
	glyphs       []*Glyph       // firstChar…lastChar, missing glyph
	present      *bitset.BitSet // index is code - firstChar
}

// ResourceID is the numeric resource ID the font has been parsed with.
func (f *Font) ResourceID() int { return f.resID }

// Name is the font family name derived from the resource ID, if known.
func (f *Font) Name() string { return f.name }

// PointSize is the font size derived from the resource ID.
func (f *Font) PointSize() int { return f.size }

// IsProportional is true if the present characters differ in advance width.
func (f *Font) IsProportional() bool { return f.proportional }

// Header returns the font record as stored in the resource.
func (f *Font) Header() FontHeader { return f.header }

func (f *Font) FontType() uint16 { return f.header.FontType }
func (f *Font) FirstChar() int   { return f.firstChar }
func (f *Font) LastChar() int    { return f.lastChar }
func (f *Font) WidMax() int      { return int(f.header.WidMax) }

// KernMax is the negative of the maximum kern, as stored in the resource.
func (f *Font) KernMax() int { return int(f.header.KernMax) }

// NDescent is the negative of the descent, as stored in the resource.
// For very large fonts it holds the high word of the offset/width table
// location instead.
func (f *Font) NDescent() int { return int(f.header.NDescent) }

func (f *Font) FRectWidth() int  { return int(f.header.FRectWidth) }
func (f *Font) FRectHeight() int { return int(f.header.FRectHeight) }
func (f *Font) Ascent() int      { return int(f.header.Ascent) }

// Descent is the descent as stored in the resource.
func (f *Font) Descent() int { return int(f.header.Descent) }

func (f *Font) Leading() int { return int(f.header.Leading) }

// LineHeight is ascent plus descent plus leading.
func (f *Font) LineHeight() int {
	return f.Ascent() + f.Descent() + f.Leading()
}

// GlyphCount is the number of glyph slots of the font, i.e. the character
// range plus the missing glyph.
func (f *Font) GlyphCount() int {
	return len(f.glyphs)
}

// CountOfPresentCharacters counts the characters of the font's character
// range which are present. The missing glyph is not counted.
func (f *Font) CountOfPresentCharacters() int {
	return int(f.present.Count())
}

// CharacterIsPresent is false for codes outside of the font's character range
// and for characters marked as not present.
func (f *Font) CharacterIsPresent(code int) bool {
	if code < f.firstChar || code > f.lastChar {
		return false
	}
	return f.present.Test(uint(code - f.firstChar))
}

// PresentCharacters lists the codes of all present characters, in ascending
// order.
func (f *Font) PresentCharacters() []int {
	codes := make([]int, 0, f.present.Count())
	for i, ok := f.present.NextSet(0); ok; i, ok = f.present.NextSet(i + 1) {
		codes = append(codes, f.firstChar+int(i))
	}
	return codes
}

// ImageForCharacter returns the glyph for a character code. For characters
// which are not present, the missing glyph is returned.
func (f *Font) ImageForCharacter(code int) *Glyph {
	if !f.CharacterIsPresent(code) {
		return f.MissingCharacterImage()
	}
	return f.glyphs[code-f.firstChar]
}

// MissingCharacterImage returns the glyph of the missing symbol. It may be
// empty if the font does not define a visible missing symbol.
func (f *Font) MissingCharacterImage() *Glyph {
	return f.glyphs[len(f.glyphs)-1]
}

func (f *Font) String() string {
	name := f.name
	if name == "" {
		name = fmt.Sprintf("#%d", f.resID>>7)
	}
	return fmt.Sprintf("[font %d %s %dpt chars %d…%d]", f.resID, name, f.size,
		f.firstChar, f.lastChar)
}
