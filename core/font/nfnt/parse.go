package nfnt

import (
	"bytes"
	"encoding/binary"
	"image"

	"github.com/bits-and-blooms/bitset"
)

// FontHeader is the fixed-size record at the start of every FONT/NFNT
// resource. Field names follow Inside Macintosh. Signs are kept as stored,
// e.g. KernMax is the negative of the maximum kern.
type FontHeader struct {
	FontType    uint16
	FirstChar   int16
	LastChar    int16
	WidMax      int16
	KernMax     int16
	NDescent    int16
	FRectWidth  int16
	FRectHeight int16
	OWTLoc      uint16
	Ascent      int16
	Descent     int16
	Leading     int16
	RowWords    int16
}

// HeaderSize is the size in bytes of a FontHeader.
const HeaderSize = 26

// owTLocPosition is the byte position of field OWTLoc. The offset/width
// table is located relative to it.
const owTLocPosition = 16

// Font type flags
const (
	HasImageHeightTable uint16 = 0x0001
	HasGlyphWidthTable  uint16 = 0x0002
	PixelDepthMask      uint16 = 0x000c
	HasFontColorTable   uint16 = 0x0080
	FixedWidthFont      uint16 = 0x2000

	PropFont  uint16 = 0x9000 // classic proportional font
	FixedFont uint16 = 0xb000 // classic fixed-width font
)

// Character codes are single bytes.
const maxCharCount = 256

// Parse parses a classic Macintosh bitmap font from a FONT or NFNT resource.
// resourceID is the resource's ID as a string of decimal digits; font name
// and point size are derived from it.
//
// Parse either returns a completely decoded font or an error. Structural
// defects of the data are reported as *MalformedResourceError, an invalid
// resource ID as ErrInvalidIdentifier.
// The font does not keep a reference to data.
func Parse(data []byte, resourceID string) (*Font, error) {
	resID, name, size, err := ParseResourceID(resourceID)
	if err != nil {
		return nil, err
	}
	src := binarySegm(data)
	h := FontHeader{}
	if err := binary.Read(bytes.NewReader(src), binary.BigEndian, &h); err != nil {
		return nil, errFontFormat(CheckHeader, "need %d bytes, have %d", HeaderSize, len(src))
	}
	tracer().Debugf("header of font %s = %+v", resourceID, h)
	if err := checkHeader(&h); err != nil {
		return nil, err
	}
	f := &Font{
		header:    h,
		resID:     resID,
		name:      name,
		size:      size,
		firstChar: int(h.FirstChar),
		lastChar:  int(h.LastChar),
	}
	slots := f.lastChar - f.firstChar + 2 // including the missing glyph
	//
	// bit image
	height, stride := int(h.FRectHeight), 2*int(h.RowWords)
	bitImage, err := src.view(HeaderSize, stride*height)
	if err != nil {
		return nil, errFontFormat(CheckBitImage, "%d rows of %d bytes exceed resource size %d",
			height, stride, len(src))
	}
	strike := strikeFrom(bitImage, stride, height)
	//
	// location table: one more entry than slots, the last one terminates the missing glyph
	locStart := HeaderSize + len(bitImage)
	b, err := src.view(locStart, len(src)-locStart)
	if err != nil {
		return nil, errFontFormat(CheckLocTable, "table starts beyond end of resource")
	}
	locTable, err := b.words(slots + 1)
	if err != nil {
		return nil, errFontFormat(CheckLocTable, "%d entries exceed resource size %d",
			slots+1, len(src))
	}
	if err := checkLocations(locTable, strike.BitWidth()); err != nil {
		return nil, err
	}
	//
	// offset/width table
	locEnd := locStart + 2*len(locTable)
	owStart := offsetWidthTablePosition(&h, locEnd)
	if owStart < locEnd {
		return nil, errFontFormat(CheckOWTable, "table at %d overlaps location table ending at %d",
			owStart, locEnd)
	}
	b, err = src.view(owStart, len(src)-owStart)
	if err != nil {
		return nil, errFontFormat(CheckOWTable, "table starts beyond end of resource")
	}
	owTable, err := b.words(slots)
	if err != nil {
		return nil, errFontFormat(CheckOWTable, "%d entries exceed resource size %d", slots, len(src))
	}
	if h.FontType&(HasImageHeightTable|HasGlyphWidthTable) != 0 {
		tracer().Infof("font %s has optional width/height tables, will not be interpreted", resourceID)
	}
	if err := f.extractGlyphs(strike, locTable, owTable); err != nil {
		return nil, err
	}
	f.proportional = f.deriveProportional()
	tracer().Infof("parsed font %s (%s %d): %d present characters",
		resourceID, name, size, f.CountOfPresentCharacters())
	return f, nil
}

func checkHeader(h *FontHeader) error {
	if h.FontType&PixelDepthMask != 0 {
		return errFontFormat(CheckHeader, "font type %#04x: only 1-bit fonts are supported", h.FontType)
	}
	if h.FirstChar < 0 || h.LastChar < h.FirstChar {
		return errFontFormat(CheckCharRange, "characters %d to %d", h.FirstChar, h.LastChar)
	}
	if int(h.LastChar) >= maxCharCount || int(h.LastChar)-int(h.FirstChar)+1 > maxCharCount {
		return errFontFormat(CheckCharRange, "characters %d to %d exceed single byte codes",
			h.FirstChar, h.LastChar)
	}
	if h.FRectHeight < 0 || h.RowWords < 0 {
		return errFontFormat(CheckFontRect, "height %d, row words %d", h.FRectHeight, h.RowWords)
	}
	return nil
}

// checkLocations makes sure every glyph image lies inside the strike.
func checkLocations(locTable []uint16, bitWidth int) error {
	for i, loc := range locTable {
		if int(loc) > bitWidth {
			return errFontFormat(CheckLocBounds, "location %d of entry %d beyond strike width %d",
				loc, i, bitWidth)
		}
		if i > 0 && loc < locTable[i-1] {
			return errFontFormat(CheckLocOrder, "location %d of entry %d precedes %d",
				loc, i, locTable[i-1])
		}
	}
	return nil
}

// offsetWidthTablePosition calculates the byte position of the offset/width
// table. "nDescent: If this font has very large tables and this value is
// positive, this value is the high word of the offset to the width/offset
// table." An offset of 0 places the table right after the location table.
func offsetWidthTablePosition(h *FontHeader, locEnd int) int {
	owTLoc := int(h.OWTLoc)
	if h.NDescent > 0 {
		owTLoc |= int(h.NDescent) << 16
	}
	if owTLoc == 0 {
		return locEnd
	}
	return owTLocPosition + 2*owTLoc
}

// extractGlyphs cuts all glyph images out of the strike. The slot after
// lastChar holds the missing glyph.
func (f *Font) extractGlyphs(strike *Strike, locTable, owTable []uint16) error {
	slots := len(owTable)
	f.glyphs = make([]*Glyph, slots)
	f.present = bitset.New(uint(slots - 1))
	kernMax := int(f.header.KernMax)
	for i := 0; i < slots; i++ {
		ow := owTable[i]
		present := ow != 0xffff
		width, offset := 0, 0
		if present {
			offset = kernMax + int(ow>>8)
			width = int(ow & 0xff)
		}
		w := int(locTable[i+1]) - int(locTable[i])
		pix, err := strike.Extract(int(locTable[i]), w)
		if err != nil {
			return err
		}
		if !present && w > 0 {
			tracer().Debugf("character %d is not present, but has an image of width %d",
				f.firstChar+i, w)
		}
		if width > int(f.header.WidMax) {
			tracer().Debugf("character %d has width %d > widMax %d", f.firstChar+i, width, f.header.WidMax)
		}
		f.glyphs[i] = newGlyph(width, offset, image.Pt(w, strike.Height()), pix)
		if present && i < slots-1 {
			f.present.Set(uint(i))
		}
	}
	if owTable[slots-1] == 0xffff {
		tracer().Infof("font does not define a missing symbol")
	}
	return nil
}

// deriveProportional checks if the present characters differ in width.
func (f *Font) deriveProportional() bool {
	prop, width := false, -1
	for i, ok := f.present.NextSet(0); ok; i, ok = f.present.NextSet(i + 1) {
		w := f.glyphs[i].Width()
		if width >= 0 && w != width {
			prop = true
			break
		}
		width = w
	}
	if fixed := f.header.FontType&FixedWidthFont != 0; fixed == prop {
		tracer().Debugf("font type %#04x does not match derived proportional=%v",
			f.header.FontType, prop)
	}
	return prop
}
