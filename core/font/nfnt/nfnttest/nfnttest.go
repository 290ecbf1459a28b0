/*
Package nfnttest builds bitmap font resources for tests.

Fonts are described glyph by glyph, with images drawn as text figures:

	f := nfnttest.Font{
		FirstChar: 'A', LastChar: 'A', Height: 2, Ascent: 2,
		Chars: map[int]nfnttest.Char{
			'A': {Width: 3, Rows: []string{".X.", "X.X"}},
		},
	}
	data := f.Build()

Build packs the images into a strike and writes header, bit image, location
table and offset/width table in the layout nfnt.Parse expects.
*/
package nfnttest

import (
	"encoding/binary"
	"fmt"

	"github.com/npillmayer/macfont/core/font/nfnt"
)

// Char describes a single character of a font.
type Char struct {
	Offset  int      // offset byte of the offset/width entry
	Width   int      // advance width
	Rows    []string // image, 'X' for a set pixel; nil for an empty image
	Missing bool     // mark as not present
}

// Font describes a font resource. Characters of the range FirstChar…LastChar
// not contained in Chars are marked as not present.
type Font struct {
	FontType   uint16
	FirstChar  int
	LastChar   int
	WidMax     int
	KernMax    int
	NDescent   int
	FRectWidth int
	Height     int
	Ascent     int
	Descent    int
	Leading    int
	Chars      map[int]Char
	Missing    Char // the missing symbol
	NoOWTLoc   bool // leave owTLoc 0
	Terminator bool // append the -1 entry after the offset/width table
}

// Pixels converts a text figure to a glyph width and row-major pixels.
func Pixels(rows []string, height int) (int, []bool) {
	if len(rows) == 0 {
		return 0, []bool{}
	}
	if len(rows) != height {
		panic(fmt.Sprintf("nfnttest: image has %d rows, font height is %d", len(rows), height))
	}
	w := len(rows[0])
	pix := make([]bool, 0, w*height)
	for _, row := range rows {
		if len(row) != w {
			panic("nfnttest: image rows differ in length")
		}
		for _, c := range row {
			pix = append(pix, c == 'X')
		}
	}
	return w, pix
}

// Build creates the binary resource.
func (f Font) Build() []byte {
	slots := f.LastChar - f.FirstChar + 2
	chars := make([]Char, slots)
	for i := 0; i < slots-1; i++ {
		if c, ok := f.Chars[f.FirstChar+i]; ok {
			chars[i] = c
		} else {
			chars[i] = Char{Missing: true}
		}
	}
	chars[slots-1] = f.Missing
	//
	// glyph locations
	loc := make([]uint16, slots+1)
	images := make([][]bool, slots)
	for i, c := range chars {
		w, pix := Pixels(c.Rows, f.Height)
		images[i] = pix
		loc[i+1] = loc[i] + uint16(w)
	}
	rowWords := (int(loc[slots]) + 15) / 16
	strike := nfnt.NewStrike(rowWords, f.Height)
	for i := range chars {
		w := int(loc[i+1] - loc[i])
		if err := strike.Pack(int(loc[i]), w, images[i]); err != nil {
			panic(err)
		}
	}
	//
	// offset/width entries
	ow := make([]uint16, slots, slots+1)
	for i, c := range chars {
		if c.Missing {
			ow[i] = 0xffff
		} else {
			ow[i] = uint16(c.Offset&0xff)<<8 | uint16(c.Width&0xff)
		}
	}
	if f.Terminator {
		ow = append(ow, 0xffff)
	}
	owStart := nfnt.HeaderSize + len(strike.Bytes()) + 2*len(loc)
	owTLoc := uint16((owStart - 16) / 2)
	if f.NoOWTLoc {
		owTLoc = 0
	}
	h := nfnt.FontHeader{
		FontType:    f.FontType,
		FirstChar:   int16(f.FirstChar),
		LastChar:    int16(f.LastChar),
		WidMax:      int16(f.WidMax),
		KernMax:     int16(f.KernMax),
		NDescent:    int16(f.NDescent),
		FRectWidth:  int16(f.FRectWidth),
		FRectHeight: int16(f.Height),
		OWTLoc:      owTLoc,
		Ascent:      int16(f.Ascent),
		Descent:     int16(f.Descent),
		Leading:     int16(f.Leading),
		RowWords:    int16(rowWords),
	}
	data := make([]byte, 0, owStart+2*len(ow))
	data = binary.BigEndian.AppendUint16(data, h.FontType)
	for _, v := range []int16{h.FirstChar, h.LastChar, h.WidMax, h.KernMax, h.NDescent,
		h.FRectWidth, h.FRectHeight} {
		data = binary.BigEndian.AppendUint16(data, uint16(v))
	}
	data = binary.BigEndian.AppendUint16(data, h.OWTLoc)
	for _, v := range []int16{h.Ascent, h.Descent, h.Leading, h.RowWords} {
		data = binary.BigEndian.AppendUint16(data, uint16(v))
	}
	data = append(data, strike.Bytes()...)
	for _, l := range loc {
		data = binary.BigEndian.AppendUint16(data, l)
	}
	for _, e := range ow {
		data = binary.BigEndian.AppendUint16(data, e)
	}
	return data
}

// Sample describes a small proportional font, 7 pixels high, with a space,
// the letters A, B, H, i, l and a box as missing symbol.
func Sample() Font {
	return Font{
		FontType:   nfnt.PropFont,
		FirstChar:  ' ',
		LastChar:   'l',
		WidMax:     5,
		KernMax:    0,
		NDescent:   -1,
		FRectWidth: 4,
		Height:     7,
		Ascent:     6,
		Descent:    1,
		Leading:    1,
		Chars: map[int]Char{
			' ': {Width: 3},
			'A': {Width: 5, Rows: []string{
				".XX.", "X..X", "X..X", "XXXX", "X..X", "X..X", "....",
			}},
			'B': {Width: 5, Rows: []string{
				"XXX.", "X..X", "XXX.", "X..X", "X..X", "XXX.", "....",
			}},
			'H': {Width: 5, Rows: []string{
				"X..X", "X..X", "XXXX", "X..X", "X..X", "X..X", "....",
			}},
			'i': {Width: 2, Rows: []string{
				"X", ".", "X", "X", "X", "X", ".",
			}},
			'l': {Width: 2, Rows: []string{
				"X", "X", "X", "X", "X", "X", ".",
			}},
		},
		Missing: Char{Width: 5, Rows: []string{
			"XXXX", "X..X", "X..X", "X..X", "X..X", "XXXX", "....",
		}},
		Terminator: true,
	}
}

// SampleResourceID is Geneva 7.
const SampleResourceID = "391"

// SampleFont parses Sample. It panics if parsing fails.
func SampleFont() *nfnt.Font {
	f, err := nfnt.Parse(Sample().Build(), SampleResourceID)
	if err != nil {
		panic(err)
	}
	return f
}
