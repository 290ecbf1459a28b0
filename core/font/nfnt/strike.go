package nfnt

// Strike is the bit image of a bitmap font: all glyph images set side by
// side, one bit per pixel, most significant bit leftmost. Rows are
// rowWords*2 bytes wide.
//
// All bit addressing of glyph images is done by Extract and Pack.
type Strike struct {
	bits   binarySegm
	stride int // bytes per row
	height int // rows
}

// NewStrike creates an empty strike for a given row width (in 16-bit words)
// and height. Negative arguments are treated as 0.
func NewStrike(rowWords, height int) *Strike {
	if rowWords < 0 {
		rowWords = 0
	}
	if height < 0 {
		height = 0
	}
	return &Strike{
		bits:   make(binarySegm, rowWords*2*height),
		stride: rowWords * 2,
		height: height,
	}
}

// strikeFrom wraps existing bit image data. The caller has to make sure that
// bits holds at least stride*height bytes.
func strikeFrom(bits binarySegm, stride, height int) *Strike {
	return &Strike{bits: bits, stride: stride, height: height}
}

// Bytes returns the strike's packed bit image.
func (s *Strike) Bytes() []byte {
	return s.bits
}

// BitWidth is the width of a row in bits.
func (s *Strike) BitWidth() int {
	return s.stride * 8
}

// Height is the number of rows.
func (s *Strike) Height() int {
	return s.height
}

// row returns row y of the strike.
func (s *Strike) row(y int) (binarySegm, error) {
	return s.bits.view(y*s.stride, s.stride)
}

// Extract slices a glyph image out of the strike. The glyph starts at bit
// column start and is width bits wide. The result has width*Height() entries,
// row-major. Reading outside of a row is reported as ErrInternalConsistency:
// glyph extents are validated by the parser before extraction.
func (s *Strike) Extract(start, width int) ([]bool, error) {
	if start < 0 || width < 0 || start+width > s.BitWidth() {
		return nil, errInternal("glyph outside of strike")
	}
	pix := make([]bool, width*s.height)
	for y := 0; y < s.height; y++ {
		row, err := s.row(y)
		if err != nil {
			return nil, errInternal("strike row outside of bit image")
		}
		for x := 0; x < width; x++ {
			col := start + x
			if col>>3 >= len(row) {
				return nil, errInternal("bit column outside of strike row")
			}
			pix[y*width+x] = row[col>>3]&(0x80>>(col&7)) != 0
		}
	}
	return pix, nil
}

// Pack is the inverse of Extract: it writes a glyph image of the given width
// into the strike, starting at bit column start. pix must hold width*Height()
// entries.
func (s *Strike) Pack(start, width int, pix []bool) error {
	if start < 0 || width < 0 || start+width > s.BitWidth() || len(pix) != width*s.height {
		return errInternal("glyph does not fit strike")
	}
	for y := 0; y < s.height; y++ {
		row, err := s.row(y)
		if err != nil {
			return errInternal("strike row outside of bit image")
		}
		for x := 0; x < width; x++ {
			col := start + x
			mask := byte(0x80 >> (col & 7))
			if pix[y*width+x] {
				row[col>>3] |= mask
			} else {
				row[col>>3] &^= mask
			}
		}
	}
	return nil
}
