package nfnt

import "errors"

// Reading bytes from a font resource's binary representation

var errBufferBounds = errors.New("buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

// binarySegm is a segment of byte data of a font resource.
// All access to resource data is routed through its bounds-checked methods.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset > len(b) || n > len(b)-offset {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// i16 returns the int16 in b at the relative offset i.
func (b binarySegm) i16(i int) (int16, error) {
	n, err := b.u16(i)
	return int16(n), err
}

// words interprets b as a sequence of n big-endian 16-bit words.
func (b binarySegm) words(n int) ([]uint16, error) {
	buf, err := b.view(0, 2*n)
	if err != nil {
		return nil, err
	}
	w := make([]uint16, n)
	for i := range w {
		w[i] = u16(buf[2*i:])
	}
	return w, nil
}
