/*
Package macroman handles text in the Mac OS Roman character set.

Classic Macintosh bitmap fonts index their glyphs by single byte character
codes of the Mac OS Roman encoding. A String is a sequence of such codes.
Conversion from and to UTF-8 uses the static translation table of
golang.org/x/text/encoding/charmap.
*/
package macroman

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// String is an immutable sequence of Mac OS Roman character codes.
type String struct {
	codes []byte
}

// Decode creates a String from raw Mac OS Roman bytes. The bytes are copied.
func Decode(raw []byte) String {
	codes := make([]byte, len(raw))
	copy(codes, raw)
	return String{codes: codes}
}

// FromString converts a UTF-8 string to Mac OS Roman. Characters without a
// Mac OS Roman code are replaced by the encoding's replacement byte (0x1a).
func FromString(s string) String {
	enc := encoding.ReplaceUnsupported(charmap.Macintosh.NewEncoder())
	codes, err := enc.Bytes([]byte(s))
	if err != nil {
		return String{}
	}
	return String{codes: codes}
}

// Len is the number of characters.
func (s String) Len() int {
	return len(s.codes)
}

// At returns the character code at index i. It panics if i is out of range.
func (s String) At(i int) byte {
	return s.codes[i]
}

// Substring returns the characters from index from up to, but not including,
// index to. Indices are clamped to the string's bounds.
func (s String) Substring(from, to int) String {
	if from < 0 {
		from = 0
	}
	if to > len(s.codes) {
		to = len(s.codes)
	}
	if from >= to {
		return String{}
	}
	return String{codes: s.codes[from:to:to]}
}

// Bytes returns a copy of the character codes.
func (s String) Bytes() []byte {
	b := make([]byte, len(s.codes))
	copy(b, s.codes)
	return b
}

// String converts s to UTF-8.
func (s String) String() string {
	b, err := charmap.Macintosh.NewDecoder().Bytes(s.codes)
	if err != nil {
		return string(s.codes)
	}
	return string(b)
}

// Rune returns the Unicode character for a Mac OS Roman code.
func Rune(code byte) rune {
	return charmap.Macintosh.DecodeByte(code)
}

// Code returns the Mac OS Roman code for a Unicode character.
func Code(r rune) (byte, bool) {
	return charmap.Macintosh.EncodeRune(r)
}
