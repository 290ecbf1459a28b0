/*
Package nfnt decodes classic Macintosh bitmap fonts.

Bitmap fonts on the classic Mac OS are stored as resources of type 'FONT'
or 'NFNT'. Both share the same packed, big-endian layout, as documented in
Inside Macintosh: Text (and earlier in Inside Macintosh, Volume I):

	fontType     INTEGER   font type flags
	firstChar    INTEGER   character code of first character
	lastChar     INTEGER   character code of last character
	widMax       INTEGER   maximum character width
	kernMax      INTEGER   negative of maximum character kern
	nDescent     INTEGER   negative of descent, or high word of owTLoc
	fRectWidth   INTEGER   width of font rectangle
	fRectHeight  INTEGER   height of font rectangle
	owTLoc       INTEGER   offset to offset/width table, in words
	ascent       INTEGER   ascent
	descent      INTEGER   descent
	leading      INTEGER   leading
	rowWords     INTEGER   row width of bit image / 2

	bitImage     ARRAY[1..rowWords, 1..fRectHeight] OF INTEGER
	locTable     ARRAY[firstChar..lastChar+2] OF INTEGER
	owTable      ARRAY[firstChar..lastChar+2] OF INTEGER

All glyphs live side by side in a single bitmap, the font strike. The
location table tells where, in bits, each glyph's image starts within a row
of the strike; the width of a glyph image is the difference to the next
entry. The character at lastChar+1 is the "missing symbol", drawn for every
character the font does not define.

Entries of the offset/width table hold the glyph's offset (high byte, to be
added to kernMax) and its advance width (low byte). An entry of -1 marks a
character which is not present in the font.

Fonts are decoded with

	f, err := nfnt.Parse(data, "396") // Geneva 12

Resource IDs of FONT resources encode font family and point size as
family*128 + size. The decoded Font is immutable and may be shared between
goroutines.

Parse does basic sanity checking on input data but is not hardened against
maliciously crafted data.
*/
package nfnt

import (
	"errors"
	"fmt"

	"github.com/npillmayer/macfont/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'macfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("macfont.fonts")
}

// ErrInvalidIdentifier is reported for resource IDs not made of decimal digits.
var ErrInvalidIdentifier = errors.New("invalid resource identifier")

// ErrMalformedResource is the error every MalformedResourceError matches
// with errors.Is.
var ErrMalformedResource = errors.New("malformed font resource")

// ErrInternalConsistency flags a defect of the decoder itself, e.g. a bit
// read outside of an already validated table.
var ErrInternalConsistency = errors.New("internal inconsistency: bit image bounds error")

// MalformedResourceError is returned by Parse whenever a structural check on
// the font data fails. Check names the failing check.
type MalformedResourceError struct {
	Check  string
	Detail string
}

func (e *MalformedResourceError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("malformed font resource: %s", e.Check)
	}
	return fmt.Sprintf("malformed font resource: %s (%s)", e.Check, e.Detail)
}

// Is lets errors.Is(err, ErrMalformedResource) succeed.
func (e *MalformedResourceError) Is(target error) bool {
	return target == ErrMalformedResource
}

// Names of the structural checks performed by Parse.
const (
	CheckHeader    = "header"
	CheckCharRange = "char range"
	CheckFontRect  = "font rectangle"
	CheckBitImage  = "bit image"
	CheckLocTable  = "location table"
	CheckOWTable   = "offset/width table"
	CheckLocOrder  = "location order"
	CheckLocBounds = "location bounds"
)

// errFontFormat produces user level errors for font parsing.
func errFontFormat(check string, detail string, v ...interface{}) error {
	e := &MalformedResourceError{Check: check, Detail: fmt.Sprintf(detail, v...)}
	return core.WrapError(e, core.EINVALID, "bitmap font format: %s", check)
}

func errInvalidID(id string) error {
	return core.WrapError(ErrInvalidIdentifier, core.EINVALID,
		"font resource ID must consist of decimal digits: %q", id)
}

func errInternal(where string) error {
	return core.WrapError(ErrInternalConsistency, core.EINTERNAL,
		"bitmap font decoder: %s", where)
}
