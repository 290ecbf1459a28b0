package font

import (
	"image"
	"testing"

	"github.com/npillmayer/macfont/core/font/nfnt/nfnttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestTypeCaseMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.fonts")
	defer teardown()
	//
	tc := NewTypeCase(nfnttest.SampleFont())
	defer tc.Close()
	m := tc.Metrics()
	assert.Equal(t, fixed.I(8), m.Height)
	assert.Equal(t, fixed.I(6), m.Ascent)
	assert.Equal(t, fixed.I(1), m.Descent)
	assert.Equal(t, fixed.I(6), m.CapHeight)
	assert.Equal(t, fixed.Int26_6(0), m.XHeight, "sample has no x")
	assert.Equal(t, 7.0, tc.PtSize())
}

func TestTypeCaseGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.fonts")
	defer teardown()
	//
	tc := NewTypeCase(nfnttest.SampleFont())
	adv, ok := tc.GlyphAdvance('i')
	assert.True(t, ok)
	assert.Equal(t, fixed.I(2), adv)
	adv, ok = tc.GlyphAdvance('Z')
	assert.False(t, ok, "Z is not present")
	assert.Equal(t, fixed.I(5), adv, "width of missing symbol")
	_, ok = tc.GlyphAdvance('ж')
	assert.False(t, ok)
	bounds, adv, ok := tc.GlyphBounds('A')
	assert.True(t, ok)
	assert.Equal(t, fixed.I(5), adv)
	assert.Equal(t, fixed.R(0, -6, 4, 1), bounds)
	assert.Equal(t, fixed.Int26_6(0), tc.Kern('A', 'B'))
	//
	dr, mask, maskp, adv, ok := tc.Glyph(fixed.P(10, 20), 'l')
	assert.True(t, ok)
	assert.Equal(t, image.Rect(10, 14, 11, 21), dr)
	assert.Equal(t, image.Point{}, maskp)
	assert.Equal(t, fixed.I(2), adv)
	_, _, _, a := mask.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = mask.At(0, 6).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestTypeCaseWithDrawer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.fonts")
	defer teardown()
	//
	dst := image.NewAlpha(image.Rect(0, 0, 10, 7))
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: NewTypeCase(nfnttest.SampleFont()),
		Dot:  fixed.P(0, 6),
	}
	assert.Equal(t, fixed.I(10), d.MeasureString("HA"))
	d.DrawString("HA")
	assert.Equal(t, uint8(0xff), dst.AlphaAt(0, 0).A, "H")
	assert.Equal(t, uint8(0), dst.AlphaAt(1, 0).A)
	assert.Equal(t, uint8(0xff), dst.AlphaAt(6, 0).A, "A")
	assert.Equal(t, uint8(0), dst.AlphaAt(0, 6).A, "descender row is empty")
}
