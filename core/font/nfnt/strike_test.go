package nfnt

import (
	"errors"
	"image"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/macfont/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStrikeExtractUnaligned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.fonts")
	defer teardown()
	//
	// two rows of 2 words each
	s := strikeFrom(binarySegm{
		0b00000111, 0b11000000, 0x00, 0x01,
		0b00000100, 0b01000000, 0x80, 0x00,
	}, 4, 2)
	pix, err := s.Extract(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	expected := []bool{
		true, true, true, true, true,
		true, false, false, false, true,
	}
	if diff := cmp.Diff(expected, pix); diff != "" {
		t.Errorf("unexpected glyph pixels (-want +got):\n%s", diff)
	}
	pix, err = s.Extract(15, 2) // crosses a word boundary
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{false, false, false, true}, pix); diff != "" {
		t.Errorf("unexpected pixels across word boundary (-want +got):\n%s", diff)
	}
	pix, err = s.Extract(31, 1) // last bit of each row
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, false}, pix); diff != "" {
		t.Errorf("unexpected pixels at end of row (-want +got):\n%s", diff)
	}
}

func TestStrikeExtractOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.fonts")
	defer teardown()
	//
	s := NewStrike(1, 3)
	for _, r := range [][2]int{{-1, 2}, {10, 7}, {16, 1}, {0, -1}} {
		_, err := s.Extract(r[0], r[1])
		if !errors.Is(err, ErrInternalConsistency) {
			t.Errorf("expected extraction of bits %d+%d to fail with internal inconsistency, got %v",
				r[0], r[1], err)
		}
		if core.Code(err) != core.EINTERNAL {
			t.Errorf("expected error code EINTERNAL, have %d", core.Code(err))
		}
	}
	if pix, err := s.Extract(16, 0); err != nil || len(pix) != 0 {
		t.Errorf("expected empty glyph at end of strike, got %v, %v", pix, err)
	}
}

func TestStrikeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.fonts")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	s := NewStrike(5, 9)
	for i := range s.bits {
		s.bits[i] = byte(rnd.Intn(256))
	}
	original := append([]byte(nil), s.bits...)
	for i := 0; i < 200; i++ {
		start := rnd.Intn(s.BitWidth())
		width := rnd.Intn(s.BitWidth() - start + 1)
		pix, err := s.Extract(start, width)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Pack(start, width, pix); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(original, []byte(s.bits)); diff != "" {
			t.Fatalf("re-packing bits %d+%d changed the strike (-want +got):\n%s", start, width, diff)
		}
	}
}

func TestStrikePackIntoEmpty(t *testing.T) {
	s := NewStrike(1, 2)
	err := s.Pack(3, 6, []bool{
		true, false, false, false, false, true,
		false, true, true, true, true, false,
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{0b00010000, 0b10000000, 0b00001111, 0b00000000}
	if diff := cmp.Diff(expected, s.Bytes()); diff != "" {
		t.Errorf("unexpected packed bytes (-want +got):\n%s", diff)
	}
	if err := s.Pack(12, 6, make([]bool, 12)); !errors.Is(err, ErrInternalConsistency) {
		t.Errorf("expected packing beyond the strike to fail, got %v", err)
	}
}

func TestGlyphImage(t *testing.T) {
	g := newGlyph(3, -1, image.Pt(2, 2), []bool{true, false, false, true})
	if g.IsWhitespace() {
		t.Errorf("expected glyph with pixels not to be whitespace")
	}
	if s := g.DebugString(); s != "X.\n.X\n" {
		t.Errorf("unexpected debug figure %q", s)
	}
	if !g.At(1, 1) || g.At(1, 0) || g.At(2, 0) || g.At(-1, 0) {
		t.Errorf("unexpected pixel access")
	}
	pix := g.Pixels()
	pix[0] = false
	if !g.At(0, 0) {
		t.Errorf("modifying a copy of the pixels changed the glyph")
	}
	empty := newGlyph(4, 0, image.Pt(0, 7), []bool{})
	if !empty.IsWhitespace() {
		t.Errorf("expected empty glyph to be whitespace")
	}
}
