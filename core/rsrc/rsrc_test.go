package rsrc

import (
	"errors"
	"testing"

	"github.com/npillmayer/macfont/core"
	"github.com/npillmayer/macfont/core/font/nfnt/nfnttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResources() []*Resource {
	sample := nfnttest.Sample().Build()
	return []*Resource{
		{Type: TypeNFNT, ID: 391, Data: sample},
		{Type: "FOND", ID: 3, Name: "Geneva", Data: []byte{1, 2, 3}},
		{Type: TypeFONT, ID: 384, Name: "Geneva", Data: []byte{}},
		{Type: TypeFONT, ID: 391, Data: []byte{0xff}},
		{Type: TypeNFNT, ID: -4000, Name: "Café", Attributes: 0x20, Data: sample},
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	fork, err := Parse(Encode(testResources()))
	require.NoError(t, err)
	assert.Equal(t, []string{TypeNFNT, "FOND", TypeFONT}, fork.Types())
	nfnts := fork.Resources(TypeNFNT)
	require.Len(t, nfnts, 2)
	assert.Equal(t, -4000, nfnts[0].ID, "resources are ordered by ID")
	assert.Equal(t, "Café", nfnts[0].Name)
	assert.Equal(t, uint8(0x20), nfnts[0].Attributes)
	assert.Equal(t, nfnttest.Sample().Build(), nfnts[1].Data)
	fond, ok := fork.Lookup("FOND", 3)
	require.True(t, ok)
	assert.Equal(t, "Geneva", fond.Name)
	assert.Equal(t, []byte{1, 2, 3}, fond.Data)
	empty, ok := fork.Lookup(TypeFONT, 384)
	require.True(t, ok)
	assert.Len(t, empty.Data, 0)
	_, ok = fork.Lookup(TypeFONT, 1)
	assert.False(t, ok)
	assert.Nil(t, fork.Resources("snd "))
}

func TestFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	fork, err := Parse(Encode(testResources()))
	require.NoError(t, err)
	fonts := fork.Fonts()
	require.Len(t, fonts, 3)
	assert.Equal(t, -4000, fonts[0].ID)
	assert.Equal(t, 384, fonts[1].ID)
	assert.Equal(t, TypeFONT, fonts[1].Type)
	assert.Equal(t, 391, fonts[2].ID)
	assert.Equal(t, TypeNFNT, fonts[2].Type, "NFNT wins over FONT with same ID")
}

func TestEmptyFork(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	fork, err := Parse(Encode(nil))
	require.NoError(t, err)
	assert.Empty(t, fork.Types())
	assert.Empty(t, fork.Fonts())
}

func TestMalformedForks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	good := Encode(testResources())
	badMap := append([]byte{}, good...)
	badMap[4], badMap[5] = 0x7f, 0xff // map offset
	for name, fork := range map[string][]byte{
		"empty":     {},
		"header":    good[:10],
		"truncated": good[:len(good)-20],
		"map":       badMap,
	} {
		_, err := Parse(fork)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrMalformedFork), name)
		assert.Equal(t, core.EINVALID, core.Code(err), name)
	}
}

func TestTruncatedResourceData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	fork := Encode([]*Resource{{Type: TypeNFNT, ID: 1, Data: []byte{1, 2, 3, 4}}})
	fork[dataAreaOffset+3] = 200 // length of first resource
	_, err := Parse(fork)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedFork))
}
