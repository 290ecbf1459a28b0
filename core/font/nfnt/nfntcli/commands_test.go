package main

import (
	"image"
	"testing"

	"github.com/npillmayer/macfont/core"
	"github.com/npillmayer/macfont/core/font/nfnt/nfnttest"
	"github.com/npillmayer/macfont/engine/render"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.fonts")
	defer teardown()
	//
	cmd := parseCommand("  Render  Hello  World ")
	assert.Equal(t, RENDER, cmd.code)
	assert.Equal(t, "Hello  World", cmd.text)
	cmd = parseCommand("wrap 40 20 a b")
	assert.Equal(t, WRAP, cmd.code)
	assert.Equal(t, []string{"40", "20", "a", "b"}, cmd.args)
	assert.Equal(t, "", cmd.arg(4))
	assert.Equal(t, HELP, parseCommand("frobnicate").code)
	assert.Equal(t, QUIT, parseCommand("quit").code)
}

func TestCharacterCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.fonts")
	defer teardown()
	//
	c, err := characterCode("A")
	assert.NoError(t, err)
	assert.Equal(t, byte('A'), c)
	c, err = characterCode("é")
	assert.NoError(t, err)
	assert.Equal(t, byte(0x8e), c)
	c, err = characterCode("#200")
	assert.NoError(t, err)
	assert.Equal(t, byte(200), c)
	for _, arg := range []string{"", "AB", "#256", "#x", "ж"} {
		_, err = characterCode(arg)
		assert.Equal(t, core.EINVALID, core.Code(err), arg)
	}
}

func TestExecuteNeedsFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.fonts")
	defer teardown()
	//
	intp := &Intp{canvas: render.NewCanvas(image.Pt(12, 7))}
	_, err := intp.execute(parseCommand("measure abc"))
	assert.Equal(t, core.EMISSING, core.Code(err))
	intp.setFont(nfnttest.SampleFont())
	_, err = intp.execute(parseCommand("render HA"))
	assert.NoError(t, err)
	assert.True(t, intp.canvas.Pixel(0, 0))
	quit, err := intp.execute(parseCommand("quit"))
	assert.NoError(t, err)
	assert.True(t, quit)
	_, err = intp.execute(parseCommand("wrap x 7 HA"))
	assert.Equal(t, core.EINVALID, core.Code(err))
}
