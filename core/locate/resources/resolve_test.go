package resources

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/macfont/core"
	"github.com/npillmayer/macfont/core/font/nfnt"
	"github.com/npillmayer/macfont/core/font/nfnt/nfnttest"
	"github.com/npillmayer/macfont/core/rsrc"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every test uses its own resource IDs, as resolved fonts end up in the
// global registry.

func writeFile(t *testing.T, dir, name string, data []byte) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func fontDirectory(t *testing.T) string {
	dir := t.TempDir()
	sample := nfnttest.Sample().Build()
	writeFile(t, dir, "400.fnt", sample)
	writeFile(t, dir, "geneva.rsrc", rsrc.Encode([]*rsrc.Resource{
		{Type: rsrc.TypeNFNT, ID: 401, Data: sample},
	}))
	writeFile(t, dir, "more.dfont", rsrc.Encode([]*rsrc.Resource{
		{Type: "FOND", ID: 3, Name: "Geneva", Data: []byte{0}},
		{Type: rsrc.TypeFONT, ID: 402, Data: sample},
	}))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "407.fnt"), 0755))
	return dir
}

func TestResolveFromDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	conf := testconfig.Conf{FontPathKey: fontDirectory(t)}
	for _, id := range []string{"400", "401", "402"} {
		f, err := ResolveFont(conf, id).Font()
		require.NoError(t, err, id)
		assert.Equal(t, 6, f.CountOfPresentCharacters(), id)
		assert.Equal(t, "Geneva", f.Name(), id)
	}
	_, err := ResolveFont(conf, "407").Font()
	assert.Equal(t, core.EMISSING, core.Code(err), "directories are not font files")
}

func TestResolveFromRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	conf := testconfig.Conf{FontPathKey: fontDirectory(t)}
	promise := ResolveFont(conf, "400")
	f1, err := promise.Font()
	require.NoError(t, err)
	f2, err := ResolveFont(nil, "400").Font()
	require.NoError(t, err)
	assert.Same(t, f1, f2, "second resolve is served by the registry")
	f3, err := promise.FontContext(context.Background())
	require.NoError(t, err)
	assert.Same(t, f1, f3, "promise delivers repeatedly")
}

func TestResolveFromSuitcase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	path := writeFile(t, t.TempDir(), "Fonts.dfont", rsrc.Encode([]*rsrc.Resource{
		{Type: rsrc.TypeNFNT, ID: 403, Data: nfnttest.Sample().Build()},
	}))
	conf := testconfig.Conf{FontSuitcaseKey: path}
	f, err := ResolveFont(conf, "403").Font()
	require.NoError(t, err)
	assert.Equal(t, 403, f.ResourceID())
	assert.Equal(t, 19, f.PointSize())
}

func TestResolveErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	conf := testconfig.Conf{FontPathKey: fontDirectory(t)}
	_, err := ResolveFont(conf, "404").Font()
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = ResolveFont(nil, "404").Font()
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = ResolveFont(conf, "12a").Font()
	assert.True(t, errors.Is(err, nfnt.ErrInvalidIdentifier))
	conf = testconfig.Conf{FontPathKey: filepath.Join(t.TempDir(), "missing")}
	_, err = ResolveFont(conf, "404").Font()
	assert.Equal(t, core.EINVALID, core.Code(err))
	dir := t.TempDir()
	writeFile(t, dir, "broken.rsrc", []byte("not a fork"))
	_, err = ResolveFont(testconfig.Conf{FontPathKey: dir}, "404").Font()
	assert.True(t, errors.Is(err, rsrc.ErrMalformedFork))
}

func TestFontContextCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	loader := &fontLoader{done: make(chan struct{})} // never completes
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := loader.FontContext(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadSuitcase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macfont.resources")
	defer teardown()
	//
	path := writeFile(t, t.TempDir(), "Suitcase.rsrc", rsrc.Encode([]*rsrc.Resource{
		{Type: rsrc.TypeNFNT, ID: 405, Data: nfnttest.Sample().Build()},
		{Type: rsrc.TypeFONT, ID: 406, Data: []byte{1, 2, 3}},
		{Type: rsrc.TypeNFNT, ID: -1, Data: nfnttest.Sample().Build()},
	}))
	fonts, err := LoadSuitcase(path)
	require.Len(t, fonts, 1)
	assert.Equal(t, 405, fonts[0].ResourceID())
	assert.True(t, errors.Is(err, nfnt.ErrMalformedResource))
	f, err := ResolveFont(nil, "405").Font()
	require.NoError(t, err)
	assert.Same(t, fonts[0], f)
}
