package resources

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/macfont/core"
	"github.com/npillmayer/macfont/core/font/fontregistry"
	"github.com/npillmayer/macfont/core/font/nfnt"
	"github.com/npillmayer/macfont/core/rsrc"
	"github.com/npillmayer/schuko"
)

// Configuration keys
const (
	FontPathKey     = "font-path"
	FontSuitcaseKey = "font-suitcase"
)

// NotFound returns an application error for a missing font.
func NotFound(id string) error {
	e := fmt.Errorf("resource missing: %v", id)
	return core.WrapError(e, core.EMISSING, "font not found: %s", id)
}

// FontPromise is returned by ResolveFont. Font blocks until loading has
// completed, FontContext additionally gives up when ctx is done. A promise
// may be asked repeatedly and will deliver the same result.
type FontPromise interface {
	Font() (*nfnt.Font, error)
	FontContext(ctx context.Context) (*nfnt.Font, error)
}

type fontLoader struct {
	done chan struct{}
	font *nfnt.Font
	err  error
}

func (loader *fontLoader) Font() (*nfnt.Font, error) {
	return loader.FontContext(context.Background())
}

func (loader *fontLoader) FontContext(ctx context.Context) (*nfnt.Font, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-loader.done:
		return loader.font, loader.err
	}
}

// ResolveFont resolves a bitmap font given its resource ID, a string of
// decimal digits. conf may be nil, in which case only the global registry is
// searched.
func ResolveFont(conf schuko.Configuration, id string) FontPromise {
	loader := &fontLoader{done: make(chan struct{})}
	go func() {
		defer close(loader.done)
		loader.font, loader.err = resolve(conf, id)
	}()
	return loader
}

func resolve(conf schuko.Configuration, id string) (*nfnt.Font, error) {
	resID, _, _, err := nfnt.ParseResourceID(id)
	if err != nil {
		return nil, err
	}
	registry := fontregistry.GlobalRegistry()
	if f, err := registry.Font(resID); err == nil {
		tracer().Debugf("font %d found in registry", resID)
		return f, nil
	}
	if conf == nil {
		return nil, NotFound(id)
	}
	var f *nfnt.Font
	if dir := conf.GetString(FontPathKey); dir != "" {
		if f, err = searchDirectory(dir, id, resID); err != nil {
			return nil, err
		}
	}
	if suitcase := conf.GetString(FontSuitcaseKey); f == nil && suitcase != "" {
		path, err := findfont.Find(suitcase)
		if err != nil {
			tracer().Infof("suitcase %s not found: %v", suitcase, err)
		} else if f, err = fontFromFork(path, id, resID); err != nil {
			return nil, err
		}
	}
	if f == nil {
		return nil, NotFound(id)
	}
	registry.StoreFont(f)
	return registry.Font(resID)
}

func searchDirectory(dir string, id string, resID int) (*nfnt.Font, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font path is not a readable directory: %s", dir)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)
		switch strings.ToLower(filepath.Ext(name)) {
		case ".fnt":
			if strings.TrimSuffix(name, filepath.Ext(name)) != id {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "cannot read font file %s", path)
			}
			tracer().Debugf("loading raw font resource %s", path)
			return nfnt.Parse(data, id)
		case ".rsrc", ".dfont":
			f, err := fontFromFork(path, id, resID)
			if f != nil || err != nil {
				return f, err
			}
		}
	}
	return nil, nil
}

// fontFromFork returns nil without an error if the fork does not contain
// the font.
func fontFromFork(path string, id string, resID int) (*nfnt.Font, error) {
	fork, err := readFork(path)
	if err != nil {
		return nil, err
	}
	for _, typ := range []string{rsrc.TypeNFNT, rsrc.TypeFONT} {
		if r, ok := fork.Lookup(typ, resID); ok {
			tracer().Debugf("found font %s as '%s' resource in %s", id, typ, path)
			return nfnt.Parse(r.Data, id)
		}
	}
	return nil, nil
}

func readFork(path string) (*rsrc.Fork, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read suitcase %s", path)
	}
	return rsrc.Parse(data)
}

// LoadSuitcase loads all bitmap fonts of a suitcase and stores them in the
// global registry. path is either a file path or a file name to be searched
// for in the system's font directories. Font resources with negative IDs are
// skipped, resources which fail to parse are reported as a joint error
// after all other fonts have been loaded.
func LoadSuitcase(path string) ([]*nfnt.Font, error) {
	fpath, err := findfont.Find(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "suitcase not found: %s", path)
	}
	fork, err := readFork(fpath)
	if err != nil {
		return nil, err
	}
	var fonts []*nfnt.Font
	var errs []error
	for _, r := range fork.Fonts() {
		if r.ID < 0 {
			tracer().Infof("skipping font resource with negative ID %d", r.ID)
			continue
		}
		f, err := nfnt.Parse(r.Data, strconv.Itoa(r.ID))
		if err != nil {
			errs = append(errs, fmt.Errorf("font %d: %w", r.ID, err))
			continue
		}
		fontregistry.GlobalRegistry().StoreFont(f)
		fonts = append(fonts, f)
	}
	tracer().Infof("loaded %d fonts from %s", len(fonts), fpath)
	return fonts, errors.Join(errs...)
}
