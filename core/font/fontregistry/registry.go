package fontregistry

import (
	"regexp"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/macfont/core"
	"github.com/npillmayer/macfont/core/font/nfnt"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding loaded bitmap fonts.
type Registry struct {
	sync.Mutex
	fonts *treemap.Map // resource ID -> *nfnt.Font
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts: treemap.NewWithIntComparator(),
	}
}

// StoreFont pushes a font into the registry if it isn't contained yet.
// A font already stored for the same resource ID will not be overridden.
func (fr *Registry) StoreFont(f *nfnt.Font) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts.Get(f.ResourceID()); !ok {
		tracer().Debugf("registry stores font %s", f)
		fr.fonts.Put(f.ResourceID(), f)
	}
}

// Font returns the font stored for a resource ID.
func (fr *Registry) Font(id int) (*nfnt.Font, error) {
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts.Get(id); ok {
		return f.(*nfnt.Font), nil
	}
	return nil, core.Error(core.EMISSING, "font %d not found in registry", id)
}

// Fonts lists all fonts of the registry, ordered by resource ID.
func (fr *Registry) Fonts() []*nfnt.Font {
	fr.Lock()
	defer fr.Unlock()
	fonts := make([]*nfnt.Font, 0, fr.fonts.Size())
	it := fr.fonts.Iterator()
	for it.Next() {
		fonts = append(fonts, it.Value().(*nfnt.Font))
	}
	return fonts
}

// Size is the number of fonts in the registry.
func (fr *Registry) Size() int {
	fr.Lock()
	defer fr.Unlock()
	return fr.fonts.Size()
}

// LogFontList is a helper function to dump the list of known fonts
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	tracer().Infof("--- registered fonts ---")
	for _, f := range fr.Fonts() {
		tracer().Infof("font [%d] = %s %dpt", f.ResourceID(), f.Name(), f.PointSize())
	}
	tracer().Infof("------------------------")
}

// MatchConfidence is a type for expressing the confidence level of font
// matching.
type MatchConfidence int

// Levels of confidence for font matching.
const (
	NoConfidence      MatchConfidence = 0
	LowConfidence     MatchConfidence = 2
	HighConfidence    MatchConfidence = 3
	PerfectConfidence MatchConfidence = 4
)

// ClosestMatch searches the registry for a font whose family name matches
// pattern (a case-insensitive regular expression), preferring the exact
// point size. Otherwise the closest size of a matching family is returned,
// with high confidence if it is larger than size and low confidence if it is
// smaller. If no family matches, returns NoConfidence.
func (fr *Registry) ClosestMatch(pattern string, size int) (match *nfnt.Font, confidence MatchConfidence) {
	r, err := regexp.Compile(strings.ToLower(pattern))
	if err != nil {
		tracer().Errorf("invalid font name pattern: %v", err)
		return nil, NoConfidence
	}
	distance := -1
	for _, f := range fr.Fonts() {
		if f.Name() == "" || !r.MatchString(strings.ToLower(f.Name())) {
			continue
		}
		d, c := f.PointSize()-size, HighConfidence
		switch {
		case d == 0:
			return f, PerfectConfidence
		case d < 0:
			d, c = -d, LowConfidence
		}
		if distance < 0 || d < distance {
			distance, match, confidence = d, f, c
		}
	}
	return match, confidence
}
