/*
Package rsrc reads Macintosh resource forks.

Classic Mac OS stored fonts as FONT and NFNT resources in the resource fork
of a suitcase file. Mac OS X .dfont files carry the same structure in the
data fork. A fork consists of a 16 byte header, the resource data area and
the resource map:

	header:   dataOffset, mapOffset, dataLength, mapLength (uint32 each)
	data:     per resource a uint32 length followed by the resource bytes
	map:      16 reserved bytes, handle, file ref, attributes,
	          typeListOffset (map+24), nameListOffset (map+26)
	types:    count-1, then per type: 4 byte type, count-1, refListOffset
	refs:     per resource 12 bytes: id, nameOffset, attributes,
	          24 bit data offset, reserved handle
	names:    Pascal strings in Mac OS Roman

All numbers are big-endian. Offsets of type entries' reference lists are
relative to the type list, name offsets to the name list, data offsets to
the data area.
*/
package rsrc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/macfont/core"
	"github.com/npillmayer/macfont/core/macroman"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'macfont.resources'
func tracer() tracing.Trace {
	return tracing.Select("macfont.resources")
}

// ErrMalformedFork is matched by every error Parse returns.
var ErrMalformedFork = errors.New("malformed resource fork")

func errForkFormat(format string, v ...interface{}) error {
	return core.WrapError(ErrMalformedFork, core.EINVALID, "resource fork: "+format, v...)
}

// Resource types of bitmap fonts.
const (
	TypeFONT = "FONT"
	TypeNFNT = "NFNT"
)

const (
	headerSize   = 16
	refEntrySize = 12
	noName       = 0xffff
)

// Resource is a single resource of a fork.
type Resource struct {
	Type       string
	ID         int
	Name       string
	Attributes uint8
	Data       []byte
}

func (r *Resource) String() string {
	if r.Name == "" {
		return fmt.Sprintf("'%s' %d (%d bytes)", r.Type, r.ID, len(r.Data))
	}
	return fmt.Sprintf("'%s' %d %q (%d bytes)", r.Type, r.ID, r.Name, len(r.Data))
}

// Fork holds the resources of a resource fork, grouped by type.
type Fork struct {
	types     []string
	resources map[string][]*Resource
}

// Types lists the resource types of the fork in map order.
func (f *Fork) Types() []string {
	t := make([]string, len(f.types))
	copy(t, f.types)
	return t
}

// Resources returns all resources of a type, ordered by ID.
func (f *Fork) Resources(typ string) []*Resource {
	return f.resources[typ]
}

// Lookup finds a resource by type and ID.
func (f *Fork) Lookup(typ string, id int) (*Resource, bool) {
	for _, r := range f.resources[typ] {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// Fonts returns all NFNT and FONT resources, ordered by ID. For IDs
// present with both types, the NFNT resource wins.
func (f *Fork) Fonts() []*Resource {
	var fonts []*Resource
	fonts = append(fonts, f.resources[TypeNFNT]...)
	for _, r := range f.resources[TypeFONT] {
		if _, dup := f.Lookup(TypeNFNT, r.ID); !dup {
			fonts = append(fonts, r)
		}
	}
	sort.SliceStable(fonts, func(i, j int) bool { return fonts[i].ID < fonts[j].ID })
	return fonts
}

// forkData is the raw fork, read with bounds checks.
type forkData []byte

func (b forkData) view(offset, n int) ([]byte, error) {
	if offset < 0 || n < 0 || offset > len(b) || n > len(b)-offset {
		return nil, errForkFormat("%d bytes at offset %d exceed fork size %d", n, offset, len(b))
	}
	return b[offset : offset+n], nil
}

func (b forkData) u16(offset int) (uint16, error) {
	v, err := b.view(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(v), nil
}

func (b forkData) u32(offset int) (uint32, error) {
	v, err := b.view(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(v), nil
}

type forkHeader struct {
	DataOffset uint32
	MapOffset  uint32
	DataLength uint32
	MapLength  uint32
}

// Parse reads a resource fork. Resource data is copied, fork may be
// discarded afterwards.
func Parse(fork []byte) (*Fork, error) {
	b := forkData(fork)
	hdr, err := b.view(0, headerSize)
	if err != nil {
		return nil, err
	}
	h := forkHeader{
		DataOffset: binary.BigEndian.Uint32(hdr[0:]),
		MapOffset:  binary.BigEndian.Uint32(hdr[4:]),
		DataLength: binary.BigEndian.Uint32(hdr[8:]),
		MapLength:  binary.BigEndian.Uint32(hdr[12:]),
	}
	tracer().Debugf("resource fork header: %+v", h)
	data, err := b.view(int(h.DataOffset), int(h.DataLength))
	if err != nil {
		return nil, err
	}
	rmap, err := b.view(int(h.MapOffset), int(h.MapLength))
	if err != nil {
		return nil, err
	}
	m := forkData(rmap)
	typeListOff, err := m.u16(24)
	if err != nil {
		return nil, err
	}
	nameListOff, err := m.u16(26)
	if err != nil {
		return nil, err
	}
	p := &mapParser{m: m, data: forkData(data), typeList: int(typeListOff), nameList: int(nameListOff)}
	return p.parse()
}

type mapParser struct {
	m        forkData
	data     forkData
	typeList int
	nameList int
}

func (p *mapParser) parse() (*Fork, error) {
	f := &Fork{resources: make(map[string][]*Resource)}
	n, err := p.m.u16(p.typeList)
	if err != nil {
		return nil, err
	}
	typeCount := int(int16(n)) + 1
	for i := 0; i < typeCount; i++ {
		entry, err := p.m.view(p.typeList+2+8*i, 8)
		if err != nil {
			return nil, err
		}
		typ := macroman.Decode(entry[0:4]).String()
		count := int(binary.BigEndian.Uint16(entry[4:])) + 1
		refList := p.typeList + int(binary.BigEndian.Uint16(entry[6:]))
		if _, dup := f.resources[typ]; dup {
			return nil, errForkFormat("duplicate type entry '%s'", typ)
		}
		resources := make([]*Resource, 0, count)
		for j := 0; j < count; j++ {
			r, err := p.reference(typ, refList+refEntrySize*j)
			if err != nil {
				return nil, err
			}
			resources = append(resources, r)
		}
		sort.SliceStable(resources, func(a, b int) bool { return resources[a].ID < resources[b].ID })
		f.types = append(f.types, typ)
		f.resources[typ] = resources
		tracer().Debugf("resource type '%s' with %d resources", typ, count)
	}
	return f, nil
}

func (p *mapParser) reference(typ string, offset int) (*Resource, error) {
	ref, err := p.m.view(offset, refEntrySize)
	if err != nil {
		return nil, err
	}
	r := &Resource{
		Type:       typ,
		ID:         int(int16(binary.BigEndian.Uint16(ref[0:]))),
		Attributes: ref[4],
	}
	if nameOff := binary.BigEndian.Uint16(ref[2:]); nameOff != noName {
		if r.Name, err = p.name(p.nameList + int(nameOff)); err != nil {
			return nil, err
		}
	}
	dataOff := int(ref[5])<<16 | int(ref[6])<<8 | int(ref[7])
	length, err := p.data.u32(dataOff)
	if err != nil {
		return nil, err
	}
	raw, err := p.data.view(dataOff+4, int(length))
	if err != nil {
		return nil, errForkFormat("data of resource '%s' %d truncated", typ, r.ID)
	}
	r.Data = make([]byte, len(raw))
	copy(r.Data, raw)
	return r, nil
}

func (p *mapParser) name(offset int) (string, error) {
	l, err := p.m.view(offset, 1)
	if err != nil {
		return "", err
	}
	s, err := p.m.view(offset+1, int(l[0]))
	if err != nil {
		return "", err
	}
	return macroman.Decode(s).String(), nil
}
