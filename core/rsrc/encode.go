package rsrc

import (
	"encoding/binary"

	"github.com/npillmayer/macfont/core/macroman"
)

// Offset of the data area in forks written by Encode. The bytes after the
// header are reserved for system and application use.
const dataAreaOffset = 256

const mapHeaderSize = 28

// Encode writes resources as a resource fork. Types appear in the map in
// order of their first occurrence in resources. Names longer than 255 bytes
// are truncated.
func Encode(resources []*Resource) []byte {
	var types []string
	byType := make(map[string][]*Resource)
	for _, r := range resources {
		if _, ok := byType[r.Type]; !ok {
			types = append(types, r.Type)
		}
		byType[r.Type] = append(byType[r.Type], r)
	}
	var data, names []byte
	typeList := make([]byte, 2+8*len(types))
	binary.BigEndian.PutUint16(typeList, uint16(len(types)-1))
	var refs []byte
	refListStart := len(typeList)
	for i, typ := range types {
		entry := typeList[2+8*i:]
		copy(entry[0:4], fourCC(typ))
		binary.BigEndian.PutUint16(entry[4:], uint16(len(byType[typ])-1))
		binary.BigEndian.PutUint16(entry[6:], uint16(refListStart+len(refs)))
		for _, r := range byType[typ] {
			ref := make([]byte, refEntrySize)
			binary.BigEndian.PutUint16(ref[0:], uint16(int16(r.ID)))
			binary.BigEndian.PutUint16(ref[2:], noName)
			if r.Name != "" {
				binary.BigEndian.PutUint16(ref[2:], uint16(len(names)))
				name := macroman.FromString(r.Name).Bytes()
				if len(name) > 255 {
					name = name[:255]
				}
				names = append(names, byte(len(name)))
				names = append(names, name...)
			}
			ref[4] = r.Attributes
			off := len(data)
			ref[5], ref[6], ref[7] = byte(off>>16), byte(off>>8), byte(off)
			data = binary.BigEndian.AppendUint32(data, uint32(len(r.Data)))
			data = append(data, r.Data...)
			refs = append(refs, ref...)
		}
	}
	rmap := make([]byte, mapHeaderSize, mapHeaderSize+len(typeList)+len(refs)+len(names))
	binary.BigEndian.PutUint16(rmap[24:], mapHeaderSize)
	binary.BigEndian.PutUint16(rmap[26:], uint16(mapHeaderSize+len(typeList)+len(refs)))
	rmap = append(rmap, typeList...)
	rmap = append(rmap, refs...)
	rmap = append(rmap, names...)
	//
	header := make([]byte, headerSize)
	binary.BigEndian.PutUint32(header[0:], dataAreaOffset)
	binary.BigEndian.PutUint32(header[4:], uint32(dataAreaOffset+len(data)))
	binary.BigEndian.PutUint32(header[8:], uint32(len(data)))
	binary.BigEndian.PutUint32(header[12:], uint32(len(rmap)))
	copy(rmap[0:headerSize], header)
	fork := make([]byte, dataAreaOffset, dataAreaOffset+len(data)+len(rmap))
	copy(fork, header)
	fork = append(fork, data...)
	return append(fork, rmap...)
}

func fourCC(typ string) []byte {
	cc := []byte{' ', ' ', ' ', ' '}
	copy(cc, macroman.FromString(typ).Bytes())
	return cc
}
