// Package buf contains endian-safe helpers for reading and patching the trie
// blob.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// PutU16LE writes v little-endian at b[off:off+2]. Returns false when the
// field does not fit.
func PutU16LE(b []byte, off int, v uint16) bool {
	field, ok := Slice(b, off, 2)
	if !ok {
		return false
	}
	binary.LittleEndian.PutUint16(field, v)
	return true
}

// AppendU16LE appends v little-endian to b.
func AppendU16LE(b []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, v)
}
