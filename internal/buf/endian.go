// Package buf contains bounds-checked slicing and endian-aware readers for
// the 16-bit code units scanned in UTF-16 text.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U16BE reads a big-endian uint16 from b. Returns 0 when b is too short.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U16At reads the code unit at off using the requested byte order.
// ok is false when fewer than two bytes remain at off.
func U16At(b []byte, off int, bigEndian bool) (uint16, bool) {
	s, ok := Slice(b, off, 2)
	if !ok {
		return 0, false
	}
	if bigEndian {
		return U16BE(s), true
	}
	return U16LE(s), true
}
