package scan

import (
	"github.com/honeybugserial/stringgeryhtiger/internal/buf"
	"github.com/honeybugserial/stringgeryhtiger/internal/textenc"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

const (
	// byteBadRunLimit is the consecutive non-printable byte count that ends
	// single-byte expansion. The byte that reaches it is excluded.
	byteBadRunLimit = 3
	// unitBadRunLimit is the same limit for 16-bit code units.
	unitBadRunLimit = 2
)

// Bounds expands the span [start, end) to the widest readable range around it.
// The returned range always contains the input span (after UTF-16 alignment).
func Bounds(data []byte, start, end int, enc types.Encoding) (int, int, error) {
	if !buf.Span(len(data), start, end) {
		return 0, 0, types.ErrIndexRange
	}
	switch enc {
	case types.UTF8:
		left, right := bytesBounds(data, start, end)
		return left, right, nil
	case types.UTF16LE, types.UTF16BE:
		left, right := unitBounds(data, start, end, enc.BigEndian())
		return left, right, nil
	}
	return 0, 0, types.ErrUnknownEncoding
}

func bytesBounds(data []byte, start, end int) (int, int) {
	left, right := start, end

	bad := 0
	for left > 0 {
		b := data[left-1]
		if b == 0x00 {
			break
		}
		if textenc.PrintableByte(b) {
			bad = 0
		} else {
			bad++
			if bad >= byteBadRunLimit {
				break
			}
		}
		left--
	}

	bad = 0
	for right < len(data) {
		b := data[right]
		if b == 0x00 {
			break
		}
		if textenc.PrintableByte(b) {
			bad = 0
		} else {
			bad++
			if bad >= byteBadRunLimit {
				break
			}
		}
		right++
	}
	return left, right
}

func unitBounds(data []byte, start, end int, bigEndian bool) (int, int) {
	left := buf.AlignDown(start, 2)
	right := buf.AlignUp(end, 2)
	if right > len(data) {
		right = buf.AlignDown(len(data), 2)
	}

	bad := 0
	for left-2 >= 0 {
		u, ok := buf.U16At(data, left-2, bigEndian)
		if !ok || u == 0x0000 {
			break
		}
		if textenc.TextUnit(u) {
			bad = 0
		} else {
			bad++
			if bad >= unitBadRunLimit {
				break
			}
		}
		left -= 2
	}

	bad = 0
	for right+2 <= len(data) {
		u, ok := buf.U16At(data, right, bigEndian)
		if !ok || u == 0x0000 {
			break
		}
		if textenc.TextUnit(u) {
			bad = 0
		} else {
			bad++
			if bad >= unitBadRunLimit {
				break
			}
		}
		right += 2
	}
	return left, right
}
