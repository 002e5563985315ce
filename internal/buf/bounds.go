package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}

// Span reports whether [start, end) is a well-formed range inside a buffer of
// size bufLen.
func Span(bufLen, start, end int) bool {
	return start >= 0 && start <= end && end <= bufLen
}

// AlignDown rounds off down to a multiple of width. Width must be positive.
func AlignDown(off, width int) int {
	return off - off%width
}

// AlignUp rounds off up to a multiple of width. Width must be positive.
func AlignUp(off, width int) int {
	if r := off % width; r != 0 {
		return off + width - r
	}
	return off
}
