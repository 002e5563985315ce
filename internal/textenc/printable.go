package textenc

// PrintableByte reports whether b counts as readable text in single-byte
// context expansion: printable ASCII plus tab, LF and CR.
func PrintableByte(b byte) bool {
	if b >= 0x20 && b <= 0x7E {
		return true
	}
	return b == '\t' || b == '\n' || b == '\r'
}

// TextUnit reports whether a 16-bit code unit counts as readable text.
// Everything from U+00A0 upward is accepted, including unassigned and
// surrogate ranges.
func TextUnit(u uint16) bool {
	switch {
	case u >= 0x20 && u <= 0x7E:
		return true
	case u == '\t' || u == '\n' || u == '\r':
		return true
	case u >= 0xA0:
		return true
	}
	return false
}

// FoldByte lower-cases ASCII A-Z and leaves every other byte unchanged.
func FoldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// FoldASCII returns a copy of b with ASCII A-Z lower-cased. No Unicode case
// folding is attempted, so the result has the same length as b.
func FoldASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = FoldByte(c)
	}
	return out
}
