package scan

import (
	"bytes"

	"github.com/honeybugserial/stringgeryhtiger/internal/textenc"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

// Find returns the ascending offsets at which needle occurs in hay.
//
// After a hit at i the scan resumes at i+width (the code unit width of enc),
// not i+len(needle). With ignoreCase, ASCII letters in both hay and needle
// are lower-cased before comparison. An empty needle yields no offsets.
func Find(hay, needle []byte, enc types.Encoding, ignoreCase bool) ([]int, error) {
	width := enc.Width()
	if width == 0 {
		return nil, types.ErrUnknownEncoding
	}
	if len(needle) == 0 || len(needle) > len(hay) {
		return nil, nil
	}
	if ignoreCase {
		return findFold(hay, textenc.FoldASCII(needle), width), nil
	}
	return findExact(hay, needle, width), nil
}

func findExact(hay, needle []byte, width int) []int {
	var offs []int
	i := 0
	for i+len(needle) <= len(hay) {
		j := bytes.Index(hay[i:], needle)
		if j < 0 {
			break
		}
		at := i + j
		if at%width != 0 {
			// misaligned for this encoding; keep looking from the next byte
			i = at + 1
			continue
		}
		offs = append(offs, at)
		i = at + width
	}
	return offs
}

// findFold probes every aligned offset. folded must already be lower-cased.
func findFold(hay, folded []byte, width int) []int {
	var offs []int
	n := len(folded)
	for i := 0; i+n <= len(hay); i += width {
		if equalFold(hay[i:i+n], folded) {
			offs = append(offs, i)
		}
	}
	return offs
}

func equalFold(window, folded []byte) bool {
	for k, b := range window {
		if textenc.FoldByte(b) != folded[k] {
			return false
		}
	}
	return true
}
