// Package textenc converts strings to and from the byte sequences searched for
// in binary files, and classifies bytes and 16-bit code units as readable text.
package textenc

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/honeybugserial/stringgeryhtiger/internal/buf"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

var (
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// codec returns the x/text encoding backing enc.
func codec(enc types.Encoding) (encoding.Encoding, error) {
	switch enc {
	case types.UTF8:
		return unicode.UTF8, nil
	case types.UTF16LE:
		return utf16LE, nil
	case types.UTF16BE:
		return utf16BE, nil
	}
	return nil, types.ErrUnknownEncoding
}

// Encode returns s encoded in enc without a byte order mark.
func Encode(enc types.Encoding, s string) ([]byte, error) {
	c, err := codec(enc)
	if err != nil {
		return nil, err
	}
	out, err := c.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode %s: %w", enc, err)
	}
	return out, nil
}

// Decoded is the result of decoding arbitrary file bytes.
type Decoded struct {
	Text string
	// Lossy is set when the input was not strictly valid in the encoding and
	// Text carries U+FFFD placeholders (or a quoted rendering of the bytes).
	Lossy bool
}

// Decode converts b to a UTF-8 string. It never fails: undecodable input is
// replaced with U+FFFD and reported through Lossy.
func Decode(enc types.Encoding, b []byte) Decoded {
	c, err := codec(enc)
	if err != nil {
		return Decoded{Text: fmt.Sprintf("%q", b), Lossy: true}
	}
	if enc == types.UTF8 && utf8.Valid(b) {
		return Decoded{Text: string(b)}
	}
	strict := Valid(enc, b)
	var tail string
	if enc.Width() == 2 && len(b)%2 != 0 {
		// dangling half code unit
		b, tail = b[:len(b)-1], string(utf8.RuneError)
	}
	out, err := c.NewDecoder().Bytes(b)
	if err != nil {
		return Decoded{Text: fmt.Sprintf("%q", b), Lossy: true}
	}
	return Decoded{Text: string(out) + tail, Lossy: !strict}
}

// Valid reports whether b is a complete, well-formed sequence in enc.
func Valid(enc types.Encoding, b []byte) bool {
	switch enc {
	case types.UTF8:
		return utf8.Valid(b)
	case types.UTF16LE, types.UTF16BE:
		return validUTF16(b, enc.BigEndian())
	}
	return false
}

func validUTF16(b []byte, bigEndian bool) bool {
	if len(b)%2 != 0 {
		return false
	}
	for i := 0; i < len(b); i += 2 {
		u, _ := buf.U16At(b, i, bigEndian)
		r := rune(u)
		if !utf16.IsSurrogate(r) {
			continue
		}
		if r >= 0xDC00 {
			return false // low surrogate without a preceding high
		}
		lo, ok := buf.U16At(b, i+2, bigEndian)
		if !ok || lo < 0xDC00 || lo > 0xDFFF {
			return false
		}
		i += 2
	}
	return true
}

// NullUnit returns the encoding's null code unit.
func NullUnit(enc types.Encoding) ([]byte, error) {
	switch enc {
	case types.UTF8:
		return []byte{0x00}, nil
	case types.UTF16LE, types.UTF16BE:
		return []byte{0x00, 0x00}, nil
	}
	return nil, types.ErrUnknownEncoding
}
