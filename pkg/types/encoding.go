package types

import "strings"

// Encoding enumerates the text encodings a search term is matched in.
type Encoding uint8

const (
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
)

// Encodings lists every supported encoding in discovery order.
var Encodings = []Encoding{UTF8, UTF16LE, UTF16BE}

// String returns the canonical lowercase name ("utf-8", "utf-16le", "utf-16be").
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	}
	return "unknown"
}

// Valid reports whether e is one of the enumerated encodings.
func (e Encoding) Valid() bool {
	switch e {
	case UTF8, UTF16LE, UTF16BE:
		return true
	}
	return false
}

// Width returns the code unit width in bytes used for alignment and stepping.
// It returns 0 for an invalid encoding.
func (e Encoding) Width() int {
	switch e {
	case UTF8:
		return 1
	case UTF16LE, UTF16BE:
		return 2
	}
	return 0
}

// BigEndian reports whether the encoding stores code units most significant byte first.
func (e Encoding) BigEndian() bool {
	return e == UTF16BE
}

// MarshalText encodes the encoding by its canonical name.
func (e Encoding) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, ErrUnknownEncoding
	}
	return []byte(e.String()), nil
}

// ParseEncoding resolves a canonical name or common alias.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "utf-8", "utf8":
		return UTF8, nil
	case "utf-16le", "utf16le", "utf-16-le":
		return UTF16LE, nil
	case "utf-16be", "utf16be", "utf-16-be":
		return UTF16BE, nil
	}
	return 0, ErrUnknownEncoding
}
