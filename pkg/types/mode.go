package types

import "strings"

// Mode governs how a replacement of L bytes is mapped onto a match of O bytes.
type Mode uint8

const (
	// ModeExact accepts only L == O.
	ModeExact Mode = iota
	// ModePadNull fills a shorter replacement with the encoding's null unit.
	ModePadNull
	// ModePadChar fills a shorter replacement with a repeated pad character.
	ModePadChar
	// ModeTruncate cuts a longer replacement to O bytes.
	ModeTruncate
)

// DefaultPadChar is the pad character used when none is configured.
const DefaultPadChar = " "

// String returns the mode name as accepted on the command line.
func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModePadNull:
		return "padnul"
	case ModePadChar:
		return "padspace"
	case ModeTruncate:
		return "truncate"
	}
	return "unknown"
}

// Valid reports whether m is one of the enumerated modes.
func (m Mode) Valid() bool {
	return m <= ModeTruncate
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, ErrUnknownMode
	}
	return []byte(m.String()), nil
}

// ParseMode resolves a mode name. "padchar" is accepted as an alias of "padspace".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return ModeExact, nil
	case "padnul", "padnull":
		return ModePadNull, nil
	case "padspace", "padchar":
		return ModePadChar, nil
	case "truncate":
		return ModeTruncate, nil
	}
	return 0, ErrUnknownMode
}
