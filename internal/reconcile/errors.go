package reconcile

import "errors"

var (
	// ErrLengthMismatch indicates exact mode with a replacement of different length.
	ErrLengthMismatch = errors.New("reconcile: replacement length differs from match length")
	// ErrModeLength indicates the mode cannot bridge the length difference
	// (padding a longer replacement or truncating a shorter one).
	ErrModeLength = errors.New("reconcile: mode incompatible with length difference")
	// ErrPadGap indicates the gap is not a whole number of pad units.
	ErrPadGap = errors.New("reconcile: gap not a multiple of the pad unit")
	// ErrEmptyPad indicates pad-char mode without a pad character.
	ErrEmptyPad = errors.New("reconcile: empty pad character")
	// ErrPadChar indicates a pad string of more than one character.
	ErrPadChar = errors.New("reconcile: pad must be a single character")
	// ErrEmptyReplacement indicates an empty replacement string.
	ErrEmptyReplacement = errors.New("reconcile: empty replacement")
)
