// Package reconcile turns a replacement string into a byte sequence of exactly
// the length of the span it replaces, or explains why it cannot.
package reconcile

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/honeybugserial/stringgeryhtiger/internal/textenc"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

// Request describes one reconciliation.
type Request struct {
	Encoding    types.Encoding
	OriginalLen int
	Replacement string
	Mode        types.Mode
	// PadChar is used by ModePadChar and must hold exactly one character.
	PadChar string
}

// Result is a reconciled payload.
type Result struct {
	Payload []byte
	// InputLen is the encoded replacement length before padding or truncation.
	InputLen int
}

// Reconcile applies the length rules in order:
//
//  1. equal lengths are returned unchanged whatever the mode;
//  2. ModePadNull appends null units to a shorter replacement;
//  3. ModePadChar appends the encoded pad character to a shorter replacement;
//  4. ModeTruncate cuts a longer replacement to the original length, which may
//     split a multi-byte character;
//  5. everything else is rejected.
//
// Rejections are *types.Error values of kind ErrKindReject wrapping one of the
// package sentinels.
func Reconcile(req Request) (Result, error) {
	if !req.Mode.Valid() {
		return Result{}, types.ErrUnknownMode
	}
	if req.Replacement == "" {
		return Result{}, reject(ErrEmptyReplacement, "nothing to write")
	}
	enc, err := textenc.Encode(req.Encoding, req.Replacement)
	if err != nil {
		return Result{}, err
	}
	in, orig := len(enc), req.OriginalLen
	res := Result{InputLen: in}

	if in == orig {
		res.Payload = enc
		return res, nil
	}

	switch req.Mode {
	case types.ModeExact:
		return Result{}, reject(ErrLengthMismatch, "mode %s: new=%d old=%d", req.Mode, in, orig)

	case types.ModePadNull:
		if in > orig {
			return Result{}, reject(ErrModeLength, "mode %s: replacement longer by %d byte(s)", req.Mode, in-orig)
		}
		unit, err := textenc.NullUnit(req.Encoding)
		if err != nil {
			return Result{}, err
		}
		pad, err := fill(unit, orig-in)
		if err != nil {
			return Result{}, err
		}
		res.Payload = append(enc, pad...)
		return res, nil

	case types.ModePadChar:
		if in > orig {
			return Result{}, reject(ErrModeLength, "mode %s: replacement longer by %d byte(s)", req.Mode, in-orig)
		}
		unit, err := padUnit(req.Encoding, req.PadChar)
		if err != nil {
			return Result{}, err
		}
		pad, err := fill(unit, orig-in)
		if err != nil {
			return Result{}, err
		}
		res.Payload = append(enc, pad...)
		return res, nil

	case types.ModeTruncate:
		if in < orig {
			return Result{}, reject(ErrModeLength, "mode %s: replacement shorter by %d byte(s)", req.Mode, orig-in)
		}
		res.Payload = enc[:orig:orig]
		return res, nil
	}
	return Result{}, types.ErrUnknownMode
}

// padUnit encodes a single pad character.
func padUnit(enc types.Encoding, pad string) ([]byte, error) {
	switch utf8.RuneCountInString(pad) {
	case 0:
		return nil, reject(ErrEmptyPad, "mode %s needs a pad character", types.ModePadChar)
	case 1:
	default:
		return nil, reject(ErrPadChar, "got %q", pad)
	}
	return textenc.Encode(enc, pad)
}

// fill repeats unit to exactly gap bytes.
func fill(unit []byte, gap int) ([]byte, error) {
	if len(unit) == 0 || gap%len(unit) != 0 {
		return nil, reject(ErrPadGap, "pad gap %d is not a multiple of encoded pad length %d", gap, len(unit))
	}
	return bytes.Repeat(unit, gap/len(unit)), nil
}

func reject(reason error, format string, args ...any) error {
	return &types.Error{
		Kind: types.ErrKindReject,
		Msg:  fmt.Sprintf(format, args...),
		Err:  reason,
	}
}
