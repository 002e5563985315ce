package stringgy

import (
	"github.com/honeybugserial/stringgeryhtiger/internal/reconcile"
	"github.com/honeybugserial/stringgeryhtiger/internal/textenc"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

// Rejection reasons, usable with errors.Is on a rejected outcome's Err.
var (
	ErrLengthMismatch   = reconcile.ErrLengthMismatch
	ErrModeLength       = reconcile.ErrModeLength
	ErrPadGap           = reconcile.ErrPadGap
	ErrEmptyPad         = reconcile.ErrEmptyPad
	ErrPadChar          = reconcile.ErrPadChar
	ErrEmptyReplacement = reconcile.ErrEmptyReplacement
)

// Reconcile returns the bytes that would replace m: the encoded replacement
// fitted to exactly m.Len() bytes under opts.Mode, or a rejection.
func Reconcile(m types.Match, replacement string, opts ReplaceOptions) ([]byte, error) {
	res, err := reconcileMatch(m, replacement, opts)
	if err != nil {
		return nil, err
	}
	return res.Payload, nil
}

func reconcileMatch(m types.Match, replacement string, opts ReplaceOptions) (reconcile.Result, error) {
	return reconcile.Reconcile(reconcile.Request{
		Encoding:    m.Encoding,
		OriginalLen: m.Len(),
		Replacement: replacement,
		Mode:        opts.Mode,
		PadChar:     opts.PadChar,
	})
}

// ParseMode resolves a mode name such as "padnul" or "truncate".
func ParseMode(s string) (types.Mode, error) { return types.ParseMode(s) }

// Encode returns s as it would be written in enc, before any padding or
// truncation.
func Encode(enc types.Encoding, s string) ([]byte, error) { return textenc.Encode(enc, s) }
