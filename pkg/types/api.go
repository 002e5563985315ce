package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInput    ErrKind = iota // missing/unreadable path, bad index, span outside file
	ErrKindReject                  // replacement cannot be reconciled to the match length
	ErrKindVerify                  // bytes read back after a write differ from the payload
	ErrKindBackup                  // backup could not be created or verified
	ErrKindIO                      // mapping, writing or flushing the target failed
	ErrKindEncoding                // unknown encoding value
)

// String returns a short lowercase name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindInput:
		return "input"
	case ErrKindReject:
		return "reject"
	case ErrKindVerify:
		return "verify"
	case ErrKindBackup:
		return "backup"
	case ErrKindIO:
		return "io"
	case ErrKindEncoding:
		return "encoding"
	}
	return "unknown"
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind and message, so the sentinels
// below can be used with errors.Is even when a copy with a cause is returned.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Wrap returns a copy of e carrying cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Msg: e.Msg, Err: cause}
}

// Sentinels commonly returned by implementations.
var (
	// ErrUnknownEncoding indicates an Encoding value outside the enumeration.
	ErrUnknownEncoding = &Error{Kind: ErrKindEncoding, Msg: "unknown encoding"}
	// ErrUnknownMode indicates a Mode value outside the enumeration.
	ErrUnknownMode = &Error{Kind: ErrKindInput, Msg: "unknown replace mode"}
	// ErrIndexRange indicates a 1-based index outside the result set.
	ErrIndexRange = &Error{Kind: ErrKindInput, Msg: "match index out of range"}
)

// KindOf returns the kind of the first *Error in err's chain.
// ok is false when err carries no typed error.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsFatal reports whether err must end an editing session: backup failures
// and file-level I/O failures are fatal, everything else is local to a match.
func IsFatal(err error) bool {
	kind, ok := KindOf(err)
	if !ok {
		return err != nil
	}
	return kind == ErrKindBackup || kind == ErrKindIO
}
