// Package mmfile provides resource-scoped views of a file: a read-only
// mapping for inspection and a separate writable view used only while a patch
// is applied. Callers acquire a view, use it, and release it before any
// blocking interaction; the two are never held over the same file at once by
// this module.
package mmfile

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed indicates use of a view after Close.
	ErrClosed = errors.New("mmfile: view closed")
	// ErrOutOfRange indicates a write that does not fit inside the file.
	ErrOutOfRange = errors.New("mmfile: write outside file")
)

// checkSpan validates that len(p) bytes at off fit inside size bytes.
func checkSpan(size int64, off int64, n int) error {
	if off < 0 || n < 0 || off > size || int64(n) > size-off {
		return fmt.Errorf("%w: off=%d len=%d size=%d", ErrOutOfRange, off, n, size)
	}
	return nil
}
