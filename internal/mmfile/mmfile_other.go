//go:build !unix

package mmfile

import (
	"errors"
	"os"
)

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}

// Writable writes through the file handle when mmap is not available.
type Writable struct {
	f    *os.File
	size int64
}

// OpenWritable opens path read-write. The file length is never changed.
func OpenWritable(path string) (*Writable, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Writable{f: f, size: st.Size()}, nil
}

// Size returns the file length at open time.
func (w *Writable) Size() int64 { return w.size }

// WriteAt overwrites len(p) bytes at off. It never extends the file.
func (w *Writable) WriteAt(p []byte, off int64) (int, error) {
	if w.f == nil {
		return 0, ErrClosed
	}
	if err := checkSpan(w.size, off, len(p)); err != nil {
		return 0, err
	}
	return w.f.WriteAt(p, off)
}

// Flush commits written data to stable storage.
func (w *Writable) Flush() error {
	if w.f == nil {
		return ErrClosed
	}
	return w.f.Sync()
}

// Close flushes and closes the file. Calling Close twice is a no-op.
func (w *Writable) Close() error {
	if w.f == nil {
		return nil
	}
	flushErr := w.Flush()
	closeErr := w.f.Close()
	w.f = nil
	return errors.Join(flushErr, closeErr)
}
