//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path into memory and returns its contents.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: mmap read-only: %w", err)
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		data = nil
		return err
	}
	return data, cleanup, nil
}

// Writable is a read-write shared mapping of a whole file.
type Writable struct {
	f    *os.File
	data []byte
	size int64
}

// OpenWritable maps path read-write. The file length is never changed.
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
	w := &Writable{f: f, size: st.Size()}
	if w.size == 0 {
		return w, nil
	}
	if w.size > int64(^uint(0)>>1) {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", w.size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(w.size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: mmap read-write: %w", err)
	}
	w.data = data
	return w, nil
}

// Size returns the mapped file length.
func (w *Writable) Size() int64 { return w.size }

// WriteAt overwrites len(p) bytes at off. It never extends the file.
func (w *Writable) WriteAt(p []byte, off int64) (int, error) {
	if w.f == nil {
		return 0, ErrClosed
	}
	if err := checkSpan(w.size, off, len(p)); err != nil {
		return 0, err
	}
	return copy(w.data[off:], p), nil
}

// Flush synchronously writes dirty pages back to the file.
func (w *Writable) Flush() error {
	if w.f == nil {
		return ErrClosed
	}
	if len(w.data) == 0 {
		return nil
	}
	if err := unix.Msync(w.data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("mmfile: msync: %w", err)
	}
	return nil
}

// Close flushes, unmaps and closes the file. Calling Close twice is a no-op.
func (w *Writable) Close() error {
	if w.f == nil {
		return nil
	}
	flushErr := w.Flush()
	var unmapErr error
	if w.data != nil {
		unmapErr = unix.Munmap(w.data)
		w.data = nil
	}
	closeErr := w.f.Close()
	w.f = nil
	return errors.Join(flushErr, unmapErr, closeErr)
}
