// Package backup creates the safety copy taken before a file is patched.
package backup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// TimestampLayout is the time format embedded in backup names.
const TimestampLayout = "20060102-150405"

// maxSuffix bounds the collision search for a free backup name.
const maxSuffix = 10000

// ErrNoFreeName indicates every candidate backup name was taken.
var ErrNoFreeName = errors.New("backup: no free backup name")

// Writer creates and restores backup copies.
// All copies use the temp-file-then-rename pattern so a backup is either
// complete or absent.
type Writer struct {
	clock Clock
}

// NewWriter creates a writer. A nil clock uses the system clock.
func NewWriter(clock Clock) *Writer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Writer{clock: clock}
}

// Name returns the first unused backup path for path:
// <path>.<YYYYMMDD-HHMMSS>.bak, then <...>.bak-1, <...>.bak-2, ...
func (w *Writer) Name(path string) (string, error) {
	base := fmt.Sprintf("%s.%s.bak", path, w.clock.Now().Format(TimestampLayout))
	free, err := unused(base)
	if err != nil {
		return "", err
	}
	if free {
		return base, nil
	}
	for n := 1; n < maxSuffix; n++ {
		cand := fmt.Sprintf("%s-%d", base, n)
		free, err := unused(cand)
		if err != nil {
			return "", err
		}
		if free {
			return cand, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoFreeName, base)
}

func unused(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
}

// Create copies path to a fresh backup name and verifies the copy's size.
// It returns the backup path.
func (w *Writer) Create(path string) (string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("source file not found: %w", err)
	}
	if !stat.Mode().IsRegular() {
		return "", fmt.Errorf("source is not a regular file: %s", path)
	}

	backupPath, err := w.Name(path)
	if err != nil {
		return "", err
	}
	if copyErr := copyAtomic(path, backupPath, stat); copyErr != nil {
		return "", fmt.Errorf("writing backup: %w", copyErr)
	}
	if verifyErr := verifyBackup(backupPath, stat.Size()); verifyErr != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("backup verification failed: %w", verifyErr)
	}
	return backupPath, nil
}

// Restore copies backupPath over path.
func (w *Writer) Restore(path, backupPath string) error {
	stat, err := os.Stat(backupPath)
	if err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}
	if copyErr := copyAtomic(backupPath, path, stat); copyErr != nil {
		return fmt.Errorf("restoring from backup: %w", copyErr)
	}
	return nil
}

// copyAtomic streams src into a temp file next to dst, fsyncs it, carries
// over the mode and modification time from stat, and renames it into place.
func copyAtomic(src, dst string, stat fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	tmpFile, err := os.CreateTemp(dir, ".stringgy-backup-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	cleanup := func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}

	if _, copyErr := io.Copy(tmpFile, in); copyErr != nil {
		cleanup()
		return fmt.Errorf("copying to temp file: %w", copyErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		cleanup()
		return fmt.Errorf("syncing temp file: %w", syncErr)
	}
	// Close before rename (required on Windows)
	if closeErr := tmpFile.Close(); closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, stat.Mode().Perm()); chmodErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting mode: %w", chmodErr)
	}
	_ = os.Chtimes(tmpPath, stat.ModTime(), stat.ModTime())

	if renameErr := os.Rename(tmpPath, dst); renameErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", renameErr)
	}
	// Data is already on disk; a failed directory sync only weakens crash
	// consistency of the name.
	_ = syncDir(dir)
	return nil
}

// syncDir fsyncs a directory to ensure metadata changes are persisted.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("opening directory: %w", err)
	}
	defer d.Close()

	if syncErr := d.Sync(); syncErr != nil {
		return fmt.Errorf("syncing directory: %w", syncErr)
	}
	return nil
}

// verifyBackup checks that the backup exists, is readable and has the
// expected size.
func verifyBackup(path string, expectedSize int64) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}
	if stat.Size() != expectedSize {
		return fmt.Errorf("backup size mismatch: expected %d, got %d", expectedSize, stat.Size())
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("backup file not readable: %w", err)
	}
	f.Close()
	return nil
}
