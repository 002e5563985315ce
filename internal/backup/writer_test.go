package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

func newTarget(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.exe")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o640))
	return path
}

func TestNameUsesTimestamp(t *testing.T) {
	path := newTarget(t, "x")
	w := NewWriter(FixedClock(fixedTime))

	name, err := w.Name(path)
	require.NoError(t, err)
	assert.Equal(t, path+".20240309-140507.bak", name)
}

func TestNameAddsSuffixOnCollision(t *testing.T) {
	path := newTarget(t, "x")
	w := NewWriter(FixedClock(fixedTime))
	base := path + ".20240309-140507.bak"

	require.NoError(t, os.WriteFile(base, nil, 0o600))
	name, err := w.Name(path)
	require.NoError(t, err)
	assert.Equal(t, base+"-1", name)

	require.NoError(t, os.WriteFile(base+"-1", nil, 0o600))
	name, err = w.Name(path)
	require.NoError(t, err)
	assert.Equal(t, base+"-2", name)
}

func TestCreateCopiesFile(t *testing.T) {
	path := newTarget(t, "original bytes\x00\x01")
	w := NewWriter(FixedClock(fixedTime))

	bak, err := w.Create(path)
	require.NoError(t, err)
	assert.Equal(t, path+".20240309-140507.bak", bak)

	got, err := os.ReadFile(bak)
	require.NoError(t, err)
	assert.Equal(t, "original bytes\x00\x01", string(got))

	srcInfo, err := os.Stat(path)
	require.NoError(t, err)
	bakInfo, err := os.Stat(bak)
	require.NoError(t, err)
	assert.Equal(t, srcInfo.Mode().Perm(), bakInfo.Mode().Perm())
	assert.True(t, srcInfo.ModTime().Equal(bakInfo.ModTime()))
}

func TestCreateTwiceInSameSecond(t *testing.T) {
	path := newTarget(t, "data")
	w := NewWriter(FixedClock(fixedTime))

	first, err := w.Create(path)
	require.NoError(t, err)
	second, err := w.Create(path)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, first+"-1", second)
}

func TestCreateLeavesNoTempFiles(t *testing.T) {
	path := newTarget(t, "data")
	_, err := NewWriter(nil).Create(path)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCreateMissingSource(t *testing.T) {
	w := NewWriter(nil)
	_, err := w.Create(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source file not found")
}

func TestCreateRejectsDirectory(t *testing.T) {
	_, err := NewWriter(nil).Create(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}

func TestRestore(t *testing.T) {
	path := newTarget(t, "before")
	w := NewWriter(FixedClock(fixedTime))

	bak, err := w.Create(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("after!"), 0o640))

	require.NoError(t, w.Restore(path, bak))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "before", string(got))

	err = w.Restore(path, bak+".nope")
	require.Error(t, err)
}

func TestVerifyBackupSizeMismatch(t *testing.T) {
	path := newTarget(t, "1234")
	err := verifyBackup(path, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size mismatch")
}
