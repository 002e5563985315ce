package stringgy

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/honeybugserial/stringgeryhtiger/internal/backup"
	"github.com/honeybugserial/stringgeryhtiger/internal/textenc"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

var testClock = backup.FixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local))

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func utf16le(t *testing.T, s string) []byte {
	t.Helper()
	b, err := textenc.Encode(types.UTF16LE, s)
	require.NoError(t, err)
	return b
}

// sampleBinary holds "example.com" once in UTF-8 (offset 4) and once in
// UTF-16LE (offset 32), both surrounded by nulls.
func sampleBinary(t *testing.T) []byte {
	t.Helper()
	var b bytes.Buffer
	b.Write([]byte{0x7f, 'E', 'L', 'F'})
	b.WriteString("example.com")
	b.Write(make([]byte, 32-b.Len()))
	b.Write(utf16le(t, "example.com"))
	b.Write(make([]byte, 8))
	return b.Bytes()
}

func backups(t *testing.T, path string) []string {
	t.Helper()
	got, err := filepath.Glob(path + ".*.bak")
	require.NoError(t, err)
	return got
}
