package stringgy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

func TestSearchContextScenario(t *testing.T) {
	path := writeFile(t, []byte("ABexample.comCD\x00"))

	res, err := Search(path, "example.com", nil)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())

	m := res.Matches[0]
	assert.Equal(t, 2, m.Offset)
	assert.Equal(t, types.UTF8, m.Encoding)
	assert.Equal(t, "ABexample.comCD", m.ContextText)
	assert.Equal(t, 0, m.ContextOffset)
	assert.False(t, m.Lossy)
}

func TestSearchBothDefaultEncodings(t *testing.T) {
	path := writeFile(t, sampleBinary(t))

	res, err := Search(path, "example.com", nil)
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())
	assert.Equal(t, 2, res.Total)

	assert.Equal(t, 4, res.Matches[0].Offset)
	assert.Equal(t, types.UTF8, res.Matches[0].Encoding)
	assert.Equal(t, "\x7fELFexample.com", string(res.Matches[0].Context))

	assert.Equal(t, 32, res.Matches[1].Offset)
	assert.Equal(t, types.UTF16LE, res.Matches[1].Encoding)
	assert.Equal(t, "example.com", res.Matches[1].ContextText)
}

func TestSearchIgnoreCase(t *testing.T) {
	path := writeFile(t, []byte("\x00EXAMPLE.com\x00Example.COM\x00"))

	res, err := Search(path, "example.com", nil)
	require.NoError(t, err)
	assert.Zero(t, res.Len())
	assert.NotNil(t, res.Matches)

	res, err = Search(path, "example.com", &SearchOptions{IgnoreCase: true})
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())
	assert.Equal(t, "EXAMPLE.com", string(res.Matches[0].Bytes))
	assert.Equal(t, "Example.COM", string(res.Matches[1].Bytes))
	assert.True(t, res.IgnoreCase)
}

func TestSearchUTF16BEOptIn(t *testing.T) {
	data := append([]byte{0, 0}, 0, 'h', 0, 'i', 0, 0)
	path := writeFile(t, data)

	res, err := Search(path, "hi", nil)
	require.NoError(t, err)
	assert.Zero(t, res.Len())

	res, err = Search(path, "hi", &SearchOptions{IncludeUTF16BE: true})
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	assert.Equal(t, types.UTF16BE, res.Matches[0].Encoding)
	assert.Equal(t, 2, res.Matches[0].Offset)
}

func TestSearchLimit(t *testing.T) {
	path := writeFile(t, []byte("ab\x00ab\x00ab\x00ab"))

	res, err := Search(path, "ab", &SearchOptions{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Len())
	assert.Equal(t, 4, res.Total)
	assert.True(t, res.Limited())
	assert.Equal(t, []int{0, 3}, []int{res.Matches[0].Offset, res.Matches[1].Offset})
}

func TestSearchIsRepeatable(t *testing.T) {
	data := sampleBinary(t)
	path := writeFile(t, data)

	first, err := Search(path, "example", nil)
	require.NoError(t, err)
	second, err := Search(path, "example", nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, after)
}

func TestSearchEmptyFile(t *testing.T) {
	path := writeFile(t, nil)
	res, err := Search(path, "x", nil)
	require.NoError(t, err)
	assert.Zero(t, res.Len())
}

func TestSearchInputErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Search(filepath.Join(dir, "missing.bin"), "x", nil)
	require.ErrorIs(t, err, ErrInputNotFound)
	kind, ok := types.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrKindInput, kind)

	_, err = Search(dir, "x", nil)
	require.ErrorIs(t, err, ErrInputUnreadable)
}

func TestAll(t *testing.T) {
	res := &types.SearchResult{Matches: make([]types.Match, 3)}
	assert.Equal(t, []int{1, 2, 3}, All(res))
	assert.Empty(t, All(nil))
}

func TestReconcileFacade(t *testing.T) {
	m := types.Match{Offset: 0, Encoding: types.UTF8, Bytes: []byte("example.com")}

	got, err := Reconcile(m, "example.io", ReplaceOptions{Mode: types.ModePadChar, PadChar: "_"})
	require.NoError(t, err)
	assert.Equal(t, "example.io_", string(got))

	_, err = Reconcile(m, "example.io", ReplaceOptions{Mode: types.ModeExact})
	require.ErrorIs(t, err, ErrLengthMismatch)

	mode, err := ParseMode("padnul")
	require.NoError(t, err)
	assert.Equal(t, types.ModePadNull, mode)
}
