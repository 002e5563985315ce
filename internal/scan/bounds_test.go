package scan

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

// units builds a little-endian UTF-16 buffer from raw code units.
func units(us ...uint16) []byte {
	b := make([]byte, 2*len(us))
	for i, u := range us {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	return b
}

func TestBoundsUTF8StopsAtNull(t *testing.T) {
	data := []byte("\x00\x00ABexample.comCD\x00tail")
	left, right, err := Bounds(data, 4, 15, types.UTF8)
	require.NoError(t, err)
	assert.Equal(t, "ABexample.comCD", string(data[left:right]))
}

func TestBoundsUTF8ToleratesShortNoise(t *testing.T) {
	data := []byte("\x00ab\x01\x02cd\xffTERM\x80\x81ef\x00")
	start := 8
	left, right, err := Bounds(data, start, start+4, types.UTF8)
	require.NoError(t, err)
	assert.Equal(t, 1, left)
	assert.Equal(t, len(data)-1, right)
}

func TestBoundsUTF8ThirdBadByteStops(t *testing.T) {
	data := []byte("Z\x01\x02\x03abc\x04\x05\x06Q")
	left, right, err := Bounds(data, 4, 7, types.UTF8)
	require.NoError(t, err)
	// The first two bad bytes on each side stay, the third is excluded.
	assert.Equal(t, "\x02\x03abc\x04\x05", string(data[left:right]))
}

func TestBoundsUTF8BufferEdges(t *testing.T) {
	data := []byte("term")
	left, right, err := Bounds(data, 0, 4, types.UTF8)
	require.NoError(t, err)
	assert.Equal(t, 0, left)
	assert.Equal(t, 4, right)
}

func TestBoundsUTF16ToleratesOneBadUnit(t *testing.T) {
	data := units(0x0000, 'a', 0x0001, 'b', 'c', 0x0000)
	left, right, err := Bounds(data, 6, 10, types.UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, 2, left)
	assert.Equal(t, 10, right)
}

func TestBoundsUTF16TwoBadUnitsStop(t *testing.T) {
	data := units('x', 0x0001, 0x0002, 'b', 'c', 0x0003, 'y', 0x0004, 0x0005, 'z')
	left, right, err := Bounds(data, 6, 10, types.UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, 4, left, "stops after one tolerated bad unit on the left")
	assert.Equal(t, 16, right, "keeps 0x0003, y and 0x0004 on the right")
}

func TestBoundsUTF16HighRangeIsText(t *testing.T) {
	data := units(0x0000, 0x4E2D, 0x00E9, 'k', 0x0000)
	left, right, err := Bounds(data, 6, 8, types.UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, 2, left)
	assert.Equal(t, 8, right)
}

func TestBoundsUTF16BigEndian(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 'o', 0x00, 'k', 0x00, 0x00}
	left, right, err := Bounds(data, 4, 6, types.UTF16BE)
	require.NoError(t, err)
	assert.Equal(t, 2, left)
	assert.Equal(t, 6, right)
}

func TestBoundsUTF16SnapsMisalignedSpan(t *testing.T) {
	data := units('a', 'b', 'c', 'd')
	left, right, err := Bounds(data, 3, 5, types.UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, 0, left)
	assert.Equal(t, 8, right)
	assert.Zero(t, left%2)
	assert.Zero(t, right%2)
}

func TestBoundsUTF16OddTrailingByte(t *testing.T) {
	data := append(units('a', 'b'), 'c')
	left, right, err := Bounds(data, 0, 4, types.UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, 0, left)
	assert.Equal(t, 4, right, "a lone trailing byte cannot form a code unit")
}

func TestBoundsRejectsBadSpan(t *testing.T) {
	data := []byte("abc")
	_, _, err := Bounds(data, 2, 5, types.UTF8)
	require.Error(t, err)
	_, _, err = Bounds(data, 0, 1, types.Encoding(4))
	require.ErrorIs(t, err, types.ErrUnknownEncoding)
}
