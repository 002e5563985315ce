// Package patch overwrites a matched span in place and checks the result.
//
// Every function acquires its own view of the file and releases it before
// returning: Preview and Verify use read-only mappings, Write uses a
// writable one. Nothing is held across a caller's confirmation prompt.
package patch

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/honeybugserial/stringgeryhtiger/internal/buf"
	"github.com/honeybugserial/stringgeryhtiger/internal/mmfile"
	"github.com/honeybugserial/stringgeryhtiger/internal/scan"
	"github.com/honeybugserial/stringgeryhtiger/internal/textenc"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

var (
	// ErrSpan indicates a span that does not lie inside the file.
	ErrSpan = &types.Error{Kind: types.ErrKindInput, Msg: "patch: span outside file"}
	// ErrPayloadLen indicates a payload whose length differs from the match.
	ErrPayloadLen = &types.Error{Kind: types.ErrKindInput, Msg: "patch: payload length differs from match length"}
	// ErrMismatch indicates the bytes read back differ from the payload.
	ErrMismatch = &types.Error{Kind: types.ErrKindVerify, Msg: "patch: verification mismatch"}
)

// Preview builds the post-write view of m's context from the file's current
// contents, with the matched span replaced by payload.
func Preview(path string, m types.Match, payload []byte, mode types.Mode, inputLen int) (types.Preview, error) {
	if len(payload) != m.Len() {
		return types.Preview{}, ErrPayloadLen
	}
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return types.Preview{}, &types.Error{Kind: types.ErrKindIO, Msg: "patch: map for preview", Err: err}
	}
	defer cleanup()

	if !buf.Has(data, m.Offset, m.Len()) {
		return types.Preview{}, ErrSpan
	}
	left, right, err := scan.Bounds(data, m.Offset, m.End(), m.Encoding)
	if err != nil {
		return types.Preview{}, err
	}

	before := textenc.Decode(m.Encoding, data[left:right])

	var next bytes.Buffer
	next.Grow(right - left)
	next.Write(data[left:m.Offset])
	next.Write(payload)
	next.Write(data[m.End():right])
	after := textenc.Decode(m.Encoding, next.Bytes())

	return types.Preview{
		Match:      m,
		Mode:       mode,
		Payload:    bytes.Clone(payload),
		InputLen:   inputLen,
		OldContext: before.Text,
		NewContext: after.Text,
	}, nil
}

// Write overwrites exactly len(payload) bytes at off. The file length never
// changes; spans reaching past the end are rejected without touching the file.
func Write(path string, off int, payload []byte) error {
	w, err := mmfile.OpenWritable(path)
	if err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "patch: open for write", Err: err}
	}
	end, ok := buf.AddOverflowSafe(off, len(payload))
	if !ok || !buf.Span(int(w.Size()), off, end) {
		return ErrSpan.Wrap(errors.Join(
			fmt.Errorf("off=%d len=%d size=%d", off, len(payload), w.Size()),
			w.Close(),
		))
	}
	if _, werr := w.WriteAt(payload, int64(off)); werr != nil {
		closeErr := w.Close()
		if errors.Is(werr, mmfile.ErrOutOfRange) {
			return ErrSpan.Wrap(errors.Join(werr, closeErr))
		}
		return &types.Error{Kind: types.ErrKindIO, Msg: "patch: write", Err: errors.Join(werr, closeErr)}
	}
	if err := w.Close(); err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "patch: flush", Err: err}
	}
	return nil
}

// Verify re-reads [off, off+len(want)) and compares it with want.
func Verify(path string, off int, want []byte) (bool, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return false, &types.Error{Kind: types.ErrKindIO, Msg: "patch: map for verify", Err: err}
	}
	defer cleanup()

	got, ok := buf.Slice(data, off, len(want))
	if !ok {
		return false, nil
	}
	return bytes.Equal(got, want), nil
}
