package scan

import (
	"bytes"
	"sort"

	"github.com/honeybugserial/stringgeryhtiger/internal/textenc"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

// Options selects the encodings and case handling used by Collect.
type Options struct {
	Encodings  []types.Encoding
	IgnoreCase bool
}

// Hits counts raw occurrences per encoding, in the order they were searched.
type Hits struct {
	Encoding types.Encoding
	Count    int
}

// Collect searches data for term in every requested encoding and returns the
// match records sorted by ascending offset. Records with equal offsets keep
// the order of opts.Encodings.
func Collect(data []byte, term string, opts Options) ([]types.Match, []Hits, error) {
	var (
		matches []types.Match
		hits    []Hits
	)
	for _, enc := range opts.Encodings {
		needle, err := textenc.Encode(enc, term)
		if err != nil {
			return nil, nil, err
		}
		offs, err := Find(data, needle, enc, opts.IgnoreCase)
		if err != nil {
			return nil, nil, err
		}
		hits = append(hits, Hits{Encoding: enc, Count: len(offs)})
		for _, off := range offs {
			m, err := Build(data, off, len(needle), enc)
			if err != nil {
				return nil, nil, err
			}
			matches = append(matches, m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Offset < matches[j].Offset
	})
	return matches, hits, nil
}

// Build creates the match record for the span [off, off+n) in data. All byte
// slices in the record are copies, so data may be unmapped afterwards.
func Build(data []byte, off, n int, enc types.Encoding) (types.Match, error) {
	left, right, err := Bounds(data, off, off+n, enc)
	if err != nil {
		return types.Match{}, err
	}
	ctx := bytes.Clone(data[left:right])
	dec := textenc.Decode(enc, ctx)
	return types.Match{
		Offset:        off,
		Encoding:      enc,
		Bytes:         bytes.Clone(data[off : off+n]),
		ContextOffset: left,
		Context:       ctx,
		ContextText:   dec.Text,
		Lossy:         dec.Lossy,
	}, nil
}
