package stringgy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/honeybugserial/stringgeryhtiger/internal/mmfile"
	"github.com/honeybugserial/stringgeryhtiger/internal/scan"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

// ErrInputNotFound indicates the input path does not exist.
var ErrInputNotFound = &types.Error{Kind: types.ErrKindInput, Msg: "input file not found"}

// ErrInputUnreadable indicates the input path exists but cannot be scanned.
var ErrInputUnreadable = &types.Error{Kind: types.ErrKindInput, Msg: "input file unreadable"}

// Search scans path for term and returns matches in ascending offset order.
// The file is mapped read-only for the duration of the call only.
func Search(path, term string, opts *SearchOptions) (*types.SearchResult, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}
	log := loggerOrDiscard(opts.Logger)

	if err := checkInput(path); err != nil {
		return nil, err
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, ErrInputUnreadable.Wrap(err)
	}
	defer cleanup()

	matches, hits, err := scan.Collect(data, term, scan.Options{
		Encodings:  opts.Encodings(),
		IgnoreCase: opts.IgnoreCase,
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", path, err)
	}
	for _, h := range hits {
		log.Debug("searched encoding", "path", path, "encoding", h.Encoding.String(), "hits", h.Count)
	}

	res := &types.SearchResult{
		Path:       path,
		Term:       term,
		IgnoreCase: opts.IgnoreCase,
		Matches:    matches,
		Total:      len(matches),
	}
	if opts.Limit > 0 && len(res.Matches) > opts.Limit {
		res.Matches = res.Matches[:opts.Limit]
	}
	if res.Matches == nil {
		res.Matches = []types.Match{}
	}
	log.Debug("search complete", "path", path, "size", len(data), "total", res.Total, "kept", len(res.Matches))
	return res, nil
}

func checkInput(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrInputNotFound.Wrap(err)
		}
		return ErrInputUnreadable.Wrap(err)
	}
	if !st.Mode().IsRegular() {
		return ErrInputUnreadable.Wrap(fmt.Errorf("%s is not a regular file", path))
	}
	return nil
}

// All returns every 1-based index of res.
func All(res *types.SearchResult) []int {
	idx := make([]int, res.Len())
	for i := range idx {
		idx[i] = i + 1
	}
	return idx
}
