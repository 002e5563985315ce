package types

// Match is one occurrence of the encoded search term together with its
// surrounding readable context. Matches are immutable once built.
type Match struct {
	// Offset is the absolute byte offset of the matched span.
	Offset int `json:"offset"`
	// Encoding is the encoding the term was matched in.
	Encoding Encoding `json:"encoding"`
	// Bytes holds the matched span exactly as found in the file.
	Bytes []byte `json:"bytes"`
	// ContextOffset is the absolute offset of the first context byte.
	ContextOffset int `json:"context_offset"`
	// Context holds the expanded readable span; it contains Bytes at
	// Offset-ContextOffset.
	Context []byte `json:"context"`
	// ContextText is Context decoded in Encoding, with U+FFFD placeholders
	// where the bytes did not decode.
	ContextText string `json:"context_text"`
	// Lossy is set when ContextText needed placeholders.
	Lossy bool `json:"lossy"`
}

// Len returns the matched span length in bytes.
func (m Match) Len() int { return len(m.Bytes) }

// End returns the offset one past the matched span.
func (m Match) End() int { return m.Offset + len(m.Bytes) }

// Relative returns the offset of the matched span inside Context.
func (m Match) Relative() int { return m.Offset - m.ContextOffset }

// SearchResult is an ordered set of matches for a single search.
type SearchResult struct {
	Path       string  `json:"path"`
	Term       string  `json:"term"`
	IgnoreCase bool    `json:"ignore_case"`
	Matches    []Match `json:"matches"`
	// Total counts matches before any limit was applied.
	Total int `json:"total"`
}

// Len returns the number of matches held.
func (r *SearchResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Matches)
}

// At resolves a 1-based index into the ascending-offset match list.
func (r *SearchResult) At(index int) (Match, error) {
	if r == nil || index < 1 || index > len(r.Matches) {
		return Match{}, ErrIndexRange
	}
	return r.Matches[index-1], nil
}

// Limited reports whether matches were dropped by a limit.
func (r *SearchResult) Limited() bool {
	return r != nil && r.Total > len(r.Matches)
}
