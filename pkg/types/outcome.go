package types

// Status is the per-match result of a write request.
type Status uint8

const (
	// StatusWritten means the payload was written and read back identically.
	StatusWritten Status = iota
	// StatusSkipped means the write was declined at confirmation.
	StatusSkipped
	// StatusRejected means no payload of the right length could be produced,
	// or the request itself was invalid.
	StatusRejected
	// StatusVerifyFailed means the payload was written but the read-back differed.
	StatusVerifyFailed
	// StatusFailed means the write could not be performed.
	StatusFailed
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusSkipped:
		return "skipped"
	case StatusRejected:
		return "rejected"
	case StatusVerifyFailed:
		return "verify-failed"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// WriteOutcome describes what happened to a single match.
type WriteOutcome struct {
	Index        int      `json:"index,omitempty"`
	Offset       int      `json:"offset"`
	Encoding     Encoding `json:"encoding"`
	BytesWritten int      `json:"bytes_written"`
	Verified     bool     `json:"verified"`
	Status       Status   `json:"status"`
	// Err holds the rejection or verification failure, if any.
	Err error `json:"-"`
}

// Summary aggregates the outcomes of a batch.
type Summary struct {
	SessionID string         `json:"session_id"`
	Backup    string         `json:"backup,omitempty"`
	Outcomes  []WriteOutcome `json:"outcomes"`
	Written   int            `json:"written"`
	Skipped   int            `json:"skipped"`
	Rejected  int            `json:"rejected"`
	Failed    int            `json:"failed"`
}

// Add records an outcome and updates the counters.
func (s *Summary) Add(o WriteOutcome) {
	s.Outcomes = append(s.Outcomes, o)
	switch o.Status {
	case StatusWritten:
		s.Written++
	case StatusSkipped:
		s.Skipped++
	case StatusRejected:
		s.Rejected++
	case StatusVerifyFailed, StatusFailed:
		s.Failed++
	}
}

// Requested returns the number of outcomes recorded.
func (s *Summary) Requested() int { return len(s.Outcomes) }
