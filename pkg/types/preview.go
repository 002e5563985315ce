package types

// Preview is shown to the caller before a write is confirmed.
type Preview struct {
	Match Match
	Mode  Mode
	// Payload is the exact byte sequence that will overwrite the match.
	Payload []byte
	// InputLen is the encoded replacement length before padding or truncation.
	InputLen int
	// OldContext is the current decoded context around the match.
	OldContext string
	// NewContext is the decoded context as it will read after the write.
	NewContext string
}
