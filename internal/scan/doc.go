// Package scan finds encoded search terms in a byte buffer and expands each
// hit to the readable text around it.
//
// Three stages run per encoding:
//
//   - Find probes the buffer for the encoded term, advancing one code unit
//     after every hit so overlapping occurrences are all reported. UTF-16 hits
//     are only accepted at even offsets.
//   - Bounds walks outward from a hit until it meets a null unit, a run of
//     non-text units, or the end of the buffer.
//   - Collect combines both into immutable match records sorted by offset.
//
// The buffer is never modified; callers may pass a read-only mapping and
// release it once Collect returns, since match records own copies of their
// bytes.
package scan
