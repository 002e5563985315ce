// Package types defines the data model shared by the stringgy search and patch
// engines: encodings, match records, replacement modes, write outcomes and
// typed errors.
//
// Design goals:
//   - Match records are values; once built they never change.
//   - Indices are 1-based against the ascending-offset order of a SearchResult.
//   - Encodings and modes are closed enumerations; unknown values are errors.
//   - Typed errors with stable categories (input/reject/verify/backup/io).
//
// This package has no dependencies beyond the standard library.
package types
