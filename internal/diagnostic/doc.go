// Package diagnostic provides structured errors, warnings and notes
// collected while converting a batch of files.
//
// Key capabilities:
//   - Per-file failure records with a stable code
//   - Configuration problems reported before any conversion starts
//   - A combined error for callers that only need pass/fail
package diagnostic
