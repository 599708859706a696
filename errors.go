package spyder

import "errors"

// Sentinel errors for the public API. Wrapped with %w at call sites when
// extra context (recording id, file/line) is useful; never stringified into
// the sentinel definition itself.
var (
	// ErrInvalidArgument indicates collar < 0 or an unknown region filter.
	ErrInvalidArgument = errors.New("spyder: invalid argument")

	// ErrEmptyScoringDomain indicates a supplied UEM produced zero total
	// scored duration. Callers may treat this as a warning and accept the
	// resulting zero Metrics.
	ErrEmptyScoringDomain = errors.New("spyder: empty scoring domain")

	// ErrMissingRecording indicates a reference recording id is absent
	// from the hypothesis set in a batch run.
	ErrMissingRecording = errors.New("spyder: recording missing from hypothesis")
)
