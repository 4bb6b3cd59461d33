package design

import "errors"

var (
	// ErrInvalidCutoff is returned when a cutoff is not in (0, Nyquist).
	ErrInvalidCutoff = errors.New("design: cutoff must be in (0, sampleRate/2)")

	// ErrInvalidSampleRate is returned for a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("design: sample rate must be positive and finite")

	// ErrDegenerateFilter is returned for band specs with low >= high and for
	// derived sections whose poles are not strictly inside the unit circle.
	ErrDegenerateFilter = errors.New("design: degenerate filter")
)
