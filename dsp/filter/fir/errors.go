package fir

import "errors"

var (
	// ErrInvalidTaps is returned for an empty kernel or a non-positive tap count.
	ErrInvalidTaps = errors.New("fir: invalid tap count")

	// ErrInvalidCutoff is returned for normalised cutoffs outside (0, 0.5)
	// or an empty band.
	ErrInvalidCutoff = errors.New("fir: invalid cutoff")
)
