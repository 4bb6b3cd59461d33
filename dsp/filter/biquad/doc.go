// Package biquad provides the second-order IIR filter state machine.
//
// A [Section] applies the Direct Form I recurrence
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// defined by immutable [Coefficients]. The section owns the only mutable
// state in the filter core: two input and two output delay registers.
//
// This package provides the processing runtime only. Coefficient derivation
// from a filter family, cutoff and sample rate lives in dsp/filter/design.
package biquad
