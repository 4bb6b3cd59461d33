// Package design maps a filter request to biquad coefficients.
//
// A [Spec] describes one request: a [Family] (lowpass, highpass, bandpass or
// notch), the sample rate and one or two cutoff frequencies. Specs are
// validated when they are built and again by [Derive], which turns them into
// [biquad.Coefficients] using the RBJ bilinear-transform formulas.
//
// Lowpass and highpass use the Butterworth Q of 1/sqrt(2). Band filters are
// centred on the arithmetic mean of the two cutoffs with Q = centre/bandwidth.
//
// The notch derived here is a single RBJ section. It does not reproduce the
// fourth-order Butterworth band-stop of scientific-computing libraries, and
// its output is not expected to match theirs.
//
// The stand-alone designers [Lowpass], [Highpass], [Bandpass] and [Notch]
// accept an explicit Q for callers that need one.
package design
