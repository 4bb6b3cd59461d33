// Package iir provides the biquad streaming filter and its zero-phase
// (forward-backward) counterpart.
//
// A [Filter] owns one [design.Spec], the coefficients derived from it and one
// [biquad.Section]. Its state carries over between calls to Process until
// Reset is called.
//
// A [ZeroPhase] owns two sections built from the same coefficients. Every Run
// starts both of them cold, so repeated runs on the same input are identical.
//
// NaN and Inf samples are not errors. They propagate through the recurrence.
package iir
