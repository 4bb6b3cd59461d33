// Package fir provides a streaming FIR filter, windowed-sinc tap designers
// and a zero-phase FIR wrapper.
//
// A [Filter] keeps the last len(taps) inputs in a mirrored ring so each
// output is a single contiguous dot product. Blocks through kernels of
// fftThreshold taps or more are computed by FFT overlap-add (dsp/conv)
// over the history followed by the block; short kernels use a direct
// valid correlation. Both paths produce the same samples as the
// per-sample loop up to rounding.
package fir
