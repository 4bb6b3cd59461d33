package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/sirupsen/logrus"
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-sigkit/dsp/conv"
	"github.com/cwbudde/algo-sigkit/dsp/core"
)

// fftThreshold is the kernel length from which blocks go through FFT
// overlap-add instead of the direct correlation.
const fftThreshold = 64

// Filter is a streaming FIR filter,
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
//
// It is not safe for concurrent use.
type Filter struct {
	coeffs []float64
	rev    []float64 // coeffs reversed, oldest input first

	// delay holds the last N inputs twice so that the window ending at the
	// newest sample is always contiguous.
	delay []float64
	pos   int

	oa   *conv.OverlapAdd
	ext  []float64
	full []float64
}

// New creates a filter from taps. The taps are copied.
func New(taps []float64, opts ...Option) (*Filter, error) {
	if len(taps) == 0 {
		return nil, fmt.Errorf("%w: empty kernel", ErrInvalidTaps)
	}

	cfg := applyOptions(opts)

	c := make([]float64, len(taps))
	copy(c, taps)

	f := &Filter{
		coeffs: c,
		rev:    conv.Reversed(c),
		delay:  make([]float64, 2*len(c)),
	}

	if len(c) >= fftThreshold {
		oa, err := conv.NewOverlapAdd(c, 0)
		if err != nil {
			return nil, fmt.Errorf("fir: %w", err)
		}
		f.oa = oa
	}

	cfg.logger.WithFields(logrus.Fields{
		"taps": len(c),
		"fft":  f.oa != nil,
	}).Debug("fir: filter constructed")

	return f, nil
}

// Process filters s and returns a new float32 slice of the same length.
// The delay line carries over from previous calls.
func (f *Filter) Process(s core.Series) ([]float32, error) {
	if err := core.RequireSamples(s); err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}

	buf := s.Float64s()
	f.ProcessBlock(buf)

	return core.ToFloat32(buf), nil
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.coeffs)
	f.delay[f.pos] = x
	f.delay[f.pos+n] = x

	y := f64.DotProduct(f.rev, f.delay[f.pos+1:f.pos+n+1])

	f.pos++
	if f.pos == n {
		f.pos = 0
	}

	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	f.ProcessBlockTo(buf, buf)
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src
// and may alias it.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]

	n := len(f.coeffs)
	hist := n - 1

	// ext = [last N-1 inputs | src]
	f.ext = core.EnsureLen(f.ext, hist+len(src))
	copy(f.ext, f.delay[f.pos+1:f.pos+n])
	copy(f.ext[hist:], src)

	if f.oa == nil || !f.fftBlock(dst[:len(src)]) {
		conv.ValidTo(dst[:len(src)], f.ext, f.rev)
	}

	f.loadHistory(f.ext)
}

// fftBlock writes the filtered block from the overlap-add convolution of
// ext. It reports false if the transform failed.
func (f *Filter) fftBlock(dst []float64) bool {
	hist := len(f.coeffs) - 1

	f.full = core.EnsureLen(f.full, len(f.ext)+hist)
	if err := f.oa.ProcessTo(f.full, f.ext); err != nil {
		return false
	}

	copy(dst, f.full[hist:hist+len(dst)])

	return true
}

// loadHistory stores the last N samples of ext as the delay line.
func (f *Filter) loadHistory(ext []float64) {
	n := len(f.coeffs)
	last := ext[len(ext)-n:]
	copy(f.delay[:n], last)
	copy(f.delay[n:], last)
	f.pos = 0
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	core.Zero(f.delay)
	f.pos = 0
}

// SetSteadyState fills the delay line as if x had been applied forever.
func (f *Filter) SetSteadyState(x float64) {
	for i := range f.delay {
		f.delay[i] = x
	}
	f.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)

	return c
}

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	return response(f.coeffs, freqHz/sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// response evaluates sum_k h[k] e^{-j 2 pi f k} for a normalised frequency f.
func response(h []float64, f float64) complex128 {
	w := 2 * math.Pi * f

	var sum complex128
	for k, c := range h {
		sum += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return sum
}
