package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-sigkit/dsp/window"
)

// Lowpass designs a windowed-sinc lowpass with numTaps taps. cutoff is
// normalised to the sample rate and must lie in (0, 0.5). The taps are
// scaled to unit DC gain.
func Lowpass(numTaps int, cutoff float64, opts ...Option) ([]float64, error) {
	if numTaps < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, numTaps)
	}
	if !validCutoff(cutoff) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCutoff, cutoff)
	}

	cfg := applyOptions(opts)

	h := make([]float64, numTaps)
	center := float64(numTaps-1) / 2
	for n := range h {
		h[n] = idealLowpass(cutoff, float64(n)-center)
	}

	taper(h, cfg)

	if sum := f64.Sum(h); math.Abs(sum) > 1e-12 {
		f64.Scale(h, h, 1/sum)
	}

	cfg.logger.WithField("taps", numTaps).
		WithField("cutoff", cutoff).
		WithField("window", cfg.window.String()).
		Debug("fir: lowpass designed")

	return h, nil
}

// Bandpass designs a windowed-sinc bandpass passing (low, high), both
// normalised to the sample rate. The taps are scaled to unit gain at the
// band centre.
func Bandpass(numTaps int, low, high float64, opts ...Option) ([]float64, error) {
	if numTaps < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, numTaps)
	}
	if !validCutoff(low) || !validCutoff(high) || low >= high {
		return nil, fmt.Errorf("%w: band %v..%v", ErrInvalidCutoff, low, high)
	}

	cfg := applyOptions(opts)

	h := make([]float64, numTaps)
	center := float64(numTaps-1) / 2
	for n := range h {
		m := float64(n) - center
		h[n] = idealLowpass(high, m) - idealLowpass(low, m)
	}

	taper(h, cfg)

	if g := cmplx.Abs(response(h, (low+high)/2)); g > 1e-12 {
		f64.Scale(h, h, 1/g)
	}

	cfg.logger.WithField("taps", numTaps).
		WithField("low", low).
		WithField("high", high).
		WithField("window", cfg.window.String()).
		Debug("fir: bandpass designed")

	return h, nil
}

func validCutoff(fc float64) bool {
	return fc > 0 && fc < 0.5
}

// idealLowpass is the impulse response 2fc*sinc(2fc*m).
func idealLowpass(fc, m float64) float64 {
	if math.Abs(m) < 1e-12 {
		return 2 * fc
	}

	return math.Sin(2*math.Pi*fc*m) / (math.Pi * m)
}

func taper(h []float64, cfg config) {
	window.Apply(cfg.window, h, window.WithAlpha(cfg.beta))
}
