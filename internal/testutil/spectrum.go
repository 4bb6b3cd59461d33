package testutil

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// BinMagnitudes returns |X[k]| for k in [0, len(x)/2] using gonum's real FFT.
func BinMagnitudes(x []float64) []float64 {
	coeffs := fourier.NewFFT(len(x)).Coefficients(nil, x)
	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = cmplx.Abs(c)
	}
	return out
}

// BinMagnitude returns |X[bin]|.
func BinMagnitude(x []float64, bin int) float64 {
	return BinMagnitudes(x)[bin]
}
