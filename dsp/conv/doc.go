// Package conv provides linear convolution for FIR filtering.
//
// Two strategies are offered:
//
//   - Direct convolution: O(N*M) time-domain convolution on SIMD dot
//     products, best for short kernels (< 64 samples)
//   - Overlap-add (OLA): FFT-based block convolution for longer kernels
//
// # Usage
//
// For one-shot convolution:
//
//	result, err := conv.Convolve(signal, kernel)  // Auto-selects best algorithm
//	result, err := conv.Direct(signal, kernel)    // Force direct convolution
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// [Convolve] uses direct convolution up to 64 kernel samples and overlap-add
// above that.
package conv
