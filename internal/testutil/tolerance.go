package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t require.TestingT, got, want []float64, eps float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.InDelta(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireFloat32sNearlyEqual is RequireSliceNearlyEqual for float32 output
// compared against float64 expectations.
func RequireFloat32sNearlyEqual(t require.TestingT, got []float32, want []float64, eps float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	RequireSliceNearlyEqual(t, Float64s(got), want, eps)
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t require.TestingT, data []float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	for i, v := range data {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
