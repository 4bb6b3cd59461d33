// Package average provides the three-tap symmetric moving average.
//
// Interior samples are (x[i-1]+x[i]+x[i+1])/3, summed left to right and
// divided once. At the ends only the available neighbours are summed and
// the sum is still divided by 3, so edge values are biased toward zero.
// The output has the input's length.
package average

import (
	"fmt"

	"github.com/cwbudde/algo-sigkit/dsp/core"
)

const taps = 3

// ThreeTap smooths s and returns a new float32 slice of the same length.
// A single sample yields x0/3.
func ThreeTap(s core.Series) ([]float32, error) {
	if err := core.RequireSamples(s); err != nil {
		return nil, fmt.Errorf("average: %w", err)
	}

	x := s.Float64s()
	out := make([]float32, len(x))
	last := len(x) - 1

	for i := range x {
		var sum float64
		if i > 0 {
			sum = x[i-1]
		}
		sum += x[i]
		if i < last {
			sum += x[i+1]
		}
		out[i] = float32(sum / taps)
	}

	return out, nil
}
