// Package time computes basic statistics and normalisations of a sample
// series. Results are rounded to three decimals.
package time

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-sigkit/dsp/core"
)

const decimals = 1000

func round3(x float64) float64 {
	return math.Round(x*decimals) / decimals
}

func rounded(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(round3(v))
	}

	return out
}

func samples(s core.Series) ([]float64, error) {
	if err := core.RequireSamples(s); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	return s.Float64s(), nil
}

// Average returns the arithmetic mean of s.
func Average(s core.Series) (float64, error) {
	x, err := samples(s)
	if err != nil {
		return 0, err
	}

	return round3(stat.Mean(x, nil)), nil
}

// NormalizeByMean divides every sample by the rounded mean. If the mean
// rounds to zero the float view of s is returned unchanged.
func NormalizeByMean(s core.Series) ([]float32, error) {
	mean, err := Average(s)
	if err != nil {
		return nil, err
	}

	if mean == 0 {
		return s.Float32s(), nil
	}

	x := s.Float64s()
	floats.Scale(1/mean, x)

	return rounded(x), nil
}

// NormalizeByFirst divides every sample by the first one. Integer series
// are divided in integer arithmetic, truncating toward zero. If the first
// sample is zero the float view of s is returned unchanged.
func NormalizeByFirst(s core.Series) ([]float32, error) {
	if err := core.RequireSamples(s); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	if ints, ok := s.Ints(); ok {
		first := ints[0]
		if first == 0 {
			return s.Float32s(), nil
		}

		out := make([]float32, len(ints))
		for i, v := range ints {
			out[i] = float32(v / first)
		}

		return out, nil
	}

	x := s.Float64s()
	if x[0] == 0 {
		return s.Float32s(), nil
	}

	floats.Scale(1/x[0], x)

	return rounded(x), nil
}

// ZScore returns (x - mean) / sigma for every sample, with the rounded mean
// and the population standard deviation around it. If sigma is zero the
// float view of s is returned unchanged.
func ZScore(s core.Series) ([]float32, error) {
	mean, err := Average(s)
	if err != nil {
		return nil, err
	}

	dev := s.Float64s()
	floats.AddConst(-mean, dev)

	sigma := math.Sqrt(floats.Dot(dev, dev) / float64(len(dev)))
	if sigma == 0 {
		return s.Float32s(), nil
	}

	floats.Scale(1/sigma, dev)

	return rounded(dev), nil
}

// MinMax returns [min, max] of s.
func MinMax(s core.Series) ([2]float32, error) {
	x, err := samples(s)
	if err != nil {
		return [2]float32{}, err
	}

	return [2]float32{float32(floats.Min(x)), float32(floats.Max(x))}, nil
}
