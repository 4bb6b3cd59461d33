package core

import (
	"errors"

	"github.com/go-audio/audio"
)

// ErrEmptyInput is returned by consumers that require at least one sample.
var ErrEmptyInput = errors.New("core: empty input")

// Kind identifies the storage representation of a Series.
type Kind int

const (
	// KindFloat stores samples as float32.
	KindFloat Kind = iota
	// KindInt stores samples as int32.
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// Series is an ordered sequence of samples stored either as float32 or as
// int32. The zero value is an empty float series.
//
// A Series wraps the caller's slice without copying it. Filters never keep a
// reference past the call that consumes the series; they read it once into
// their own float64 buffer.
type Series struct {
	kind   Kind
	floats []float32
	ints   []int32
}

// FloatSeries wraps float32 samples.
func FloatSeries(samples []float32) Series {
	return Series{kind: KindFloat, floats: samples}
}

// IntSeries wraps int32 samples.
func IntSeries(samples []int32) Series {
	return Series{kind: KindInt, ints: samples}
}

// FromIntBuffer builds an integer series from a decoded PCM buffer.
// Samples outside the int32 range are truncated by the conversion.
func FromIntBuffer(buf *audio.IntBuffer) Series {
	if buf == nil {
		return IntSeries(nil)
	}

	out := make([]int32, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = int32(v) //nolint:gosec
	}

	return IntSeries(out)
}

// FromFloat32Buffer builds a float series from a float32 PCM buffer.
func FromFloat32Buffer(buf *audio.Float32Buffer) Series {
	if buf == nil {
		return FloatSeries(nil)
	}

	return FloatSeries(buf.Data)
}

// Kind reports the storage representation.
func (s Series) Kind() Kind { return s.kind }

// Len returns the number of samples.
func (s Series) Len() int {
	if s.kind == KindInt {
		return len(s.ints)
	}

	return len(s.floats)
}

// Float64s returns a newly allocated float64 copy of the samples.
// Float samples are converted losslessly and integer samples are widened to
// their exact value. An empty series yields an empty, non-nil slice.
func (s Series) Float64s() []float64 {
	out := make([]float64, s.Len())

	switch s.kind {
	case KindInt:
		for i, v := range s.ints {
			out[i] = float64(v)
		}
	default:
		for i, v := range s.floats {
			out[i] = float64(v)
		}
	}

	return out
}

// Float32s returns a newly allocated float32 copy of the samples.
// Integers with a magnitude above 2^24 are rounded to the nearest float32.
func (s Series) Float32s() []float32 {
	out := make([]float32, s.Len())

	switch s.kind {
	case KindInt:
		for i, v := range s.ints {
			out[i] = float32(v)
		}
	default:
		copy(out, s.floats)
	}

	return out
}

// Ints returns a copy of the integer samples. ok is false for a float series.
func (s Series) Ints() (ints []int32, ok bool) {
	if s.kind != KindInt {
		return nil, false
	}

	out := make([]int32, len(s.ints))
	copy(out, s.ints)

	return out, true
}

// RequireSamples returns ErrEmptyInput if s holds no samples.
func RequireSamples(s Series) error {
	if s.Len() == 0 {
		return ErrEmptyInput
	}

	return nil
}
