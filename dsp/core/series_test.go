package core

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_FloatViewIsLossless(t *testing.T) {
	in := []float32{0.1, -2.5, 1e-7, 3.4e38}
	s := FloatSeries(in)

	assert.Equal(t, KindFloat, s.Kind())
	assert.Equal(t, len(in), s.Len())

	got := s.Float64s()
	require.Len(t, got, len(in))
	for i, v := range in {
		assert.Equal(t, v, float32(got[i]), "index %d", i)
	}
}

func TestSeries_IntViewWidensExactly(t *testing.T) {
	in := []int32{0, -1, 2147483647, -2147483648, 16777217}
	s := IntSeries(in)

	assert.Equal(t, KindInt, s.Kind())

	got := s.Float64s()
	require.Len(t, got, len(in))
	for i, v := range in {
		assert.Equal(t, float64(v), got[i], "index %d", i)
	}
}

func TestSeries_ViewIsACopy(t *testing.T) {
	in := []float32{1, 2, 3}
	s := FloatSeries(in)

	view := s.Float64s()
	view[0] = 99

	assert.Equal(t, float32(1), in[0])
	assert.Equal(t, []float32{1, 2, 3}, s.Float32s())
}

func TestSeries_Ints(t *testing.T) {
	in := []int32{4, -7}
	got, ok := IntSeries(in).Ints()
	require.True(t, ok)
	assert.Equal(t, in, got)

	got[0] = 0
	assert.Equal(t, int32(4), in[0])

	_, ok = FloatSeries([]float32{1}).Ints()
	assert.False(t, ok)
}

func TestSeries_EmptyPassesThrough(t *testing.T) {
	var zero Series
	assert.Equal(t, 0, zero.Len())
	assert.NotNil(t, zero.Float64s())
	assert.Empty(t, zero.Float64s())

	assert.Empty(t, IntSeries(nil).Float64s())
	require.ErrorIs(t, RequireSamples(zero), ErrEmptyInput)
	require.NoError(t, RequireSamples(IntSeries([]int32{1})))
}

func TestSeries_FromPCMBuffers(t *testing.T) {
	format := &audio.Format{SampleRate: 8000, NumChannels: 1}

	is := FromIntBuffer(&audio.IntBuffer{Format: format, Data: []int{1, -2, 3}})
	assert.Equal(t, KindInt, is.Kind())
	assert.Equal(t, []float64{1, -2, 3}, is.Float64s())

	fs := FromFloat32Buffer(&audio.Float32Buffer{Format: format, Data: []float32{0.5, -0.25}})
	assert.Equal(t, KindFloat, fs.Kind())
	assert.Equal(t, []float64{0.5, -0.25}, fs.Float64s())

	assert.Equal(t, 0, FromIntBuffer(nil).Len())
	assert.Equal(t, 0, FromFloat32Buffer(nil).Len())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
