package iir

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-sigkit/dsp/core"
	"github.com/cwbudde/algo-sigkit/dsp/filter/biquad"
	"github.com/cwbudde/algo-sigkit/dsp/filter/design"
)

// Filter is a causal biquad filter: one spec, one set of coefficients and
// one delay line. It is not safe for concurrent use.
type Filter struct {
	spec    design.Spec
	coeffs  biquad.Coefficients
	section *biquad.Section
}

// New derives coefficients for spec and returns a filter in the cold state.
// Derivation errors are returned here, never from Process.
func New(spec design.Spec, opts ...Option) (*Filter, error) {
	cfg := applyOptions(opts)

	c, err := design.Derive(spec)
	if err != nil {
		return nil, fmt.Errorf("iir: %w", err)
	}

	cfg.logger.WithFields(specFields(spec, c)).Debug("iir: filter constructed")

	return &Filter{
		spec:    spec,
		coeffs:  c,
		section: biquad.NewSection(c),
	}, nil
}

// Process filters s and returns a new float32 slice of the same length.
// The delay line carries over from previous calls. An empty series returns
// [core.ErrEmptyInput] without touching the filter state.
func (f *Filter) Process(s core.Series) ([]float32, error) {
	if err := core.RequireSamples(s); err != nil {
		return nil, fmt.Errorf("iir: %w", err)
	}

	buf := s.Float64s()
	f.section.ProcessBlock(buf)

	return core.ToFloat32(buf), nil
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	return f.section.ProcessSample(x)
}

// ProcessFloat64s filters buf in place.
func (f *Filter) ProcessFloat64s(buf []float64) {
	f.section.ProcessBlock(buf)
}

// Reset returns the filter to its cold state.
func (f *Filter) Reset() {
	f.section.Reset()
}

// Spec returns the spec the filter was built from.
func (f *Filter) Spec() design.Spec { return f.spec }

// Coefficients returns the derived coefficients.
func (f *Filter) Coefficients() biquad.Coefficients { return f.coeffs }

func specFields(spec design.Spec, c biquad.Coefficients) logrus.Fields {
	low, high := spec.Band()

	return logrus.Fields{
		"family":     spec.Family().String(),
		"sampleRate": spec.SampleRate(),
		"low":        low,
		"high":       high,
		"q":          spec.Q(),
		"b":          [3]float64{c.B0, c.B1, c.B2},
		"a":          [2]float64{c.A1, c.A2},
	}
}
