package iir

import (
	"fmt"

	"github.com/cwbudde/algo-sigkit/dsp/core"
	"github.com/cwbudde/algo-sigkit/dsp/filter/biquad"
	"github.com/cwbudde/algo-sigkit/dsp/filter/design"
	"github.com/cwbudde/algo-sigkit/dsp/filter/zerophase"
)

// ZeroPhase applies a biquad forward and then backward, cancelling its
// phase response. It is not safe for concurrent use.
type ZeroPhase struct {
	spec     design.Spec
	coeffs   biquad.Coefficients
	forward  *biquad.Section
	backward *biquad.Section
	cfg      zerophase.Config
}

// NewZeroPhase derives coefficients for spec and builds the two independent
// sections. The edge policy defaults to [zerophase.EdgeNone].
func NewZeroPhase(spec design.Spec, opts ...Option) (*ZeroPhase, error) {
	cfg := applyOptions(opts)

	if err := cfg.edge.Validate(); err != nil {
		return nil, fmt.Errorf("iir: %w", err)
	}

	c, err := design.Derive(spec)
	if err != nil {
		return nil, fmt.Errorf("iir: %w", err)
	}

	cfg.logger.WithFields(specFields(spec, c)).
		WithField("edge", cfg.edge.String()).
		WithField("padLen", cfg.padLen).
		Debug("iir: zero-phase filter constructed")

	return &ZeroPhase{
		spec:     spec,
		coeffs:   c,
		forward:  biquad.NewSection(c),
		backward: biquad.NewSection(c),
		cfg:      zerophase.Config{Mode: cfg.edge, PadLen: cfg.padLen},
	}, nil
}

// Run filters s forward and backward and returns a float32 slice of the same
// length. Both sections are reset first, so Run does not depend on earlier
// calls.
func (z *ZeroPhase) Run(s core.Series) ([]float32, error) {
	if err := core.RequireSamples(s); err != nil {
		return nil, fmt.Errorf("iir: %w", err)
	}

	buf := s.Float64s()
	if err := z.RunFloat64s(buf); err != nil {
		return nil, err
	}

	return core.ToFloat32(buf), nil
}

// RunFloat64s filters buf in place.
func (z *ZeroPhase) RunFloat64s(buf []float64) error {
	if err := zerophase.Apply(z.forward, z.backward, buf, z.cfg); err != nil {
		return fmt.Errorf("iir: %w", err)
	}

	return nil
}

// EdgeMode returns the configured edge policy.
func (z *ZeroPhase) EdgeMode() zerophase.EdgeMode { return z.cfg.Mode }

// Spec returns the spec the filter was built from.
func (z *ZeroPhase) Spec() design.Spec { return z.spec }

// Coefficients returns the coefficients shared by both passes.
func (z *ZeroPhase) Coefficients() biquad.Coefficients { return z.coeffs }
