package fir

import (
	"fmt"

	"github.com/cwbudde/algo-sigkit/dsp/core"
	"github.com/cwbudde/algo-sigkit/dsp/filter/zerophase"
)

// ZeroPhase runs a FIR kernel forward and then backward. It is not safe for
// concurrent use.
type ZeroPhase struct {
	forward  *Filter
	backward *Filter
	cfg      zerophase.Config
}

// NewZeroPhase builds two independent filters over taps. The odd-extension
// length defaults to 3*len(taps).
func NewZeroPhase(taps []float64, opts ...Option) (*ZeroPhase, error) {
	cfg := applyOptions(opts)

	if err := cfg.edge.Validate(); err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}

	fwd, err := New(taps, WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	bwd, err := New(taps, WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	padLen := cfg.padLen
	if padLen <= 0 {
		padLen = 3 * len(taps)
	}

	cfg.logger.WithField("taps", len(taps)).
		WithField("edge", cfg.edge.String()).
		WithField("padLen", padLen).
		Debug("fir: zero-phase filter constructed")

	return &ZeroPhase{
		forward:  fwd,
		backward: bwd,
		cfg:      zerophase.Config{Mode: cfg.edge, PadLen: padLen},
	}, nil
}

// Run filters s forward and backward and returns a float32 slice of the
// same length. Both passes are reset first.
func (z *ZeroPhase) Run(s core.Series) ([]float32, error) {
	if err := core.RequireSamples(s); err != nil {
		return nil, fmt.Errorf("fir: %w", err)
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
		return fmt.Errorf("fir: %w", err)
	}

	return nil
}

// EdgeMode returns the configured edge policy.
func (z *ZeroPhase) EdgeMode() zerophase.EdgeMode { return z.cfg.Mode }

// Coefficients returns a copy of the taps shared by both passes.
func (z *ZeroPhase) Coefficients() []float64 { return z.forward.Coefficients() }
