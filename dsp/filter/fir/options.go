package fir

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-sigkit/dsp/filter/zerophase"
	"github.com/cwbudde/algo-sigkit/dsp/window"
)

// Option configures designers, Filter and ZeroPhase.
type Option func(*config)

type config struct {
	window window.Type
	beta   float64
	edge   zerophase.EdgeMode
	padLen int
	logger logrus.FieldLogger
}

func defaultConfig() config {
	return config{
		window: window.TypeBlackmanHarris4Term,
		beta:   8,
		edge:   zerophase.EdgeNone,
		logger: logrus.StandardLogger(),
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithWindow selects the taper used by the designers.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithKaiserBeta sets beta for window.TypeKaiser. Negative values are ignored.
func WithKaiserBeta(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.beta = beta
		}
	}
}

// WithEdgeMode selects the edge policy of a ZeroPhase.
func WithEdgeMode(m zerophase.EdgeMode) Option {
	return func(c *config) {
		c.edge = m
	}
}

// WithPadLen sets the odd-extension length per side. Non-positive values
// are ignored; the default is 3*len(taps).
func WithPadLen(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.padLen = n
		}
	}
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
