package iir

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-sigkit/dsp/filter/zerophase"
)

// Option configures a Filter or ZeroPhase.
type Option func(*config)

type config struct {
	edge   zerophase.EdgeMode
	padLen int
	logger logrus.FieldLogger
}

func defaultConfig() config {
	return config{
		edge:   zerophase.EdgeNone,
		padLen: zerophase.DefaultPadLen,
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

// WithEdgeMode selects the edge policy of a ZeroPhase. Filter ignores it.
func WithEdgeMode(m zerophase.EdgeMode) Option {
	return func(c *config) {
		c.edge = m
	}
}

// WithPadLen sets the odd-extension length per side. Non-positive values
// are ignored.
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
