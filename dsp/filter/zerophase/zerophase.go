package zerophase

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cwbudde/algo-sigkit/dsp/core"
)

// DefaultPadLen is the odd-extension length for a single biquad, 3*(order+1).
const DefaultPadLen = 9

var (
	// ErrSharedState is returned when forward and backward are the same instance.
	ErrSharedState = errors.New("zerophase: forward and backward passes share state")

	// ErrNilPass is returned when either pass is nil.
	ErrNilPass = errors.New("zerophase: nil pass")

	// ErrUnknownEdgeMode is returned for an EdgeMode outside the defined set.
	ErrUnknownEdgeMode = errors.New("zerophase: unknown edge mode")
)

// Pass is one direction of a forward-backward filter.
type Pass interface {
	// ProcessBlock filters buf in place, carrying state across calls.
	ProcessBlock(buf []float64)
	// Reset returns the pass to its cold state.
	Reset()
}

// SteadyStater is implemented by passes that can be primed as if a constant
// input had been applied forever.
type SteadyStater interface {
	SetSteadyState(x float64)
}

// EdgeMode selects how the ends of the signal are handled.
type EdgeMode int

const (
	EdgeNone EdgeMode = iota
	EdgeWarmUp
	EdgeOddExtension
)

// String returns the mode name.
func (m EdgeMode) String() string {
	switch m {
	case EdgeNone:
		return "none"
	case EdgeWarmUp:
		return "warm-up"
	case EdgeOddExtension:
		return "odd-extension"
	default:
		return fmt.Sprintf("EdgeMode(%d)", int(m))
	}
}

// Validate returns ErrUnknownEdgeMode unless m is one of the defined modes.
func (m EdgeMode) Validate() error {
	if m < EdgeNone || m > EdgeOddExtension {
		return fmt.Errorf("%w: %d", ErrUnknownEdgeMode, int(m))
	}

	return nil
}

// Config controls [Apply].
type Config struct {
	Mode EdgeMode
	// PadLen is the odd-extension length per side. Values <= 0 select
	// DefaultPadLen. It is clamped to len(buf)-1.
	PadLen int
}

// Apply resets both passes and filters buf in place, forward then backward.
// The result has the same length as buf. An empty buf is left untouched.
func Apply(forward, backward Pass, buf []float64, cfg Config) error {
	if isNil(forward) || isNil(backward) {
		return ErrNilPass
	}

	if sameInstance(forward, backward) {
		return fmt.Errorf("zerophase: %T used for both passes: %w", forward, ErrSharedState)
	}

	if err := cfg.Mode.Validate(); err != nil {
		return err
	}

	forward.Reset()
	backward.Reset()

	if len(buf) == 0 {
		return nil
	}

	switch cfg.Mode {
	case EdgeNone:
		twoPass(forward, backward, buf)
	case EdgeWarmUp:
		warm := make([]float64, len(buf))
		copy(warm, buf)
		backward.ProcessBlock(warm)
		twoPass(forward, backward, buf)
	case EdgeOddExtension:
		oddExtension(forward, backward, buf, cfg.PadLen)
	}

	return nil
}

func twoPass(forward, backward Pass, buf []float64) {
	forward.ProcessBlock(buf)
	core.Reverse(buf)
	backward.ProcessBlock(buf)
	core.Reverse(buf)
}

func oddExtension(forward, backward Pass, buf []float64, padLen int) {
	n := len(buf)
	if padLen <= 0 {
		padLen = DefaultPadLen
	}

	pad := min(padLen, n-1)
	ext := OddExtend(buf, pad)

	prime(forward, ext[0])
	forward.ProcessBlock(ext)
	core.Reverse(ext)
	prime(backward, ext[0])
	backward.ProcessBlock(ext)
	core.Reverse(ext)

	copy(buf, ext[pad:pad+n])
}

// OddExtend returns x padded with pad samples of odd reflection about each
// end point: 2*x[0]-x[pad..1] before and 2*x[n-1]-x[n-2..n-1-pad] after.
// pad must be in [0, len(x)-1].
func OddExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)

	first, last := x[0], x[n-1]
	for i := range pad {
		ext[i] = 2*first - x[pad-i]
		ext[pad+n+i] = 2*last - x[n-2-i]
	}

	copy(ext[pad:], x)

	return ext
}

func prime(p Pass, x float64) {
	if s, ok := p.(SteadyStater); ok {
		s.SetSteadyState(x)
	}
}

func isNil(p Pass) bool {
	if p == nil {
		return true
	}

	v := reflect.ValueOf(p)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

func sameInstance(a, b Pass) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		return false
	}

	return va.Pointer() == vb.Pointer()
}
