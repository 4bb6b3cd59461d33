package biquad

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// A Coefficients value is plain data and is never mutated by a Section, so
// one value may back any number of independent sections.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// DCGain returns the steady-state gain for a constant input,
// (B0+B1+B2)/(1+A1+A2). It is ±Inf when the section has a pole at z=1.
func (c Coefficients) DCGain() float64 {
	return (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
}

// Section is a single biquad filter with coefficients and delay-line state.
// It implements Direct Form I processing. A Section is not safe for
// concurrent use.
type Section struct {
	Coefficients

	x1, x2 float64 // x[n-1], x[n-2]
	y1, y2 float64 // y[n-1], y[n-2]
}

// NewSection returns a Section initialized with the given coefficients
// and zero (cold) state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
//
// The output is computed before the registers shift, in exactly this order,
// so results are reproducible bit for bit. NaN and Inf propagate.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.x1 + s.B2*s.x2 - s.A1*s.y1 - s.A2*s.y2

	s.x2 = s.x1
	s.x1 = x
	s.y2 = s.y1
	s.y1 = y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	x1, x2, y1, y2 := s.x1, s.x2, s.y1, s.y2

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	s.x1, s.x2, s.y1, s.y2 = x1, x2, y1, y2
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
// Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay line to zero (cold state).
func (s *Section) Reset() {
	s.x1, s.x2 = 0, 0
	s.y1, s.y2 = 0, 0
}

// State returns the current delay-line state [x1, x2, y1, y2].
func (s *Section) State() [4]float64 {
	return [4]float64{s.x1, s.x2, s.y1, s.y2}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [4]float64) {
	s.x1, s.x2 = state[0], state[1]
	s.y1, s.y2 = state[2], state[3]
}

// SetSteadyState primes the delay line as if the constant x had been fed
// forever: the input registers hold x and the output registers hold
// x*DCGain. A subsequent constant input of x then produces no transient.
//
// If the DC gain is not finite the section is reset instead.
func (s *Section) SetSteadyState(x float64) {
	y := x * s.DCGain()
	if y-y != 0 { // NaN or ±Inf
		s.Reset()
		return
	}

	s.x1, s.x2 = x, x
	s.y1, s.y2 = y, y
}
