package design

import (
	"fmt"
	"math"
)

// Family selects the response shape of a filter.
type Family int

const (
	FamilyLowPass Family = iota
	FamilyHighPass
	FamilyBandPass
	FamilyNotch
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyLowPass:
		return "lowpass"
	case FamilyHighPass:
		return "highpass"
	case FamilyBandPass:
		return "bandpass"
	case FamilyNotch:
		return "notch"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// IsBand reports whether the family is specified by two cutoffs.
func (f Family) IsBand() bool {
	return f == FamilyBandPass || f == FamilyNotch
}

// Spec is an immutable filter request. The zero value is not a valid Spec;
// build one with [NewLowPass], [NewHighPass], [NewBandPass], [NewNotch] or [New].
type Spec struct {
	family     Family
	sampleRate float64
	low, high  float64 // equal for lowpass/highpass
}

// NewLowPass returns a lowpass spec with the given cutoff (Hz).
func NewLowPass(cutoff, sampleRate float64) (Spec, error) {
	return build(Spec{family: FamilyLowPass, sampleRate: sampleRate, low: cutoff, high: cutoff})
}

// NewHighPass returns a highpass spec with the given cutoff (Hz).
func NewHighPass(cutoff, sampleRate float64) (Spec, error) {
	return build(Spec{family: FamilyHighPass, sampleRate: sampleRate, low: cutoff, high: cutoff})
}

// NewBandPass returns a bandpass spec passing low..high (Hz).
func NewBandPass(low, high, sampleRate float64) (Spec, error) {
	return build(Spec{family: FamilyBandPass, sampleRate: sampleRate, low: low, high: high})
}

// NewNotch returns a notch spec rejecting low..high (Hz).
func NewNotch(low, high, sampleRate float64) (Spec, error) {
	return build(Spec{family: FamilyNotch, sampleRate: sampleRate, low: low, high: high})
}

// New builds a spec for any family. Lowpass and highpass take one cutoff,
// bandpass and notch take two (low, high).
func New(family Family, sampleRate float64, cutoffs ...float64) (Spec, error) {
	want := 1
	if family.IsBand() {
		want = 2
	}

	switch {
	case family < FamilyLowPass || family > FamilyNotch:
		return Spec{}, fmt.Errorf("design: unknown family %d: %w", int(family), ErrDegenerateFilter)
	case len(cutoffs) != want:
		return Spec{}, fmt.Errorf("design: %s needs %d cutoff(s), got %d: %w",
			family, want, len(cutoffs), ErrInvalidCutoff)
	}

	if want == 1 {
		return build(Spec{family: family, sampleRate: sampleRate, low: cutoffs[0], high: cutoffs[0]})
	}

	return build(Spec{family: family, sampleRate: sampleRate, low: cutoffs[0], high: cutoffs[1]})
}

func build(s Spec) (Spec, error) {
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}

	return s, nil
}

// Validate checks the spec invariants: a positive finite sample rate, every
// cutoff strictly inside (0, Nyquist) and, for band families, low < high.
func (s Spec) Validate() error {
	if s.sampleRate <= 0 || math.IsNaN(s.sampleRate) || math.IsInf(s.sampleRate, 0) {
		return fmt.Errorf("design: sample rate %g: %w", s.sampleRate, ErrInvalidSampleRate)
	}

	nyquist := s.Nyquist()
	for _, fc := range [2]float64{s.low, s.high} {
		if !(fc > 0 && fc < nyquist) { // also rejects NaN
			return fmt.Errorf("design: %s cutoff %g Hz at fs=%g Hz: %w",
				s.family, fc, s.sampleRate, ErrInvalidCutoff)
		}
	}

	if s.family.IsBand() && s.low >= s.high {
		return fmt.Errorf("design: %s band %g..%g Hz: %w", s.family, s.low, s.high, ErrDegenerateFilter)
	}

	if s.family < FamilyLowPass || s.family > FamilyNotch {
		return fmt.Errorf("design: unknown family %d: %w", int(s.family), ErrDegenerateFilter)
	}

	return nil
}

// Family returns the response family.
func (s Spec) Family() Family { return s.family }

// SampleRate returns the sample rate in Hz.
func (s Spec) SampleRate() float64 { return s.sampleRate }

// Nyquist returns half the sample rate.
func (s Spec) Nyquist() float64 { return s.sampleRate / 2 }

// Cutoff returns the cutoff of a lowpass or highpass spec, and the band
// centre of a bandpass or notch spec.
func (s Spec) Cutoff() float64 {
	if s.family.IsBand() {
		return s.Center()
	}

	return s.low
}

// Band returns the low and high cutoffs. For lowpass and highpass both
// values equal the single cutoff.
func (s Spec) Band() (low, high float64) { return s.low, s.high }

// Center returns the arithmetic mean of the cutoffs.
func (s Spec) Center() float64 { return (s.low + s.high) / 2 }

// Q returns the quality factor used for derivation: 1/sqrt(2) for
// lowpass/highpass and centre/bandwidth for band families.
func (s Spec) Q() float64 {
	if s.family.IsBand() {
		return s.Center() / (s.high - s.low)
	}

	return defaultQ
}

// String formats the spec for logs and error messages.
func (s Spec) String() string {
	if s.family.IsBand() {
		return fmt.Sprintf("%s %g..%g Hz @ %g Hz", s.family, s.low, s.high, s.sampleRate)
	}

	return fmt.Sprintf("%s %g Hz @ %g Hz", s.family, s.low, s.sampleRate)
}
