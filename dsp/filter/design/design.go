package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// DefaultQ is the peaking quality factor used for octave-spaced graphic EQ
// bands. It keeps adjacent bands from ringing into each other.
const DefaultQ = 1.414

var (
	ErrInvalidSampleRate    = errors.New("design: sample rate must be positive and finite")
	ErrInvalidFrequency     = errors.New("design: frequency must be in (0, sampleRate/2)")
	ErrNonFiniteCoefficient = errors.New("design: computed coefficient is not finite")
)

// Peak designs a peaking-EQ biquad centered at freq (Hz) with gainDB boost
// or cut and quality factor q (RBJ Audio EQ Cookbook):
//
//	w0 = 2*pi*freq/sampleRate
//	alpha = sin(w0) / (2*q)
//	A = 10^(gainDB/40)
//	b = [1 + alpha*A, -2*cos(w0), 1 - alpha*A]
//	a = [1 + alpha/A, -2*cos(w0), 1 - alpha/A]
//
// All coefficients are divided by a0. A gain of 0 dB yields B0 = 1 with
// B1 == A1 and B2 == A2, an exact pass-through. A non-positive or
// non-finite q falls back to DefaultQ.
func Peak(freq, gainDB, q, sampleRate float64) (biquad.Coefficients, error) {
	w0, err := normalizedW0(freq, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, gainDB/40)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	c, err := normalizeBiquad(b0, b1, b2, a0, a1, a2)
	if err != nil {
		return biquad.Coefficients{}, fmt.Errorf("%w (freq %g Hz, gain %g dB)", err, freq, gainDB)
	}

	return c, nil
}

// ValidateFrequency reports whether freq can be designed at sampleRate.
func ValidateFrequency(freq, sampleRate float64) error {
	_, err := normalizedW0(freq, sampleRate)
	return err
}

func normalizedW0(freq, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return 0, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || !core.IsFinite(freq) {
		return 0, fmt.Errorf("%w: %g Hz at %g Hz sample rate", ErrInvalidFrequency, freq, sampleRate)
	}

	return 2 * math.Pi * freq / sampleRate, nil
}

func normalizedQ(q float64) float64 {
	if q <= 0 || !core.IsFinite(q) {
		return DefaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) (biquad.Coefficients, error) {
	if a0 == 0 || !core.IsFinite(a0) {
		return biquad.Coefficients{}, ErrNonFiniteCoefficient
	}

	c := biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}

	for _, v := range [...]float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if !core.IsFinite(v) {
			return biquad.Coefficients{}, ErrNonFiniteCoefficient
		}
	}

	return c, nil
}
