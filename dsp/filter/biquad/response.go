package biquad

import (
	"math"
	"math/cmplx"
)

// Response returns H(e^jw) at freqHz for a section running at sampleRate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z1 := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate) // e^-jw
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 without complex arithmetic.
//
// Numerator and denominator go through the same polynomial evaluation, so
// a section with B = (1, A1, A2) yields exactly 1.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	cw, c2w := math.Cos(w), math.Cos(2*w)
	return polyPower(c.B0, c.B1, c.B2, cw, c2w) / polyPower(1, c.A1, c.A2, cw, c2w)
}

// polyPower is |p0 + p1*z^-1 + p2*z^-2|^2 on the unit circle.
func polyPower(p0, p1, p2, cw, c2w float64) float64 {
	return p0*p0 + p1*p1 + p2*p2 + 2*p1*(p0+p2)*cw + 2*p0*p2*c2w
}

// MagnitudeDB returns the section gain at freqHz in dB.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians.
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response returns the product of the section responses scaled by the
// chain gain.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns the chain gain at freqHz in dB, including the input
// gain.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// CascadeMagnitudeDB sums the section gains in dB. Used where only a
// coefficient set exists, without a running Chain.
func CascadeMagnitudeDB(coeffs []Coefficients, freqHz, sampleRate float64) float64 {
	var db float64
	for i := range coeffs {
		db += coeffs[i].MagnitudeDB(freqHz, sampleRate)
	}
	return db
}

// ImpulseResponse returns the first n samples of the section's impulse
// response. The section's history is left as it was.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.h
	s.h = History{}
	defer func() { s.h = saved }()

	ir := make([]float64, n)
	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}
	return ir
}
