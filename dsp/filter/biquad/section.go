//nolint:funcorder
package biquad

import (
	"sync"

	archregistry "github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// History is the Direct Form I delay line: the two most recent inputs and
// the two most recent outputs of a section.
type History struct {
	X1, X2 float64
	Y1, Y2 float64
}

// Section is a single biquad filter with coefficients and history.
// It implements Direct Form I processing.
type Section struct {
	Coefficients

	h History
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// NewSection returns a Section initialized with the given coefficients
// and zero history.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.h.X1 + s.B2*s.h.X2 - s.A1*s.h.Y1 - s.A2*s.h.Y2

	s.h.X2 = s.h.X1
	s.h.X1 = x
	s.h.Y2 = s.h.Y1
	s.h.Y1 = y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
//
// The result is bit-identical to calling ProcessSample for each element.
func (s *Section) ProcessBlock(buf []float64) {
	if len(buf) == 0 {
		return
	}

	processBlockInitOnce.Do(initProcessBlockKernel)

	coeffs := archregistry.Coefficients{
		B0: s.B0,
		B1: s.B1,
		B2: s.B2,
		A1: s.A1,
		A2: s.A2,
	}

	s.h = History(processBlockImpl(coeffs, archregistry.History(s.h), buf))
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

func (s *Section) processBlockScalar(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// SetCoefficients installs new coefficients and keeps the history.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// Reset clears the history to zero.
func (s *Section) Reset() {
	s.h = History{}
}

// State returns the current history.
func (s *Section) State() History {
	return s.h
}

// SetState restores a previously saved history.
func (s *Section) SetState(h History) {
	s.h = h
}
