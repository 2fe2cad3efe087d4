package biquad

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

// twoSectionCoeffs returns two biquad sections for a 4th-order-like cascade.
func twoSectionCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	}
}

func TestNewChain(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	if c.NumSections() != 2 {
		t.Fatalf("NumSections: got %d, want 2", c.NumSections())
	}

	if c.Gain() != 1 {
		t.Fatalf("default gain: got %v, want 1", c.Gain())
	}
}

func TestNewChain_WithGain(t *testing.T) {
	c := NewChain(twoSectionCoeffs(), WithGain(0.5))
	if c.Gain() != 0.5 {
		t.Fatalf("gain: got %v, want 0.5", c.Gain())
	}
}

func TestChain_ProcessSample_MatchesManualCascade(t *testing.T) {
	coeffs := twoSectionCoeffs()

	section1 := NewSection(coeffs[0])
	section2 := NewSection(coeffs[1])

	chain := NewChain(coeffs)

	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	for i, x := range input {
		ref := section2.ProcessSample(section1.ProcessSample(x))

		got := chain.ProcessSample(x)
		if !almostEqual(got, ref, eps) {
			t.Errorf("sample %d: chain=%.15f, ref=%.15f", i, got, ref)
		}
	}
}

func TestChain_ProcessBlock_MatchesSample(t *testing.T) {
	for _, gain := range []float64{1, 0.5, 3} {
		t.Run(fmt.Sprintf("gain=%v", gain), func(t *testing.T) {
			ref := NewChain(twoSectionCoeffs(), WithGain(gain))
			got := NewChain(twoSectionCoeffs(), WithGain(gain))

			input := make([]float64, 101)
			for i := range input {
				input[i] = math.Cos(float64(i) * 0.7)
			}

			want := make([]float64, len(input))
			for i, x := range input {
				want[i] = ref.ProcessSample(x)
			}

			buf := append([]float64(nil), input...)
			got.ProcessBlock(buf)

			for i := range buf {
				if !almostEqual(buf[i], want[i], eps) {
					t.Fatalf("sample %d: block=%.15f, sample=%.15f", i, buf[i], want[i])
				}
			}
		})
	}
}

func TestChain_SplitBlocksMatchSingleBlock(t *testing.T) {
	whole := NewChain(twoSectionCoeffs())
	split := NewChain(twoSectionCoeffs())

	input := testutil.DeterministicNoise(21, 1, 97)

	a := append([]float64(nil), input...)
	whole.ProcessBlock(a)

	b := append([]float64(nil), input...)
	split.ProcessBlock(b[:40])
	split.ProcessBlock(b[40:41])
	split.ProcessBlock(b[41:])

	testutil.RequireSliceNearlyEqual(t, b, a, eps)
}

func TestChain_Reset(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	for range 10 {
		c.ProcessSample(1)
	}

	c.Reset()

	for i, st := range c.State() {
		if st != (History{}) {
			t.Fatalf("section %d history after Reset: %+v", i, st)
		}
	}
}

func TestChain_State_SaveRestore(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	for _, x := range []float64{1, -1, 0.5} {
		c.ProcessSample(x)
	}

	saved := c.State()
	y1 := c.ProcessSample(0.3)

	c.SetState(saved)
	y2 := c.ProcessSample(0.3)

	if y1 != y2 {
		t.Fatalf("restore mismatch: %v vs %v", y1, y2)
	}
}

func TestChain_Section_Access(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewChain(coeffs)

	if c.Section(1).Coefficients != coeffs[1] {
		t.Fatalf("Section(1) = %+v, want %+v", c.Section(1).Coefficients, coeffs[1])
	}
}

func TestChain_UpdateCoefficients_PreservesStateWhenSectionCountMatches(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	for range 5 {
		c.ProcessSample(1)
	}

	before := c.State()
	c.UpdateCoefficients([]Coefficients{passthrough(), passthrough()})
	after := c.State()

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("section %d history changed: %+v -> %+v", i, before[i], after[i])
		}
	}

	if c.Section(0).Coefficients != passthrough() {
		t.Fatal("new coefficients not installed")
	}
}

func TestChain_UpdateCoefficients_DifferentSectionCountResetsState(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	for range 5 {
		c.ProcessSample(1)
	}

	c.UpdateCoefficients([]Coefficients{passthrough()})

	if c.NumSections() != 1 {
		t.Fatalf("NumSections = %d, want 1", c.NumSections())
	}
	if st := c.Section(0).State(); st != (History{}) {
		t.Fatalf("expected fresh history, got %+v", st)
	}
}

func TestChain_SetGain(t *testing.T) {
	c := NewChain([]Coefficients{passthrough()})
	c.SetGain(2)

	if got := c.ProcessSample(0.25); got != 0.5 {
		t.Fatalf("ProcessSample = %v, want 0.5", got)
	}
}
