package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestCoefficientsPoles_ConjugatePair(t *testing.T) {
	p1 := complex(0.72, 0.19)
	p2 := cmplx.Conj(p1)

	c := Coefficients{
		B0: 1,
		A1: -real(p1 + p2),
		A2: real(p1 * p2),
	}

	poles := c.Poles()
	if !unorderedRootsClose(poles, p1, p2, 1e-12) {
		t.Fatalf("unexpected poles: got=%v want={%v,%v}", poles, p1, p2)
	}
}

func TestCoefficientsZeros_FirstOrder(t *testing.T) {
	c := Coefficients{B0: 0, B1: 1, B2: -0.3}

	zeros := c.Zeros()
	if !unorderedRootsClose(zeros, complex(0.3, 0), 0, 1e-12) {
		t.Fatalf("unexpected zeros: %v", zeros)
	}
}

func TestIsStable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{name: "passthrough", c: passthrough(), want: true},
		{name: "damped", c: Coefficients{B0: 1, A1: -0.2, A2: 0.04}, want: true},
		{name: "on unit circle", c: Coefficients{B0: 1, A2: 1}, want: false},
		{name: "outside", c: Coefficients{B0: 1, A1: -2.5, A2: 1.2}, want: false},
		{name: "nan", c: Coefficients{B0: 1, A1: math.NaN()}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsStable(); got != tt.want {
				t.Fatalf("IsStable() = %v, want %v (poles %v)", got, tt.want, tt.c.Poles())
			}
		})
	}
}

func TestChain_IsStable(t *testing.T) {
	if !NewChain(twoSectionCoeffs()).IsStable() {
		t.Fatal("expected stable chain")
	}

	unstable := append(twoSectionCoeffs(), Coefficients{B0: 1, A1: -2.5, A2: 1.2})
	if NewChain(unstable).IsStable() {
		t.Fatal("expected unstable chain")
	}
}

func unorderedRootsClose(got [2]complex128, want1, want2 complex128, tol float64) bool {
	direct := cmplx.Abs(got[0]-want1) <= tol && cmplx.Abs(got[1]-want2) <= tol
	swapped := cmplx.Abs(got[0]-want2) <= tol && cmplx.Abs(got[1]-want1) <= tol
	return direct || swapped
}
