package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the roots of 1 + A1*z^-1 + A2*z^-2.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0 + B1*z^-1 + B2*z^-2.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// IsStable reports whether both poles lie strictly inside the unit circle,
// using the stability triangle |A2| < 1, |A1| < 1 + A2. Non-finite
// coefficients are unstable.
func (c *Coefficients) IsStable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// IsStable reports whether every section is stable.
func (c *Chain) IsStable() bool {
	for i := range c.sections {
		if !c.sections[i].IsStable() {
			return false
		}
	}
	return true
}

// quadraticRoots solves a*z^2 + b*z + c = 0. A degenerate a yields the
// single root of the linear equation and 0.
func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	sq := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	mb := complex(-b, 0)
	twoA := complex(2*a, 0)
	return [2]complex128{(mb + sq) / twoA, (mb - sq) / twoA}
}
