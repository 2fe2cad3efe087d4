package core

import "math"

// Clamp limits value to the inclusive range spanned by lo and hi. The bounds
// may be given in either order.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Min(math.Max(value, lo), hi)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// LinearToDB converts an amplitude ratio to dB (20*log10). Zero maps to
// -Inf and negative ratios to NaN.
func LinearToDB(ratio float64) float64 {
	switch {
	case ratio < 0:
		return math.NaN()
	case ratio == 0:
		return math.Inf(-1)
	}

	return 20 * math.Log10(ratio)
}
