package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequirePCMWithin fails t if got and want differ in length or if any
// sample pair differs by more than lsb.
func RequirePCMWithin[S ~int8 | ~int16 | ~int32](t *testing.T, got, want []S, lsb int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		d := int64(got[i]) - int64(want[i])
		if d < 0 {
			d = -d
		}
		if d > lsb {
			t.Fatalf("index %d: got %d, want %d (diff %d > %d LSB)", i, got[i], want[i], d, lsb)
		}
	}
}
