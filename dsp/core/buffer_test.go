package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}

	if grown := EnsureLen(buf, 16); len(grown) != 16 {
		t.Fatalf("grown len = %d, want 16", len(grown))
	}
}

func TestDeinterleaveInterleaveStereo(t *testing.T) {
	src := []int16{1, -1, 2, -2, 3, -3}
	left := make([]float64, 3)
	right := make([]float64, 3)

	Deinterleave(left, src, 0, 2)
	Deinterleave(right, src, 1, 2)

	for i := range left {
		if left[i] != float64(i+1) || right[i] != -float64(i+1) {
			t.Fatalf("frame %d: left %v right %v", i, left[i], right[i])
		}
	}

	lo, hi := SampleRange[int16]()
	dst := make([]int16, 6)
	Interleave(dst, right, 0, 2, lo, hi)
	Interleave(dst, left, 1, 2, lo, hi)

	want := []int16{-1, 1, -2, 2, -3, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestInterleaveMonoSaturates(t *testing.T) {
	lo, hi := SampleRange[int8]()
	dst := make([]int8, 3)
	Interleave(dst, []float64{200, -200, 12.6}, 0, 1, lo, hi)

	if dst[0] != 127 || dst[1] != -128 || dst[2] != 13 {
		t.Fatalf("dst = %v", dst)
	}
}
