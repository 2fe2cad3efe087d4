package core

import (
	"math"
	"unsafe"
)

// Sample is the set of signed integer PCM sample types.
type Sample interface {
	~int8 | ~int16 | ~int32
}

// SampleRange returns the representable range of S as float64,
// e.g. [-32768, 32767] for int16.
func SampleRange[S Sample]() (lo, hi float64) {
	var zero S
	bits := 8 * unsafe.Sizeof(zero)
	hi = float64(int64(1)<<(bits-1) - 1)
	return -hi - 1, hi
}

// Quantize rounds x to the nearest integer and saturates it to [lo, hi].
// NaN maps to zero.
func Quantize[S Sample](x, lo, hi float64) S {
	if math.IsNaN(x) {
		return 0
	}

	return S(Clamp(math.Round(x), lo, hi))
}
