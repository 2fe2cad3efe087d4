package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Deinterleave copies channel ch of the interleaved frames in src into dst
// as float64. dst must hold len(src)/channels values.
func Deinterleave[S Sample](dst []float64, src []S, ch, channels int) {
	if channels == 1 {
		for i, v := range src {
			dst[i] = float64(v)
		}
		return
	}

	for i := range dst {
		dst[i] = float64(src[i*channels+ch])
	}
}

// Interleave quantizes src into channel ch of the interleaved frames in dst,
// saturating to [lo, hi].
func Interleave[S Sample](dst []S, src []float64, ch, channels int, lo, hi float64) {
	if channels == 1 {
		for i, v := range src {
			dst[i] = Quantize[S](v, lo, hi)
		}
		return
	}

	for i, v := range src {
		dst[i*channels+ch] = Quantize[S](v, lo, hi)
	}
}
