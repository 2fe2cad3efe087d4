// Package bank provides the fixed-topology peaking filter bank behind a
// graphic equalizer.
//
// A [Bank] is an ordered list of bands, each permanently bound to a center
// frequency and quality factor. The only mutable part is the coefficient
// [Snapshot]: one peaking biquad per band, designed from a gain vector in dB
// and published as a whole through a [Guard]. Readers load the current
// snapshot without blocking and never observe a partially updated set.
//
// The default layout is the classic ten-band graphic EQ:
//
//	31, 62, 125, 250, 500, 1000, 2000, 4000, 8000, 16000 Hz, Q = 1.414
//
// Other layouts are data: [WithBands], [WithCenters] or [WithOctave] build
// banks with any band count, and the gain vector length follows it.
//
// Filter history is not part of the bank. It belongs to the processing path
// (see dsp/eq), so refreshing coefficients can never disturb it.
//
// Basic usage:
//
//	b, err := bank.New(44100)
//	if err != nil { ... }
//	err = b.Refresh([]float64{0, 0, 0, 0, 0, 6, 0, 0, 0, 0})
//	snap := b.Snapshot() // coefficients for all bands, read lock-free
package bank
