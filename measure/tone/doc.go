// Package tone measures the amplitude of a single sinusoid in a recorded
// signal.
//
// The signal is Hann-windowed, transformed with a power-of-two FFT and the
// energy of the main lobe around the tone's bin is summed. Dividing by the
// window energy gives the amplitude of the sine independent of where the
// tone falls between bins, which makes the measurement suitable for
// comparing the input and output of a filter:
//
//	in := testSignal()           // 1 kHz sine
//	out := process(in)           // equalized copy
//	g, _ := tone.GainDB(in, out, 1000, 44100)
package tone
