// Package eq implements a real-time graphic equalizer for integer PCM.
//
// An [Equalizer] owns a [bank.Bank] of peaking bands and one biquad cascade
// per channel. Each call to [Equalizer.Process] runs the whole pipeline on
// one buffer:
//
//  1. validate the buffer, preamp, output gain and gain vector (errors
//     leave the buffer alone)
//  2. refresh the band coefficients if the gains changed
//  3. load the coefficient snapshot once for the whole buffer
//  4. per channel: scale by the preamp, run bands 0..N-1 in series, scale
//     by the output gain, round and saturate to the sample type
//
// Filter history survives between calls, so a stream may be split into
// buffers of any size without changing the result.
//
// # Concurrency
//
// Process, ProcessTo, Apply and Reset belong to the audio goroutine and must
// not be called concurrently with each other. SetGains, SetEnabled and
// RequestReset may be called from any goroutine at any time: coefficient
// sets are published atomically and picked up at the next buffer boundary.
// The audio path loads coefficients without locking. Only when the gain
// vector passed to Process or Apply differs from the installed one does it
// take the bank's writer lock to design the new set, so it may wait for a
// concurrent SetGains to finish. Use SetGains with ProcessCurrent to keep
// design work off the audio goroutine entirely.
//
// Basic usage:
//
//	e, err := eq.New(eq.WithSampleRate(48000))
//	if err != nil { ... }
//	gains := []float64{0, 0, 0, 0, 0, 6, 0, 0, 0, 0}
//	for buf := range buffers {
//	    if err := e.Process(buf, 1, 1, gains); err != nil { ... }
//	}
package eq
