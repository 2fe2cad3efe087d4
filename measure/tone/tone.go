package tone

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Lobe half-width in bins before zero-padding. The Hann main lobe spans two
// bins each side; the extra bins pick up near side-lobes.
const lobeBins = 4

var (
	// ErrEmptySignal is returned for signals too short to analyze.
	ErrEmptySignal = errors.New("tone: empty signal")
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("tone: invalid sample rate")
	// ErrInvalidFrequency is returned for frequencies outside (0, fs/2).
	ErrInvalidFrequency = errors.New("tone: invalid frequency")
	// ErrNoReference is returned by GainDB when the input carries no energy
	// at the measured frequency.
	ErrNoReference = errors.New("tone: no reference tone in input")
)

// Amplitude estimates the peak amplitude of the sinusoid at freqHz in
// signal.
func Amplitude(signal []float64, freqHz, sampleRate float64) (float64, error) {
	if len(signal) < 2 {
		return 0, ErrEmptySignal
	}
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return 0, ErrInvalidSampleRate
	}
	if !(freqHz > 0 && freqHz < sampleRate/2) {
		return 0, ErrInvalidFrequency
	}

	n := len(signal)
	fftSize := nextPowerOf2(n)

	win := hann(n)
	windowed := make([]float64, n)
	copy(windowed, signal)
	vecmath.MulBlockInPlace(windowed, win)

	winEnergy := 0.0
	for _, w := range win {
		winEnergy += w * w
	}

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("tone: fft plan %d: %w", fftSize, err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("tone: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	center := int(math.Round(freqHz * float64(fftSize) / sampleRate))
	half := lobeBins * fftSize / n
	lo := max(center-half, 1)
	hi := min(center+half, bins-2)

	sum := 0.0
	for k := lo; k <= hi; k++ {
		sum += power[k]
	}

	return math.Sqrt(4 * sum / (float64(fftSize) * winEnergy)), nil
}

// GainDB returns the level change of the tone at freqHz from in to out in
// decibels. It fails with ErrNoReference if in is silent at freqHz.
func GainDB(in, out []float64, freqHz, sampleRate float64) (float64, error) {
	a, err := Amplitude(in, freqHz, sampleRate)
	if err != nil {
		return 0, fmt.Errorf("tone: input: %w", err)
	}
	b, err := Amplitude(out, freqHz, sampleRate)
	if err != nil {
		return 0, fmt.Errorf("tone: output: %w", err)
	}
	if a == 0 {
		return 0, fmt.Errorf("%w at %g Hz", ErrNoReference, freqHz)
	}
	return core.LinearToDB(b / a), nil
}

// hann returns a periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
