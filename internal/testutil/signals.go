package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// SinePCM16 generates a 16-bit PCM sine. amplitude is in LSB and must fit
// the int16 range.
func SinePCM16(freqHz, sampleRate, amplitude float64, length int) []int16 {
	return PCM16(DeterministicSine(freqHz, sampleRate, amplitude, length))
}

// NoisePCM16 generates reproducible 16-bit PCM white noise.
func NoisePCM16(seed int64, amplitude float64, length int) []int16 {
	return PCM16(DeterministicNoise(seed, amplitude, length))
}

// PCM16 rounds x to int16 samples, saturating at the type limits.
func PCM16(x []float64) []int16 {
	out := make([]int16, len(x))
	for i, v := range x {
		v = math.Round(v)
		switch {
		case v > math.MaxInt16:
			v = math.MaxInt16
		case v < math.MinInt16:
			v = math.MinInt16
		}
		out[i] = int16(v)
	}
	return out
}

// Float converts integer PCM to float64 without scaling.
func Float[S ~int8 | ~int16 | ~int32](x []S) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

// Interleave zips per-channel PCM slices of equal length into frames.
func Interleave(channels ...[]int16) []int16 {
	if len(channels) == 0 {
		return nil
	}
	n := len(channels[0])
	out := make([]int16, n*len(channels))
	for ch, data := range channels {
		for i := 0; i < n && i < len(data); i++ {
			out[i*len(channels)+ch] = data[i]
		}
	}
	return out
}

// Channel extracts one channel from interleaved PCM.
func Channel(x []int16, ch, channels int) []int16 {
	out := make([]int16, 0, len(x)/channels)
	for i := ch; i < len(x); i += channels {
		out = append(out, x[i])
	}
	return out
}
