package eq

import "github.com/cwbudde/algo-eq/dsp/core"

// SliderMax is the full-scale position of a band slider.
const SliderMax = 100

// SliderToGainDB maps a slider position in [0, SliderMax] linearly onto
// [minDB, maxDB]. Positions outside the range are clamped.
func SliderToGainDB(progress, minDB, maxDB float64) float64 {
	p := core.Clamp(progress, 0, SliderMax)
	return minDB + (maxDB-minDB)*(p/SliderMax)
}

// GainDBToSlider is the inverse of SliderToGainDB. It returns 0 when the
// range is empty.
func GainDBToSlider(gainDB, minDB, maxDB float64) float64 {
	if maxDB == minDB {
		return 0
	}
	return core.Clamp((gainDB-minDB)/(maxDB-minDB)*SliderMax, 0, SliderMax)
}
