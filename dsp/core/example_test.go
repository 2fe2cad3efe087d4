package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(48000),
		core.WithChannels(2),
	)

	fmt.Printf("sampleRate=%.0f channels=%d\n", cfg.SampleRate, cfg.Channels)

	// Output:
	// sampleRate=48000 channels=2
}

func ExampleQuantize() {
	lo, hi := core.SampleRange[int16]()
	fmt.Println(core.Quantize[int16](65534.0, lo, hi), core.Quantize[int16](-12.5, lo, hi))

	// Output:
	// 32767 -13
}
