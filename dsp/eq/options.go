package eq

import (
	"log/slog"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
)

type config struct {
	proc     []core.ProcessorOption
	bankOpts []bank.Option
	logger   *slog.Logger
}

// Option configures an Equalizer.
type Option func(*config)

// WithSampleRate sets the stream sample rate. Default 44100 Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(c *config) { c.proc = append(c.proc, core.WithSampleRate(sampleRate)) }
}

// WithChannels sets the number of interleaved channels. Each channel keeps
// its own filter history. Default 1.
func WithChannels(channels int) Option {
	return func(c *config) { c.proc = append(c.proc, core.WithChannels(channels)) }
}

// WithBlockSize pre-sizes scratch memory for buffers of up to blockSize
// frames. Longer buffers are accepted and grow the scratch once.
func WithBlockSize(blockSize int) Option {
	return func(c *config) { c.proc = append(c.proc, core.WithBlockSize(blockSize)) }
}

// WithBands replaces the default ten-band layout.
func WithBands(bands []bank.Band) Option {
	return func(c *config) { c.bankOpts = append(c.bankOpts, bank.WithBands(bands)) }
}

// WithBankOptions passes layout options through to bank.New.
func WithBankOptions(opts ...bank.Option) Option {
	return func(c *config) { c.bankOpts = append(c.bankOpts, opts...) }
}

// WithLogger sets the logger for control-path events. Nothing is logged
// from the audio path. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
