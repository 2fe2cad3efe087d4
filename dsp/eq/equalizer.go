package eq

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-vecmath"
)

// Sample is the set of PCM sample types the equalizer accepts.
type Sample = core.Sample

// Equalizer is a multi-band peaking equalizer with persistent filter state.
type Equalizer struct {
	bank     *bank.Bank
	flat     *bank.Snapshot
	channels int
	logger   *slog.Logger

	enabled  atomic.Bool
	resetReq atomic.Bool

	// Audio path only.
	chains    []*biquad.Chain
	installed *bank.Snapshot
	scratch   []float64
}

// New creates an equalizer with every band at 0 dB.
func New(opts ...Option) (*Equalizer, error) {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	proc := core.ApplyProcessorOptions(cfg.proc...)

	b, err := bank.New(proc.SampleRate, cfg.bankOpts...)
	if err != nil {
		return nil, fmt.Errorf("eq: %w", err)
	}

	flat := b.Snapshot()
	e := &Equalizer{
		bank:      b,
		flat:      flat,
		channels:  proc.Channels,
		logger:    cfg.logger,
		chains:    make([]*biquad.Chain, proc.Channels),
		installed: flat,
		scratch:   make([]float64, proc.BlockSize),
	}
	for ch := range e.chains {
		e.chains[ch] = biquad.NewChain(flat.Coeffs)
	}
	e.enabled.Store(true)

	e.logger.Debug("equalizer created",
		"sampleRate", proc.SampleRate,
		"channels", proc.Channels,
		"bands", b.NumBands(),
		"blockSize", proc.BlockSize)

	return e, nil
}

// Process equalizes one buffer of interleaved 16-bit frames in place.
//
// gainsDB holds one level per band. preamp scales the input before the
// bands and output scales the result before it is rounded and saturated.
//
// A malformed buffer or gain vector, or a non-finite preamp or output
// gain, is reported without touching samples.
// If the gains are well-formed but a band cannot be designed from them, the
// buffer is still processed with the previous coefficients and the design
// error is returned.
func (e *Equalizer) Process(samples []int16, preamp, output float64, gainsDB []float64) error {
	return Apply(e, samples, preamp, output, gainsDB)
}

// ProcessTo equalizes src into dst, leaving src unchanged. dst and src must
// have the same length and may be the same slice.
func (e *Equalizer) ProcessTo(dst, src []int16, preamp, output float64, gainsDB []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst has %d samples, src %d", ErrInvalidBufferLength, len(dst), len(src))
	}
	if err := e.validate(len(src), preamp, output, gainsDB); err != nil {
		return err
	}

	copy(dst, src)
	return Apply(e, dst, preamp, output, gainsDB)
}

// ProcessCurrent equalizes one buffer in place with the gains last
// installed through SetGains.
func (e *Equalizer) ProcessCurrent(samples []int16, preamp, output float64) error {
	return ApplyCurrent(e, samples, preamp, output)
}

// Apply is Process for any supported sample type.
func Apply[S Sample](e *Equalizer, samples []S, preamp, output float64, gainsDB []float64) error {
	if err := e.validate(len(samples), preamp, output, gainsDB); err != nil {
		return err
	}

	err := e.bank.Refresh(gainsDB)
	run(e, samples, preamp, output)

	return err
}

// ApplyCurrent is ProcessCurrent for any supported sample type.
func ApplyCurrent[S Sample](e *Equalizer, samples []S, preamp, output float64) error {
	if len(samples)%e.channels != 0 {
		return e.bufferLengthError(len(samples))
	}
	if err := checkScale(preamp, output); err != nil {
		return err
	}

	run(e, samples, preamp, output)
	return nil
}

// SetGains installs a new gain vector from the control path. It is safe to
// call concurrently with processing; the audio path picks it up at the
// start of its next buffer.
func (e *Equalizer) SetGains(gainsDB []float64) error {
	if err := e.bank.Refresh(gainsDB); err != nil {
		e.logger.Warn("gain update rejected", "gains", gainsDB, "error", err)
		return err
	}
	return nil
}

// Gains returns a copy of the installed gain vector.
func (e *Equalizer) Gains() []float64 {
	return append([]float64(nil), e.bank.Snapshot().GainsDB...)
}

// SetEnabled switches the bands on or off. While disabled every band is
// flat but preamp, output gain and saturation still apply, and the filter
// history keeps running so switching back does not click.
func (e *Equalizer) SetEnabled(enabled bool) {
	if e.enabled.Swap(enabled) != enabled {
		e.logger.Debug("equalizer toggled", "enabled", enabled)
	}
}

// Enabled reports whether the bands are active.
func (e *Equalizer) Enabled() bool { return e.enabled.Load() }

// Reset clears the filter history of every channel. Audio path only.
func (e *Equalizer) Reset() {
	for _, c := range e.chains {
		c.Reset()
	}
}

// RequestReset asks the audio path to clear history at the start of its
// next buffer. Safe from any goroutine.
func (e *Equalizer) RequestReset() { e.resetReq.Store(true) }

// Response returns the magnitude response in dB of the active band
// cascade at freqHz, excluding preamp and output gain.
func (e *Equalizer) Response(freqHz float64) float64 {
	return e.active().MagnitudeDB(freqHz, e.bank.SampleRate())
}

// Bands returns the band layout in gain vector order.
func (e *Equalizer) Bands() []bank.Band { return e.bank.Bands() }

// NumBands returns the required gain vector length.
func (e *Equalizer) NumBands() int { return e.bank.NumBands() }

// Channels returns the number of interleaved channels.
func (e *Equalizer) Channels() int { return e.channels }

// SampleRate returns the stream sample rate.
func (e *Equalizer) SampleRate() float64 { return e.bank.SampleRate() }

func (e *Equalizer) validate(n int, preamp, output float64, gainsDB []float64) error {
	if n%e.channels != 0 {
		return e.bufferLengthError(n)
	}
	if err := checkScale(preamp, output); err != nil {
		return err
	}
	if len(gainsDB) != e.bank.NumBands() {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidGainVectorLength, len(gainsDB), e.bank.NumBands())
	}
	return nil
}

// checkScale rejects linear gains that would poison the filter history.
func checkScale(preamp, output float64) error {
	if !core.IsFinite(preamp) || !core.IsFinite(output) {
		return fmt.Errorf("%w: preamp %v, output %v", ErrInvalidGain, preamp, output)
	}
	return nil
}

func (e *Equalizer) bufferLengthError(n int) error {
	return fmt.Errorf("%w: %d samples for %d channels", ErrInvalidBufferLength, n, e.channels)
}

func (e *Equalizer) active() *bank.Snapshot {
	if !e.enabled.Load() {
		return e.flat
	}
	return e.bank.Snapshot()
}

// prepare runs once per buffer: it honors a pending reset and moves the
// active coefficient set into the per-channel cascades.
func (e *Equalizer) prepare() {
	if e.resetReq.Swap(false) {
		e.Reset()
	}

	snap := e.active()
	if snap == e.installed {
		return
	}
	for _, c := range e.chains {
		c.UpdateCoefficients(snap.Coeffs)
	}
	e.installed = snap
}

func run[S Sample](e *Equalizer, samples []S, preamp, output float64) {
	e.prepare()

	frames := len(samples) / e.channels
	if frames == 0 {
		return
	}

	e.scratch = core.EnsureLen(e.scratch, frames)
	buf := e.scratch
	lo, hi := core.SampleRange[S]()

	for ch, c := range e.chains {
		core.Deinterleave(buf, samples, ch, e.channels)
		c.SetGain(preamp)
		c.ProcessBlock(buf)
		if output != 1 {
			vecmath.ScaleBlock(buf, buf, output)
		}
		core.Interleave(samples, buf, ch, e.channels, lo, hi)
	}
}
