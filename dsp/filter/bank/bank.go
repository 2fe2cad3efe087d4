package bank

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// octaveRatio is G = 10^(3/10) per IEC 61260.
var octaveRatio = math.Pow(10, 0.3)

const (
	defaultLowerFreq = 20.0
	defaultUpperFreq = 20000.0
)

// DefaultCenters are the center frequencies of the ten-band graphic EQ.
var DefaultCenters = []float64{31, 62, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

var (
	ErrNoBands                 = errors.New("bank: at least one band is required")
	ErrInvalidGainVectorLength = errors.New("bank: gain vector length does not match band count")
)

// Band is one fixed band of a bank.
type Band struct {
	CenterFreq float64 // center frequency in Hz
	Q          float64 // peaking quality factor
}

// DefaultBands returns the ten-band graphic EQ layout.
func DefaultBands() []Band {
	return centersToBands(DefaultCenters, design.DefaultQ)
}

// Snapshot is an immutable coefficient set for every band of a bank,
// together with the gains it was designed from.
type Snapshot struct {
	GainsDB []float64
	Coeffs  []biquad.Coefficients
}

// Matches reports whether s was designed from exactly gainsDB.
func (s *Snapshot) Matches(gainsDB []float64) bool {
	if s == nil || len(s.GainsDB) != len(gainsDB) {
		return false
	}

	for i, g := range gainsDB {
		if s.GainsDB[i] != g {
			return false
		}
	}

	return true
}

// MagnitudeDB returns the cascaded magnitude response in dB of all bands.
func (s *Snapshot) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return biquad.CascadeMagnitudeDB(s.Coeffs, freqHz, sampleRate)
}

// Bank is an ordered, fixed set of peaking bands with a lock-free
// coefficient snapshot.
type Bank struct {
	bands      []Band
	sampleRate float64
	guard      Guard[Snapshot]
}

type bankConfig struct {
	bands []Band
}

func defaultBankConfig() bankConfig {
	return bankConfig{bands: DefaultBands()}
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithBands sets an explicit band layout.
func WithBands(bands []Band) Option {
	return func(cfg *bankConfig) {
		cfg.bands = append([]Band(nil), bands...)
	}
}

// WithCenters builds the layout from center frequencies sharing one Q.
func WithCenters(centers []float64, q float64) Option {
	return func(cfg *bankConfig) {
		cfg.bands = centersToBands(centers, q)
	}
}

// WithQ overrides the quality factor of every band in the layout.
// Options apply in order, so WithQ must follow the layout option it
// modifies.
func WithQ(q float64) Option {
	return func(cfg *bankConfig) {
		if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
			return
		}
		for i := range cfg.bands {
			cfg.bands[i].Q = q
		}
	}
}

// WithOctave builds a 1/fraction-octave layout with IEC 61260 center
// frequencies between 20 Hz and 20 kHz. Q is chosen so each band's -3 dB
// points meet its neighbours (1.414 for full octaves).
func WithOctave(fraction int) Option {
	return func(cfg *bankConfig) {
		if fraction <= 0 {
			return
		}
		centers := OctaveCenters(fraction, defaultLowerFreq, defaultUpperFreq)
		cfg.bands = centersToBands(centers, OctaveQ(1/float64(fraction)))
	}
}

// New builds a bank for sampleRate and installs a flat snapshot.
// Every band frequency must lie strictly between 0 and sampleRate/2.
func New(sampleRate float64, opts ...Option) (*Bank, error) {
	cfg := defaultBankConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if len(cfg.bands) == 0 {
		return nil, ErrNoBands
	}

	b := &Bank{
		bands:      cfg.bands,
		sampleRate: sampleRate,
	}

	for i := range b.bands {
		if b.bands[i].Q <= 0 || math.IsNaN(b.bands[i].Q) || math.IsInf(b.bands[i].Q, 0) {
			b.bands[i].Q = design.DefaultQ
		}
		if err := design.ValidateFrequency(b.bands[i].CenterFreq, sampleRate); err != nil {
			return nil, fmt.Errorf("bank: band %d: %w", i, err)
		}
	}

	flat, err := b.design(make([]float64, len(b.bands)))
	if err != nil {
		return nil, err
	}
	b.guard.Store(flat)

	return b, nil
}

// Refresh designs coefficients for every band from gainsDB (one entry per
// band, in band order) and publishes them as one snapshot.
//
// If any band fails to design, nothing is published and the previous
// snapshot stays installed. Refreshing with the installed gains is a no-op.
func (b *Bank) Refresh(gainsDB []float64) error {
	if len(gainsDB) != len(b.bands) {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidGainVectorLength, len(gainsDB), len(b.bands))
	}

	if b.guard.Load().Matches(gainsDB) {
		return nil
	}

	return b.guard.Update(func(cur *Snapshot) (*Snapshot, error) {
		if cur.Matches(gainsDB) {
			return cur, nil
		}
		return b.design(gainsDB)
	})
}

// Snapshot returns the installed coefficient set. It never blocks.
func (b *Bank) Snapshot() *Snapshot {
	return b.guard.Load()
}

// Bands returns a copy of the band layout, ordered as the gain vector.
func (b *Bank) Bands() []Band {
	return append([]Band(nil), b.bands...)
}

// NumBands returns the number of bands.
func (b *Bank) NumBands() int { return len(b.bands) }

// SampleRate returns the sample rate the bank was built for.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// MagnitudeDB returns the cascaded response in dB of the installed snapshot.
func (b *Bank) MagnitudeDB(freqHz float64) float64 {
	return b.Snapshot().MagnitudeDB(freqHz, b.sampleRate)
}

func (b *Bank) design(gainsDB []float64) (*Snapshot, error) {
	s := &Snapshot{
		GainsDB: append([]float64(nil), gainsDB...),
		Coeffs:  make([]biquad.Coefficients, len(b.bands)),
	}

	for i, band := range b.bands {
		c, err := design.Peak(band.CenterFreq, gainsDB[i], band.Q, b.sampleRate)
		if err != nil {
			return nil, fmt.Errorf("bank: band %d (%g Hz): %w", i, band.CenterFreq, err)
		}
		s.Coeffs[i] = c
	}

	return s, nil
}

// OctaveCenters returns the IEC 61260 base-10 center frequencies
// f = 1000 * G^(k/N) of 1/N-octave bands that fall within
// [lowerHz, upperHz], in ascending order.
func OctaveCenters(fraction int, lowerHz, upperHz float64) []float64 {
	if fraction <= 0 || lowerHz <= 0 || upperHz <= lowerHz {
		return nil
	}

	n := float64(fraction)

	kMin := int(math.Ceil(n * math.Log(lowerHz/1000) / math.Log(octaveRatio)))
	kMax := int(math.Floor(n * math.Log(upperHz/1000) / math.Log(octaveRatio)))
	if kMax < kMin {
		return nil
	}

	centers := make([]float64, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		centers = append(centers, 1000*math.Pow(octaveRatio, float64(k)/n))
	}
	return centers
}

// OctaveQ returns the quality factor of a band bandwidthOct octaves wide:
//
//	Q = sqrt(2^BW) / (2^BW - 1)
func OctaveQ(bandwidthOct float64) float64 {
	r := math.Pow(2, bandwidthOct)
	return math.Sqrt(r) / (r - 1)
}

func centersToBands(centers []float64, q float64) []Band {
	bands := make([]Band, len(centers))
	for i, fc := range centers {
		bands[i] = Band{CenterFreq: fc, Q: q}
	}
	return bands
}
