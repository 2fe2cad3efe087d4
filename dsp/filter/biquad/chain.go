package biquad

import "github.com/cwbudde/algo-vecmath"

// Chain runs biquad sections in series: the output of section i is the
// input of section i+1. An input gain is applied before the first section.
type Chain struct {
	sections []Section
	gain     float64
}

type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain sets the input gain. Default 1.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain builds a cascade with one section per coefficient set and zero
// history.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Chain{gain: cfg.gain}
	c.setSections(coeffs)
	return c
}

// ProcessSample runs one sample through the cascade.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}
	return x
}

// ProcessBlock filters buf in place, one section at a time over the whole
// block. For fixed coefficients the result equals calling ProcessSample on
// every element.
func (c *Chain) ProcessBlock(buf []float64) {
	if len(buf) == 0 {
		return
	}
	if c.gain != 1 {
		vecmath.ScaleBlock(buf, buf, c.gain)
	}
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset zeroes the history of every section.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of sections.
func (c *Chain) NumSections() int { return len(c.sections) }

// Gain returns the input gain.
func (c *Chain) Gain() float64 { return c.gain }

// SetGain sets the input gain.
func (c *Chain) SetGain(g float64) { c.gain = g }

// UpdateCoefficients installs a new coefficient set. With the same number of
// sections every history is kept, so the output continues without a jump.
// A different count rebuilds the cascade with zero history.
func (c *Chain) UpdateCoefficients(coeffs []Coefficients) {
	if len(coeffs) != len(c.sections) {
		c.setSections(coeffs)
		return
	}
	for i := range c.sections {
		c.sections[i].Coefficients = coeffs[i]
	}
}

func (c *Chain) setSections(coeffs []Coefficients) {
	c.sections = make([]Section, len(coeffs))
	for i, k := range coeffs {
		c.sections[i].Coefficients = k
	}
}

// Section returns the i-th section.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// State returns a copy of every section's history.
func (c *Chain) State() []History {
	states := make([]History, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].h
	}
	return states
}

// SetState restores histories saved with State. Extra entries are ignored
// and missing ones leave their sections unchanged.
func (c *Chain) SetState(states []History) {
	for i := range min(len(states), len(c.sections)) {
		c.sections[i].h = states[i]
	}
}
