// Package design provides digital IIR filter coefficient designers.
//
// [Peak] produces RBJ-cookbook peaking-EQ biquad coefficients, normalized so
// that a0 = 1, consumable by dsp/filter/biquad for runtime processing.
// Designers validate their inputs and never return unnormalized or
// non-finite coefficients: invalid frequencies, sample rates and gains are
// reported through the sentinel errors of this package.
package design
