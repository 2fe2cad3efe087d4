// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form I processing for a single second-order
// section defined by [Coefficients]. It keeps separate history for the two
// most recent inputs and outputs, so new coefficients can be installed at any
// block boundary without touching that history.
//
// Multiple sections are cascaded via [Chain]; each section's output is the
// next section's input.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design.
package biquad
