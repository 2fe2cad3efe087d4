package eq

import (
	"errors"

	"github.com/cwbudde/algo-eq/dsp/filter/bank"
)

var (
	// ErrInvalidBufferLength is returned when a buffer does not hold whole
	// frames or when source and destination lengths differ.
	ErrInvalidBufferLength = errors.New("eq: buffer length is not a whole number of frames")

	// ErrInvalidGain is returned when the preamp or output gain is NaN or
	// infinite.
	ErrInvalidGain = errors.New("eq: preamp and output gain must be finite")

	// ErrInvalidGainVectorLength is returned when the gain vector does not
	// have exactly one entry per band.
	ErrInvalidGainVectorLength = bank.ErrInvalidGainVectorLength
)
