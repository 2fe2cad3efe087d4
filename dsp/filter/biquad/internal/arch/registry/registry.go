// Package registry selects the biquad block kernel for the running CPU.
//
// Kernels register themselves from init functions in their own packages;
// build tags decide which of those packages are linked in.
package registry

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are biquad transfer coefficients (a0 normalized to 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// History is the Direct Form I delay line of one section.
type History struct {
	X1, X2 float64
	Y1, Y2 float64
}

// ProcessBlockFn processes buf in-place with one Direct Form I section and
// returns the updated history.
type ProcessBlockFn func(c Coefficients, h History, buf []float64) History

// OpEntry is one registered kernel.
type OpEntry struct {
	Name         string
	SIMDLevel    cpu.SIMDLevel // minimum instruction set required
	Priority     int           // higher wins among supported entries
	ProcessBlock ProcessBlockFn
}

// OpRegistry holds kernels ordered by descending priority.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the registry the biquad package dispatches through.
var Global = &OpRegistry{}

// Register adds entry. Entries of equal priority keep registration order.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, _ := slices.BinarySearchFunc(r.entries, entry.Priority, func(e OpEntry, p int) int {
		if e.Priority >= p {
			return -1
		}
		return 1
	})
	r.entries = slices.Insert(r.entries, i, entry)
}

// Lookup returns the highest-priority entry the CPU supports, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if supports(features, r.entries[i].SIMDLevel) {
			e := r.entries[i]
			return &e
		}
	}

	return nil
}

func supports(features cpu.Features, level cpu.SIMDLevel) bool {
	switch {
	case level == cpu.SIMDNone:
		return true
	case features.ForceGeneric:
		return false
	case level == cpu.SIMDSSE2:
		return features.HasSSE2
	case level == cpu.SIMDAVX2:
		return features.HasAVX2
	case level == cpu.SIMDNEON:
		return features.HasNEON
	}
	return false
}

// ListEntries returns a copy of the entries in lookup order.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

// Reset removes all entries. Tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}
