//go:build amd64 && !purego

package unroll4

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "unroll4",
		// Plain Go. SSE2 is the amd64 baseline, so this only gates on ForceGeneric.
		SIMDLevel:    cpu.SIMDSSE2,
		Priority:     10,
		ProcessBlock: processBlock,
	})
}

// processBlock is a 4x-unrolled scalar kernel. The recursion is serial, so
// the gain comes from keeping history in registers across four samples.
func processBlock(c registry.Coefficients, h registry.History, buf []float64) registry.History {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := h.X1, h.X2, h.Y1, h.Y2

	i := 0
	n := len(buf)
	for ; i+3 < n; i += 4 {
		xa := buf[i]
		ya := b0*xa + b1*x1 + b2*x2 - a1*y1 - a2*y2

		xb := buf[i+1]
		yb := b0*xb + b1*xa + b2*x1 - a1*ya - a2*y1

		xc := buf[i+2]
		yc := b0*xc + b1*xb + b2*xa - a1*yb - a2*ya

		xd := buf[i+3]
		yd := b0*xd + b1*xc + b2*xb - a1*yc - a2*yb

		buf[i] = ya
		buf[i+1] = yb
		buf[i+2] = yc
		buf[i+3] = yd

		x2, x1 = xc, xd
		y2, y1 = yc, yd
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		buf[i] = y

		x2, x1 = x1, x
		y2, y1 = y1, y
	}

	return registry.History{X1: x1, X2: x2, Y1: y1, Y2: y2}
}
