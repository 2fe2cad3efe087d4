package generic

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ProcessBlock: processBlock,
	})
}

func processBlock(c registry.Coefficients, h registry.History, buf []float64) registry.History {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := h.X1, h.X2, h.Y1, h.Y2

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		xa := buf[i]
		ya := b0*xa + b1*x1 + b2*x2 - a1*y1 - a2*y2

		xb := buf[i+1]
		yb := b0*xb + b1*xa + b2*x1 - a1*ya - a2*y1

		buf[i] = ya
		buf[i+1] = yb

		x2, x1 = xa, xb
		y2, y1 = ya, yb
	}

	if i < n {
		x := buf[i]
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		buf[i] = y

		x2, x1 = x1, x
		y2, y1 = y1, y
	}

	return registry.History{X1: x1, X2: x2, Y1: y1, Y2: y2}
}
