package viz

import (
	"math"

	"github.com/san-kum/bifurc/internal/sweep"
)

// Scatter projects the sweep result onto a width x height character canvas:
// control value left to right, state bottom to top. Non-finite samples are
// skipped; they have no pixel position.
func Scatter(res *sweep.Result, width, height int) string {
	canvas := NewCanvas(width, height)
	if len(res.Columns) == 0 {
		return canvas.String()
	}

	rLo := res.Columns[0].R
	rHi := res.Columns[len(res.Columns)-1].R
	xLo, xHi, ok := res.Bounds()
	if !ok {
		return canvas.String()
	}

	pw := float64(width*2 - 1)
	ph := float64(height*4 - 1)
	rSpan := rHi - rLo
	xSpan := xHi - xLo

	for _, col := range res.Columns {
		px := pw / 2
		if rSpan > 0 {
			px = (col.R - rLo) / rSpan * pw
		}
		for _, v := range col.States {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			t := 0.5
			if xSpan > 0 {
				t = (v - xLo) / xSpan
			}
			canvas.Set(int(px), int(ph-t*ph))
		}
	}
	return canvas.String()
}

// SpanProfile returns the attractor span (max-min of the finite states) for
// each control value, in sweep order. A fixed point gives 0; a chaotic band
// gives a wide span.
func SpanProfile(res *sweep.Result) []float64 {
	spans := make([]float64, len(res.Columns))
	for i, col := range res.Columns {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range col.States {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if hi >= lo {
			spans[i] = hi - lo
		}
	}
	return spans
}
