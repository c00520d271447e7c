package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/bifurc/internal/sweep"
)

// ScatterSVG renders the sweep result as an SVG scatter. Points are colored
// from the same gradient the raster uses.
func ScatterSVG(res *sweep.Result, width, height int, opts Options) (string, error) {
	if opts.Background == "" {
		opts.Background = DefaultBackground
	}
	if len(opts.Colors) == 0 {
		opts.Colors = DefaultColors
	}
	if opts.PointSize <= 0 {
		opts.PointSize = 1.0
	}

	cmap, err := NewColormap(opts.Colors)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, opts.Background))

	if len(res.Columns) > 0 {
		rLo := res.Columns[0].R
		rHi := res.Columns[len(res.Columns)-1].R
		xLo, xHi, ok := res.Bounds()
		if ok {
			rSpan := rHi - rLo
			xSpan := xHi - xLo
			for _, col := range res.Columns {
				cx := float64(width) / 2
				if rSpan > 0 {
					cx = (col.R - rLo) / rSpan * float64(width)
				}
				for _, v := range col.States {
					if math.IsNaN(v) || math.IsInf(v, 0) {
						continue
					}
					t := 0.5
					if xSpan > 0 {
						t = (v - xLo) / xSpan
					}
					cy := float64(height) - t*float64(height)
					sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, opts.PointSize, cmap.At(t).Hex()))
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String(), nil
}
