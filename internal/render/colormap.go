package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap interpolates between a list of color stops, evenly spaced over
// [0, 1]. Blending happens in Luv space so the gradient stays perceptually
// smooth.
type Colormap struct {
	stops []colorful.Color
}

// NewColormap parses hex color stops into a colormap.
func NewColormap(hexes []string) (*Colormap, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("render: colormap needs at least one color")
	}
	stops := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("render: bad color %q: %w", h, err)
		}
		stops = append(stops, c)
	}
	return &Colormap{stops: stops}, nil
}

// At returns the color at position t in [0, 1]. Out-of-range values clamp.
func (m *Colormap) At(t float64) colorful.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if len(m.stops) == 1 {
		return m.stops[0]
	}

	pos := t * float64(len(m.stops)-1)
	i := int(pos)
	if i >= len(m.stops)-1 {
		return m.stops[len(m.stops)-1]
	}
	frac := pos - float64(i)
	return m.stops[i].BlendLuv(m.stops[i+1], frac).Clamped()
}
