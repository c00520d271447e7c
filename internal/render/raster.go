package render

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/bifurc/internal/sweep"
)

// DefaultColors is the blue-ish attractor gradient, indexed by state value.
var DefaultColors = []string{"#5e81ab", "#81a1c0", "#88c0d1", "#81a1c0"}

// DefaultBackground is the dark canvas color.
const DefaultBackground = "#2e3440"

// Options control rasterization. The image is 16:9, sized dpi*16 x dpi*9
// pixels so dpi behaves like a resolution knob.
type Options struct {
	DPI        int
	PointSize  float64 // sample radius in pixels
	Background string
	Colors     []string
}

func DefaultOptions() Options {
	return Options{
		DPI:        350,
		PointSize:  1.0,
		Background: DefaultBackground,
		Colors:     DefaultColors,
	}
}

// Raster draws the sweep result as a density scatter: control value on the
// horizontal axis, state on the vertical, color keyed to the state value.
// Non-finite samples have no pixel position and are skipped; they remain in
// the result itself.
func Raster(res *sweep.Result, opts Options) (*image.RGBA, error) {
	if opts.DPI < 1 {
		return nil, fmt.Errorf("render: dpi must be >= 1, got %d", opts.DPI)
	}
	if opts.PointSize <= 0 {
		opts.PointSize = 1.0
	}
	if opts.Background == "" {
		opts.Background = DefaultBackground
	}
	if len(opts.Colors) == 0 {
		opts.Colors = DefaultColors
	}

	cmap, err := NewColormap(opts.Colors)
	if err != nil {
		return nil, err
	}
	bg, err := colorful.Hex(opts.Background)
	if err != nil {
		return nil, fmt.Errorf("render: bad background %q: %w", opts.Background, err)
	}

	w, h := opts.DPI*16, opts.DPI*9
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, bg)

	if len(res.Columns) == 0 {
		return img, nil
	}

	rLo := res.Columns[0].R
	rHi := res.Columns[len(res.Columns)-1].R
	xLo, xHi, ok := res.Bounds()
	if !ok {
		return img, nil
	}
	rSpan := rHi - rLo
	xSpan := xHi - xLo

	for _, col := range res.Columns {
		px := float64(w) / 2
		if rSpan > 0 {
			px = (col.R - rLo) / rSpan * float64(w-1)
		}
		for _, v := range col.States {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			t := 0.5
			if xSpan > 0 {
				t = (v - xLo) / xSpan
			}
			py := float64(h-1) - t*float64(h-1)
			disc(img, px, py, opts.PointSize, cmap.At(t))
		}
	}
	return img, nil
}

// WriteImage encodes img to path; the extension picks the format
// (.png default, .jpg/.jpeg supported).
func WriteImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		return png.Encode(f, img)
	}
}

func fill(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func disc(img *image.RGBA, cx, cy, radius float64, c color.Color) {
	r := int(math.Ceil(radius))
	x0, y0 := int(math.Round(cx)), int(math.Round(cy))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) > radius*radius {
				continue
			}
			x, y := x0+dx, y0+dy
			if image.Pt(x, y).In(img.Bounds()) {
				img.Set(x, y, c)
			}
		}
	}
}
