package sweep

import (
	"fmt"
	"math"

	"github.com/san-kum/bifurc/internal/maps"
)

// Config describes a full parameter sweep.
type Config struct {
	Map     maps.Func // iterated map, selected from the registry
	X0      float64   // initial state of every trajectory
	RMin    float64   // inclusive lower bound of the control-value grid
	RMax    float64   // inclusive upper bound
	RPoints int       // number of control values in [RMin, RMax]
	Skip    int       // transient iterations discarded before sampling
	N       int       // retained samples per control value
	Workers int       // concurrent worker count
}

// Validate checks the configuration. Violations are configuration errors,
// reported before any computation starts.
func (c Config) Validate() error {
	if c.Map == nil {
		return fmt.Errorf("%w: no map selected", ErrBadConfig)
	}
	if c.RPoints < 1 {
		return fmt.Errorf("%w: r_points must be >= 1, got %d", ErrBadConfig, c.RPoints)
	}
	if c.N < 1 {
		return fmt.Errorf("%w: samples must be >= 1, got %d", ErrBadConfig, c.N)
	}
	if c.Skip < 0 {
		return fmt.Errorf("%w: skip must be >= 0, got %d", ErrBadConfig, c.Skip)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrBadConfig, c.Workers)
	}
	if c.RMin > c.RMax {
		return fmt.Errorf("%w: r_min %g exceeds r_max %g", ErrBadConfig, c.RMin, c.RMax)
	}
	return nil
}

// Column holds the retained trajectory samples for one control value,
// in application order.
type Column struct {
	R      float64
	States []float64
}

// Result is the merged sweep output, ordered by control value.
type Result struct {
	Columns []Column
}

// Len returns the total number of samples across all columns.
func (r *Result) Len() int {
	n := 0
	for _, c := range r.Columns {
		n += len(c.States)
	}
	return n
}

// Bounds returns the minimum and maximum finite state value in the result.
// Non-finite samples are kept in the data but cannot contribute to a plot
// range, so they are skipped here. ok is false when no finite sample exists.
func (r *Result) Bounds() (lo, hi float64, ok bool) {
	for _, c := range r.Columns {
		for _, v := range c.States {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi, ok
}
