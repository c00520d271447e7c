package sweep

import "github.com/san-kum/bifurc/internal/maps"

// Sample iterates f under the fixed control value r starting from x0,
// discards the first skip applications, and retains the next n states in
// application order. Exactly skip+n applications are performed; non-finite
// states are retained as-is, since escape to infinity is meaningful
// bifurcation data.
func Sample(f maps.Func, r, x0 float64, skip, n int) []float64 {
	x := x0
	for i := 0; i < skip; i++ {
		x = f(x, r)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		x = f(x, r)
		out[i] = x
	}
	return out
}
