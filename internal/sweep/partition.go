package sweep

// ControlValues builds the evenly spaced control-value grid, inclusive of
// both bounds. A single-point grid contains rMin alone.
func ControlValues(rMin, rMax float64, points int) []float64 {
	values := make([]float64, points)
	if points == 1 {
		values[0] = rMin
		return values
	}

	step := (rMax - rMin) / float64(points-1)
	for i := range values {
		values[i] = rMin + float64(i)*step
	}
	// Pin the endpoint; the incremental form accumulates rounding error.
	values[points-1] = rMax
	return values
}

// Partition splits values into at most workers contiguous chunks whose sizes
// differ by no more than one. Chunk order preserves value order, so
// concatenating chunks reconstructs the input exactly. With more workers
// than values, the excess workers simply receive no chunk.
func Partition(values []float64, workers int) [][]float64 {
	if workers > len(values) {
		workers = len(values)
	}
	if workers < 1 {
		workers = 1
	}

	chunks := make([][]float64, 0, workers)
	base := len(values) / workers
	extra := len(values) % workers

	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks = append(chunks, values[start:start+size])
		start += size
	}
	return chunks
}
