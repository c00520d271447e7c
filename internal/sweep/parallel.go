package sweep

import (
	"context"
	"fmt"
	"sync"
)

// Observer is notified as chunks complete. Callbacks run on worker
// goroutines and may fire concurrently; implementations must be safe for
// that. Observers see completion order, which never influences the result.
type Observer interface {
	ChunkDone(chunk, columns int)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(chunk, columns int)

func (f ObserverFunc) ChunkDone(chunk, columns int) { f(chunk, columns) }

// Runner fans a sweep out over a fixed set of worker goroutines, one per
// chunk, and merges the per-chunk outputs back in chunk order.
type Runner struct {
	observers []Observer
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

// Run executes the sweep described by cfg and returns the merged result.
// The configuration is validated before any goroutine starts. Every worker
// is joined on every exit path; a failed or cancelled run returns no
// partial result.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	values := ControlValues(cfg.RMin, cfg.RMax, cfg.RPoints)
	chunks := Partition(values, cfg.Workers)

	columns := make([][]Column, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(idx int, rs []float64) {
			defer wg.Done()
			columns[idx], errs[idx] = r.runChunk(ctx, idx, rs, cfg)
			if errs[idx] == nil {
				for _, o := range r.observers {
					o.ChunkDone(idx, len(rs))
				}
			}
		}(i, chunk)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	result := &Result{Columns: make([]Column, 0, len(values))}
	for _, cols := range columns {
		result.Columns = append(result.Columns, cols...)
	}
	return result, nil
}

// runChunk computes every control value in one chunk sequentially. A panic
// inside the map function is reported as a WorkerError naming the offending
// control value.
func (r *Runner) runChunk(ctx context.Context, idx int, rs []float64, cfg Config) (cols []Column, err error) {
	current := 0
	defer func() {
		if rec := recover(); rec != nil {
			rv := 0.0
			if current < len(rs) {
				rv = rs[current]
			}
			cols = nil
			err = &WorkerError{Chunk: idx, R: rv, Wrapped: fmt.Errorf("%v", rec)}
		}
	}()

	cols = make([]Column, 0, len(rs))
	for i, rv := range rs {
		current = i
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		cols = append(cols, Column{R: rv, States: Sample(cfg.Map, rv, cfg.X0, cfg.Skip, cfg.N)})
	}
	return cols, nil
}
