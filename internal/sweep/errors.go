package sweep

import (
	"errors"
	"fmt"
)

// ErrBadConfig indicates an invalid sweep configuration. It is always
// detected before any worker starts.
var ErrBadConfig = errors.New("sweep: invalid configuration")

// WorkerError reports a failure inside a worker while computing the
// trajectory for a specific control value. Any worker error aborts the whole
// sweep; no partial result is returned.
type WorkerError struct {
	Chunk   int
	R       float64
	Wrapped error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("sweep: worker failed on chunk %d at r=%g: %v", e.Chunk, e.R, e.Wrapped)
}

func (e *WorkerError) Unwrap() error {
	return e.Wrapped
}
