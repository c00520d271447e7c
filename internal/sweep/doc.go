// Package sweep implements the parallel parameter-sweep engine behind the
// bifurcation diagram.
//
// A sweep iterates a one-dimensional map for every control value in an evenly
// spaced grid, discards a transient prefix of each trajectory, and collects
// the retained states:
//
//   - [Sample]: iterate one map for one control value
//   - [ControlValues]: build the inclusive control-value grid
//   - [Partition]: split the grid into contiguous per-worker chunks
//   - [Runner]: fan chunks out to goroutines and merge the results
//
// # Determinism
//
// The merged [Result] is ordered by chunk assignment, never by completion,
// so a run with 8 workers produces byte-identical output to a run with 1.
// Workers share no mutable state: each owns its chunk and its output buffer
// until the final join.
//
// Non-finite trajectory values (escape to infinity) are data, not errors,
// and pass through untouched.
package sweep
