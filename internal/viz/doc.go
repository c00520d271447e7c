// Package viz renders sweep results in the terminal.
//
// [Canvas] is a Braille-based pixel canvas (2x4 sub-pixels per character),
// [Scatter] projects a bifurcation diagram onto it, and [SpanProfile]
// produces the per-control-value attractor span for quick line plots.
package viz
