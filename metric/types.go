// Package metric types: tunable options and error definitions for the
// multi-snapshot stability rankings.
package metric

import (
	"errors"

	"github.com/jomazi/libtvg/graph"
	"github.com/jomazi/libtvg/vector"
)

// Sentinel errors for stability metrics.
var (
	// ErrNoInput is returned when no snapshots are supplied.
	ErrNoInput = errors.New("metric: no snapshots given")

	// ErrDirectedness is returned when graph snapshots disagree on
	// directedness.
	ErrDirectedness = errors.New("metric: directedness mismatch between snapshots")

	// ErrNilSnapshot is returned when a snapshot in the input is nil.
	ErrNilSnapshot = errors.New("metric: snapshot is nil")
)

// Option configures a stability ranking via functional arguments.
type Option func(*Options)

// Options holds parameters to customize the Pareto ranking.
type Options struct {
	// Base switches the per-layer weight progression from additive
	// (+1 per layer, the default at 0) to geometric (×Base per layer).
	Base float32

	// MeanGraph, when set, supplies the key set ranked by
	// EdgeStabilityPareto instead of the keys of the snapshot mean.
	// The variance is still measured against the true mean.
	MeanGraph *graph.Graph

	// MeanVector is the NodeStabilityPareto counterpart of MeanGraph.
	MeanVector *vector.Vector
}

// DefaultOptions returns Options with additive layer weights and no key
// set override.
func DefaultOptions() Options {
	return Options{}
}

// WithBase selects geometric layer weights: layer n carries base^n.
func WithBase(base float32) Option {
	return func(o *Options) { o.Base = base }
}

// WithMeanGraph overrides the ranked key set for EdgeStabilityPareto.
func WithMeanGraph(mean *graph.Graph) Option {
	return func(o *Options) { o.MeanGraph = mean }
}

// WithMeanVector overrides the ranked key set for NodeStabilityPareto.
func WithMeanVector(mean *vector.Vector) Option {
	return func(o *Options) { o.MeanVector = mean }
}
