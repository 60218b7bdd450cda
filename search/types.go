// Package search types: traversal steps, verdicts, tunable options and
// error definitions for priority-queue traversal over a graph.Graph.
package search

import (
	"context"
	"errors"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrAborted is returned when the visit callback answers Abort.
	ErrAborted = errors.New("search: traversal aborted by callback")

	// ErrUnreachable is returned by distance queries when no path connects
	// the source to the target.
	ErrUnreachable = errors.New("search: target is unreachable")

	// ErrDirected is returned when an undirected-only query runs on a
	// directed graph.
	ErrDirected = errors.New("search: operation requires an undirected graph")
)

// NoPredecessor is the From value of the root step of a traversal.
const NoPredecessor = ^uint64(0)

// Step is one finalized traversal state: the node To was reached from From
// at a cumulative weight and hop count measured from the source. The root
// step carries From == NoPredecessor and zero distances.
type Step struct {
	Weight float64
	Hops   uint32
	From   uint64
	To     uint64
}

// Verdict is the visit callback's answer, driving the traversal loop.
type Verdict int

const (
	// Continue keeps the traversal running.
	Continue Verdict = iota

	// Stop ends the traversal successfully; remaining queue entries are
	// discarded.
	Stop

	// Abort ends the traversal with ErrAborted.
	Abort
)

// Option configures a traversal via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines, checked once per visit.
	Ctx context.Context

	// WeightOrder pops the queue by cumulative edge weight (Dijkstra)
	// instead of hop count (plain breadth-first order).
	WeightOrder bool

	// OnVisit is called exactly once per reached node, in pop order.
	// Its verdict decides whether the traversal continues.
	OnVisit func(Step) Verdict
}

// DefaultOptions returns Options with sane defaults: background context,
// hop ordering, and a callback that always continues.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(Step) Verdict { return Continue },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeightOrder orders the queue by cumulative weight, turning the
// traversal into Dijkstra's algorithm. Weights must be non-negative for
// the popped distances to be minimal.
func WithWeightOrder() Option {
	return func(o *Options) { o.WeightOrder = true }
}

// WithOnVisit registers the visit callback; its verdict controls whether
// the traversal continues, stops, or aborts.
func WithOnVisit(fn func(Step) Verdict) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
