// Package graph types: sentinel errors, persisted flag bits, construction
// options, and the closed set of storage modes behind the DIRECTED flag.
package graph

import (
	"errors"

	"github.com/jomazi/libtvg/sparse"
)

// Sentinel errors for graph operations.
var (
	// ErrReadonly is returned by every mutator of a read-only graph.
	ErrReadonly = errors.New("graph: graph is readonly")

	// ErrNilGraph is returned when a nil graph is passed to a binary
	// graph operation.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrDirectedness is returned when an operation combines a directed
	// with an undirected graph.
	ErrDirectedness = errors.New("graph: directedness mismatch")

	// ErrNilVector is returned when a required vector argument is nil.
	ErrNilVector = errors.New("graph: vector is nil")
)

// Persisted flag bits of the binary format. Runtime-only state (readonly)
// is never written to disk.
const (
	// FlagNonzero marks graphs that never store zero-weight edges.
	FlagNonzero uint32 = 0x1

	// FlagPositive declares weights to be non-negative.
	FlagPositive uint32 = 0x2

	// FlagDirected marks edges as one-way.
	FlagDirected uint32 = 0x4

	// persistedFlags masks the flag bits that survive a save/load cycle.
	persistedFlags = FlagNonzero | FlagPositive | FlagDirected
)

// Option configures a Graph before creation.
type Option func(*options)

type options struct {
	directed bool
	nonzero  bool
	positive bool
}

// WithDirected stores edges as one-way: (s,t) and (t,s) are independent.
func WithDirected() Option {
	return func(o *options) { o.directed = true }
}

// WithNonzero drops edges whose weight becomes exactly zero: writing a
// zero is equivalent to deleting the edge.
func WithNonzero() Option {
	return func(o *options) { o.nonzero = true }
}

// WithPositive declares that weights are constrained to be non-negative.
// The constraint is a caller-level invariant; it is persisted so that
// consumers of saved graphs can rely on it.
func WithPositive() Option {
	return func(o *options) { o.positive = true }
}

// edgeMode is the closed set of DIRECTED-dependent behaviors, selected
// once at construction instead of branching on a flag in every mutator.
type edgeMode interface {
	// set stores weight under (s,t), keeping implied directions consistent.
	set(grid *sparse.Grid, s, t uint64, weight float32)

	// add accumulates weight onto (s,t), keeping implied directions
	// consistent.
	add(grid *sparse.Grid, s, t uint64, weight float32)

	// del removes (s,t) and any implied mirror, reporting whether a
	// physical entry existed.
	del(grid *sparse.Grid, s, t uint64) bool

	// numEdges counts logical edges without double counting mirrors.
	numEdges(grid *sparse.Grid) uint64

	// visible reports whether a stored entry is part of the logical edge
	// set (undirected iteration hides the Target < Source mirrors).
	visible(e *sparse.Edge) bool
}

// directedMode stores exactly what the caller writes.
type directedMode struct{}

func (directedMode) set(grid *sparse.Grid, s, t uint64, weight float32) {
	grid.Upsert(s, t).Weight = weight
}

func (directedMode) add(grid *sparse.Grid, s, t uint64, weight float32) {
	grid.Upsert(s, t).Weight += weight
}

func (directedMode) del(grid *sparse.Grid, s, t uint64) bool {
	return grid.Delete(s, t)
}

func (directedMode) numEdges(grid *sparse.Grid) uint64 {
	return grid.NumEntries()
}

func (directedMode) visible(*sparse.Edge) bool { return true }

// undirectedMode keeps both physical directions of every logical edge.
type undirectedMode struct{}

func (undirectedMode) set(grid *sparse.Grid, s, t uint64, weight float32) {
	grid.Upsert(s, t).Weight = weight
	if s != t {
		grid.Upsert(t, s).Weight = weight
	}
}

func (undirectedMode) add(grid *sparse.Grid, s, t uint64, weight float32) {
	grid.Upsert(s, t).Weight += weight
	if s != t {
		grid.Upsert(t, s).Weight += weight
	}
}

func (undirectedMode) del(grid *sparse.Grid, s, t uint64) bool {
	found := grid.Delete(s, t)
	if s != t {
		grid.Delete(t, s)
	}

	return found
}

// numEdges counts logical undirected edges: off-diagonal buckets hold
// only one direction of any pair they see, so their entries are counted
// directly and the grand total halved; diagonal buckets may hold an edge
// together with its mirror (or a self-loop) and are scanned entry-wise,
// counting each Target ≥ Source entry twice before the halving.
func (undirectedMode) numEdges(grid *sparse.Grid) uint64 {
	var n uint64
	num := grid.NumBuckets()
	for i := uint64(0); i < num; i++ {
		bucket := grid.Bucket(i)
		if !grid.IsDiagonal(i) {
			n += bucket.Len()

			continue
		}
		for _, e := range bucket.Edges() {
			if e.Target >= e.Source {
				n += 2
			}
		}
	}

	return n / 2
}

func (undirectedMode) visible(e *sparse.Edge) bool { return e.Target >= e.Source }

// modeFor selects the storage mode for the directedness flag.
func modeFor(directed bool) edgeMode {
	if directed {
		return directedMode{}
	}

	return undirectedMode{}
}
