package graph

import (
	"sync/atomic"

	"github.com/jomazi/libtvg/sparse"
	"github.com/jomazi/libtvg/vector"
)

// Graph is a sparse mapping from an (source, target) edge key to a
// float32 weight. Within a bucket, edges sort by Target first and Source
// second; undirected iteration and adjacency merge-joins rely on exactly
// this order.
//
// Mutators require exclusive access; only the reference count is atomic.
// A read-only graph rejects every mutator with ErrReadonly and may be
// shared across goroutines, each holder owning its own reference.
type Graph struct {
	refs atomic.Int64

	directed bool
	nonzero  bool
	positive bool
	readonly bool
	mode     edgeMode

	revision uint64
	grid     *sparse.Grid
	pending  uint64 // mutations until the next rebalance check
}

// New creates an empty graph with the given storage options and one
// reference. The initial partition widths are zero; the first rebalance
// check is scheduled immediately.
// Complexity: O(1)
func New(opts ...Option) *Graph {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{
		directed: o.directed,
		nonzero:  o.nonzero,
		positive: o.positive,
		mode:     modeFor(o.directed),
		grid:     sparse.NewGrid(),
	}
	g.refs.Store(1)
	g.pending = g.deferral(g.grid.Rebalance())

	return g
}

// Grab acquires one additional reference and returns g for chaining.
// Safe to call concurrently. A nil receiver is passed through.
func (g *Graph) Grab() *Graph {
	if g != nil {
		g.refs.Add(1)
	}

	return g
}

// Release drops one reference. Releasing more often than Grab+New acquired
// is a caller bug and panics. A nil receiver is ignored.
func (g *Graph) Release() {
	if g == nil {
		return
	}
	if g.refs.Add(-1) < 0 {
		panic("graph: released more often than grabbed")
	}
}

// Directed reports whether edges are stored one-way.
func (g *Graph) Directed() bool { return g.directed }

// Nonzero reports whether zero weights are dropped on write.
func (g *Graph) Nonzero() bool { return g.nonzero }

// Positive reports whether weights are declared non-negative.
func (g *Graph) Positive() bool { return g.positive }

// Readonly reports whether all mutators are disabled.
func (g *Graph) Readonly() bool { return g.readonly }

// SetReadonly freezes the graph; no mutator succeeds afterwards.
func (g *Graph) SetReadonly() { g.readonly = true }

// Revision returns the monotonic mutation counter. Collaborators compare
// revisions to detect staleness of derived data.
func (g *Graph) Revision() uint64 { return g.revision }

// Bits returns the partition widths of the source and target dimensions.
func (g *Graph) Bits() (bitsSource, bitsTarget uint32) { return g.grid.Bits() }

// flags assembles the persisted flag word.
func (g *Graph) flags() uint32 {
	var f uint32
	if g.nonzero {
		f |= FlagNonzero
	}
	if g.positive {
		f |= FlagPositive
	}
	if g.directed {
		f |= FlagDirected
	}

	return f
}

// deferral adjusts the grid's rebalance deferral for the storage mode:
// undirected graphs write two physical entries per logical mutation.
func (g *Graph) deferral(n uint64) uint64 {
	if !g.directed {
		n /= 2
	}

	return n
}

// finish accounts for one successful mutation: bump the revision and tick
// the rebalance counter, rebalancing once it reaches zero.
func (g *Graph) finish() {
	g.revision++
	g.pending--
	if g.pending == 0 {
		g.pending = g.deferral(g.grid.Rebalance())
	}
}

// Empty reports whether the graph holds no edges.
// Complexity: O(B)
func (g *Graph) Empty() bool { return g.grid.NumEntries() == 0 }

// NumEdges returns the number of logical edges. Undirected graphs are not
// double counted: off-diagonal buckets are counted directly and halved,
// diagonal buckets are scanned entry-by-entry.
// Complexity: O(B) directed, O(B + diagonal entries) undirected
func (g *Graph) NumEdges() uint64 { return g.mode.numEdges(g.grid) }

// Has reports whether the edge (source, target) exists. For undirected
// graphs the endpoint order is irrelevant.
// Complexity: O(log(E/B))
func (g *Graph) Has(source, target uint64) bool {
	_, ok := g.grid.Lookup(source, target)

	return ok
}

// Get returns the weight of the edge (source, target), or 0 when absent.
// For undirected graphs the endpoint order is irrelevant.
// Complexity: O(log(E/B))
func (g *Graph) Get(source, target uint64) float32 {
	w, _ := g.grid.Lookup(source, target)

	return w
}

// Lookup returns the weight of (source, target) and whether it exists.
func (g *Graph) Lookup(source, target uint64) (float32, bool) {
	return g.grid.Lookup(source, target)
}

// Set stores weight under (source, target), replacing any previous value.
// Undirected graphs keep both physical directions consistent. Under the
// nonzero policy a zero weight deletes the edge instead.
func (g *Graph) Set(source, target uint64, weight float32) error {
	if g.readonly {
		return ErrReadonly
	}

	if g.nonzero && weight == 0 {
		g.mode.del(g.grid, source, target)
	} else {
		g.mode.set(g.grid, source, target, weight)
	}
	g.finish()

	return nil
}

// Add accumulates weight onto the edge (source, target), creating it on
// demand. Undirected graphs accumulate onto both physical directions.
// Under the nonzero policy a sum of exactly zero deletes the edge.
func (g *Graph) Add(source, target uint64, weight float32) error {
	if g.readonly {
		return ErrReadonly
	}

	if g.nonzero {
		sum := g.Get(source, target) + weight
		if sum == 0 {
			g.mode.del(g.grid, source, target)
		} else {
			g.mode.set(g.grid, source, target, sum)
		}
	} else {
		g.mode.add(g.grid, source, target, weight)
	}
	g.finish()

	return nil
}

// Sub subtracts weight from the edge (source, target).
func (g *Graph) Sub(source, target uint64, weight float32) error {
	return g.Add(source, target, -weight)
}

// Del removes the edge (source, target) and, for undirected graphs, its
// mirror. Deleting an absent edge succeeds without bumping the revision.
func (g *Graph) Del(source, target uint64) error {
	if g.readonly {
		return ErrReadonly
	}

	if g.mode.del(g.grid, source, target) {
		g.finish()
	}

	return nil
}

// Clear drops all edges.
func (g *Graph) Clear() error {
	if g.readonly {
		return ErrReadonly
	}

	g.grid.Clear()
	g.finish()

	return nil
}

// SetEdges stores a batch of edges, stopping at the first failure.
func (g *Graph) SetEdges(edges []sparse.Edge) error {
	for _, e := range edges {
		if err := g.Set(e.Source, e.Target, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// AddEdges accumulates a batch of edges, stopping at the first failure.
func (g *Graph) AddEdges(edges []sparse.Edge) error {
	for _, e := range edges {
		if err := g.Add(e.Source, e.Target, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// DelEdges removes a batch of edge keys, stopping at the first failure.
func (g *Graph) DelEdges(edges []sparse.Edge) error {
	for _, e := range edges {
		if err := g.Del(e.Source, e.Target); err != nil {
			return err
		}
	}

	return nil
}

// ForEach visits every logical edge in bucket order (sorted by
// (Target, Source) within a bucket, unordered across buckets). For
// undirected graphs the Target < Source mirrors are skipped. Returning
// false stops the iteration.
func (g *Graph) ForEach(fn func(e sparse.Edge) bool) {
	g.grid.ForEach(func(e *sparse.Edge) bool {
		if !g.mode.visible(e) {
			return true
		}

		return fn(*e)
	})
}

// ForEachDirected visits every physically stored edge, including the
// undirected mirrors. This is the scan the degree, weight and
// matrix-vector operations are built on.
func (g *Graph) ForEachDirected(fn func(e sparse.Edge) bool) {
	g.grid.ForEach(func(e *sparse.Edge) bool {
		return fn(*e)
	})
}

// ForEachAdjacent visits every stored edge leaving source. For undirected
// graphs this covers all incident edges, regardless of which endpoint the
// caller names.
// Complexity: O(2^bitsTarget + column entries)
func (g *Graph) ForEachAdjacent(source uint64, fn func(e sparse.Edge) bool) {
	g.grid.ForEachAdjacent(source, func(e *sparse.Edge) bool {
		return fn(*e)
	})
}

// Edges returns a snapshot of all logical edges in bucket order.
// Complexity: O(E + B)
func (g *Graph) Edges() []sparse.Edge {
	out := make([]sparse.Edge, 0, g.NumEdges())
	g.ForEach(func(e sparse.Edge) bool {
		out = append(out, e)

		return true
	})

	return out
}

// AdjacentEdges returns a snapshot of all edges leaving source.
func (g *Graph) AdjacentEdges(source uint64) []sparse.Edge {
	var out []sparse.Edge
	g.ForEachAdjacent(source, func(e sparse.Edge) bool {
		out = append(out, e)

		return true
	})

	return out
}

// Nodes returns a read-only occurrence vector of all endpoint indices:
// each logical edge contributes one count per endpoint (a self-loop
// contributes two). The caller owns the returned reference.
// Complexity: O(E + B)
func (g *Graph) Nodes() *vector.Vector {
	nodes := vector.New(vector.WithPositive())
	g.ForEach(func(e sparse.Edge) bool {
		_ = nodes.Add(e.Source, 1)
		_ = nodes.Add(e.Target, 1)

		return true
	})
	nodes.SetReadonly()

	return nodes
}

// Duplicate returns a mutable deep copy of the graph carrying the same
// flags (minus readonly), revision and partition layout.
// Complexity: O(E + B)
func (g *Graph) Duplicate() *Graph {
	out := &Graph{
		directed: g.directed,
		nonzero:  g.nonzero,
		positive: g.positive,
		mode:     g.mode,
		revision: g.revision,
		grid:     g.grid.Clone(),
		pending:  g.pending,
	}
	out.refs.Store(1)

	return out
}

// MemoryUsage estimates the heap footprint of the graph in bytes.
func (g *Graph) MemoryUsage() uint64 {
	return 96 + g.grid.MemoryUsage()
}
