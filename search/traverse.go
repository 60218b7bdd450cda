package search

import (
	"container/heap"
	"fmt"

	"github.com/jomazi/libtvg/graph"
	"github.com/jomazi/libtvg/sparse"
	"github.com/jomazi/libtvg/vector"
)

// Traverse explores g from source in non-decreasing distance order: hop
// count by default, cumulative edge weight with WithWeightOrder. Every
// reached node is reported to OnVisit exactly once, at its minimal
// distance; stale queue entries for already-visited nodes are discarded
// lazily instead of being re-keyed in place.
//
// The source itself is the first step (From == NoPredecessor). A source
// without edges is still visited. Undirected graphs store both edge
// directions, so adjacency expansion needs no special casing.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for the visited set and the lazy queue.
func Traverse(g *graph.Graph, source uint64, opts ...Option) error {
	// 1) Build Options from defaults plus functional arguments.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return ErrNilGraph
	}

	// 3) Prepare the visited set and the priority queue, seeded with the
	//    root step.
	visited := vector.New(vector.WithPositive())
	pq := stepQueue{byWeight: cfg.WeightOrder}
	pq.steps = append(pq.steps, Step{From: NoPredecessor, To: source})
	heap.Init(&pq)

	for pq.Len() > 0 {
		select {
		case <-cfg.Ctx.Done():
			return fmt.Errorf("search: traversal cancelled: %w", cfg.Ctx.Err())
		default:
		}

		// 4) Pop the nearest pending step; skip nodes already finalized.
		step := heap.Pop(&pq).(Step)
		if visited.Has(step.To) {
			continue
		}

		// 5) Report the step; the verdict decides how to proceed.
		switch cfg.OnVisit(step) {
		case Stop:
			return nil
		case Abort:
			return ErrAborted
		}
		_ = visited.Set(step.To, 1)

		// 6) Push one successor per unvisited outgoing edge.
		g.ForEachAdjacent(step.To, func(e sparse.Edge) bool {
			if visited.Has(e.Target) {
				return true
			}
			heap.Push(&pq, Step{
				Weight: step.Weight + float64(e.Weight),
				Hops:   step.Hops + 1,
				From:   step.To,
				To:     e.Target,
			})

			return true
		})
	}

	return nil
}

// stepQueue is a min-heap of pending steps, ordered by hop count or by
// cumulative weight. Duplicates per node are expected (lazy decrease-key)
// and filtered against the visited set on pop.
type stepQueue struct {
	steps    []Step
	byWeight bool
}

// Len returns the number of pending steps.
func (pq *stepQueue) Len() int { return len(pq.steps) }

// Less defines the comparison: smaller distance → higher priority.
func (pq *stepQueue) Less(i, j int) bool {
	if pq.byWeight {
		return pq.steps[i].Weight < pq.steps[j].Weight
	}

	return pq.steps[i].Hops < pq.steps[j].Hops
}

// Swap swaps two elements in the heap.
func (pq *stepQueue) Swap(i, j int) {
	pq.steps[i], pq.steps[j] = pq.steps[j], pq.steps[i]
}

// Push adds a new element x onto the heap; x must be a Step.
func (pq *stepQueue) Push(x interface{}) {
	pq.steps = append(pq.steps, x.(Step))
}

// Pop removes and returns the last element from the heap.
func (pq *stepQueue) Pop() interface{} {
	old := pq.steps
	n := len(old)
	item := old[n-1]
	pq.steps = old[:n-1]

	return item
}
