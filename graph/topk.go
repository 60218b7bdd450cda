package graph

import (
	"container/heap"

	"github.com/jomazi/libtvg/sparse"
)

// TopEdges returns the k logical edges of largest weight, heaviest first.
// Every edge tied with the k-th weight is included as well, so the result
// may be longer than k; callers must size buffers for the returned count.
// Complexity: O(E log E)
func (g *Graph) TopEdges(k uint64) []sparse.Edge {
	if k == 0 {
		return nil
	}

	pq := make(edgeHeap, 0, g.NumEdges())
	g.ForEach(func(e sparse.Edge) bool {
		pq = append(pq, e)

		return true
	})
	heap.Init(&pq)

	out := make([]sparse.Edge, 0, k)
	for pq.Len() > 0 {
		e := heap.Pop(&pq).(sparse.Edge)
		out = append(out, e)
		if uint64(len(out)) == k {
			// Include every remaining edge tied with the k-th weight.
			for pq.Len() > 0 {
				next := heap.Pop(&pq).(sparse.Edge)
				if next.Weight != e.Weight {
					break
				}
				out = append(out, next)
			}

			break
		}
	}

	return out
}

// edgeHeap is a max-heap of edges ordered by weight descending.
type edgeHeap []sparse.Edge

// Len returns the number of items in the heap.
func (h edgeHeap) Len() int { return len(h) }

// Less defines the comparison: larger weight → higher priority.
func (h edgeHeap) Less(i, j int) bool { return h[i].Weight > h[j].Weight }

// Swap swaps two elements in the heap.
func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap; x must be a sparse.Edge.
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(sparse.Edge)) }

// Pop removes and returns the last element from the heap.
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
