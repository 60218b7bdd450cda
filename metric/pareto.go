package metric

import (
	"sort"

	"github.com/jomazi/libtvg/graph"
	"github.com/jomazi/libtvg/sparse"
	"github.com/jomazi/libtvg/vector"
)

// edgeStability is one ranked edge: value1 orders by mean weight
// descending (stored negated), value2 by variance ascending.
type edgeStability struct {
	source uint64
	target uint64
	value1 float32
	value2 float32
}

// nodeStability is the per-node counterpart of edgeStability.
type nodeStability struct {
	index  uint64
	value1 float32
	value2 float32
}

// EdgeStabilityPareto ranks the edges of a series of graph snapshots by
// the Pareto front of (high mean weight, low variance across snapshots).
// Edges on the first front receive weight 1, the next front the next
// layer weight, and so on; layer weights advance additively (+1) or
// geometrically (WithBase).
//
// The key set defaults to the edges of the snapshot mean and can be
// overridden with WithMeanGraph; the variance is always measured against
// the true mean. All snapshots must agree on directedness. The result
// carries the positive flag.
// Complexity: O(K · (N log + K)) for K keys and N snapshots
func EdgeStabilityPareto(graphs []*graph.Graph, opts ...Option) (*graph.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(graphs) == 0 {
		return nil, ErrNoInput
	}
	for _, g := range graphs {
		if g == nil {
			return nil, ErrNilSnapshot
		}
	}
	directed := graphs[0].Directed()
	for _, g := range graphs[1:] {
		if g.Directed() != directed {
			return nil, ErrDirectedness
		}
	}

	var graphOpts []graph.Option
	if directed {
		graphOpts = append(graphOpts, graph.WithDirected())
	}

	// 1) Elementwise mean of the snapshots.
	mean := graph.New(graphOpts...)
	defer mean.Release()
	for _, g := range graphs {
		if err := mean.AddGraph(g, 1); err != nil {
			return nil, err
		}
	}
	_ = mean.MulConst(1 / float32(len(graphs)))

	// 2) Score every key: value1 = -mean weight, value2 = sum of squared
	//    deviations from the true mean.
	keys := mean
	if cfg.MeanGraph != nil {
		keys = cfg.MeanGraph
	}
	items := make([]edgeStability, 0, keys.NumEdges())
	keys.ForEach(func(e sparse.Edge) bool {
		m := e.Weight
		if cfg.MeanGraph != nil {
			m = mean.Get(e.Source, e.Target)
		}
		var sum2 float32
		for _, g := range graphs {
			d := g.Get(e.Source, e.Target) - m
			sum2 += d * d
		}
		items = append(items, edgeStability{
			source: e.Source,
			target: e.Target,
			value1: -e.Weight,
			value2: sum2,
		})

		return true
	})

	// 3) Sort ascending by (value1, value2), then peel Pareto layers.
	sort.Slice(items, func(i, j int) bool {
		if items[i].value1 != items[j].value1 {
			return items[i].value1 < items[j].value1
		}

		return items[i].value2 < items[j].value2
	})

	result := graph.New(append(graphOpts, graph.WithPositive())...)
	weight := float32(1)
	for len(items) > 0 {
		var best edgeStability
		selected := false
		rest := items[:0]
		for _, it := range items {
			if !selected || it.value2 < best.value2 ||
				(it.value1 == best.value1 && it.value2 == best.value2) {
				if err := result.Set(it.source, it.target, weight); err != nil {
					result.Release()

					return nil, err
				}
				best = it
				selected = true
			} else {
				rest = append(rest, it)
			}
		}
		items = rest

		if cfg.Base == 0 {
			weight++
		} else {
			weight *= cfg.Base
		}
	}

	return result, nil
}

// NodeStabilityPareto is the per-node analogue of EdgeStabilityPareto,
// ranking the entries of a series of vector snapshots by (high mean,
// low variance). The result carries the positive flag.
// Complexity: O(K · (N log + K)) for K keys and N snapshots
func NodeStabilityPareto(vectors []*vector.Vector, opts ...Option) (*vector.Vector, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(vectors) == 0 {
		return nil, ErrNoInput
	}
	for _, v := range vectors {
		if v == nil {
			return nil, ErrNilSnapshot
		}
	}

	mean := vector.New()
	defer mean.Release()
	for _, v := range vectors {
		if err := mean.AddVector(v, 1); err != nil {
			return nil, err
		}
	}
	_ = mean.MulConst(1 / float32(len(vectors)))

	keys := mean
	if cfg.MeanVector != nil {
		keys = cfg.MeanVector
	}
	items := make([]nodeStability, 0, keys.NumEntries())
	keys.ForEach(func(index uint64, w float32) bool {
		m := w
		if cfg.MeanVector != nil {
			m = mean.Get(index)
		}
		var sum2 float32
		for _, v := range vectors {
			d := v.Get(index) - m
			sum2 += d * d
		}
		items = append(items, nodeStability{index: index, value1: -w, value2: sum2})

		return true
	})

	sort.Slice(items, func(i, j int) bool {
		if items[i].value1 != items[j].value1 {
			return items[i].value1 < items[j].value1
		}

		return items[i].value2 < items[j].value2
	})

	result := vector.New(vector.WithPositive())
	weight := float32(1)
	for len(items) > 0 {
		var best nodeStability
		selected := false
		rest := items[:0]
		for _, it := range items {
			if !selected || it.value2 < best.value2 ||
				(it.value1 == best.value1 && it.value2 == best.value2) {
				if err := result.Set(it.index, weight); err != nil {
					result.Release()

					return nil, err
				}
				best = it
				selected = true
			} else {
				rest = append(rest, it)
			}
		}
		items = rest

		if cfg.Base == 0 {
			weight++
		} else {
			weight *= cfg.Base
		}
	}

	return result, nil
}
