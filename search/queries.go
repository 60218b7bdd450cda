package search

import (
	"github.com/jomazi/libtvg/graph"
	"github.com/jomazi/libtvg/vector"
)

// DistanceHops returns the minimum number of edges on any path from
// source to target, or ErrUnreachable when no path exists.
// Complexity: O((V + E) log V)
func DistanceHops(g *graph.Graph, source, target uint64) (uint32, error) {
	var hops uint32
	found := false
	err := Traverse(g, source, WithOnVisit(func(s Step) Verdict {
		if s.To != target {
			return Continue
		}
		hops = s.Hops
		found = true

		return Stop
	}))
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrUnreachable
	}

	return hops, nil
}

// DistanceWeight returns the minimum cumulative edge weight of any path
// from source to target, or ErrUnreachable when no path exists. Weights
// must be non-negative.
// Complexity: O((V + E) log V)
func DistanceWeight(g *graph.Graph, source, target uint64) (float64, error) {
	var weight float64
	found := false
	err := Traverse(g, source, WithWeightOrder(), WithOnVisit(func(s Step) Verdict {
		if s.To != target {
			return Continue
		}
		weight = s.Weight
		found = true

		return Stop
	}))
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrUnreachable
	}

	return weight, nil
}

// AllDistancesHops returns a vector mapping every node reachable from
// source within maxHops edges (inclusive) to its hop distance. The source
// maps to 0. Pass math.MaxUint32 for an unbounded search.
// Complexity: O((V + E) log V)
func AllDistancesHops(g *graph.Graph, source uint64, maxHops uint32) (*vector.Vector, error) {
	out := vector.New(vector.WithPositive())
	err := Traverse(g, source, WithOnVisit(func(s Step) Verdict {
		// Steps pop in hop order, so the first one past the bound means
		// every remaining step is past it too.
		if s.Hops > maxHops {
			return Stop
		}
		_ = out.Set(s.To, float32(s.Hops))

		return Continue
	}))
	if err != nil {
		return nil, err
	}

	return out, nil
}

// AllDistancesWeights returns a vector mapping every node reachable from
// source at cumulative weight ≤ maxWeight to its weight distance. The
// source maps to 0. Pass math.Inf(1) for an unbounded search.
// Complexity: O((V + E) log V)
func AllDistancesWeights(g *graph.Graph, source uint64, maxWeight float64) (*vector.Vector, error) {
	out := vector.New(vector.WithPositive())
	err := Traverse(g, source, WithWeightOrder(), WithOnVisit(func(s Step) Verdict {
		if s.Weight > maxWeight {
			return Stop
		}
		_ = out.Set(s.To, float32(s.Weight))

		return Continue
	}))
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DistanceGraph materializes the all-pairs distance graph: one traversal
// per node of g, recording the distance to every other reached node as a
// directed edge. Self-loops are skipped. The default metric is hop count;
// WithWeightOrder selects cumulative weight.
// Complexity: O(V · (V + E) log V)
func DistanceGraph(g *graph.Graph, opts ...Option) (*graph.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := graph.New(graph.WithDirected(), graph.WithPositive())

	nodes := g.Nodes()
	defer nodes.Release()

	inner := []Option{WithContext(cfg.Ctx)}
	if cfg.WeightOrder {
		inner = append(inner, WithWeightOrder())
	}

	var err error
	nodes.ForEach(func(source uint64, _ float32) bool {
		err = Traverse(g, source, append(inner,
			WithOnVisit(func(s Step) Verdict {
				if s.To == source {
					return Continue
				}
				distance := float32(s.Hops)
				if cfg.WeightOrder {
					distance = float32(s.Weight)
				}
				_ = out.Set(source, s.To, distance)

				return Continue
			}))...)

		return err == nil
	})
	if err != nil {
		out.Release()

		return nil, err
	}

	return out, nil
}

// ConnectedComponents labels every node of an undirected graph with a
// component id, starting at 0 and incrementing per component. Returns the
// label vector and the component count. Directed graphs are rejected with
// ErrDirected.
// Complexity: O((V + E) log V)
func ConnectedComponents(g *graph.Graph) (*vector.Vector, uint64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() {
		return nil, 0, ErrDirected
	}

	labels := vector.New(vector.WithPositive())

	nodes := g.Nodes()
	defer nodes.Release()

	var next uint64
	var err error
	nodes.ForEach(func(node uint64, _ float32) bool {
		if labels.Has(node) {
			return true
		}
		id := float32(next)
		err = Traverse(g, node, WithOnVisit(func(s Step) Verdict {
			_ = labels.Set(s.To, id)

			return Continue
		}))
		next++

		return err == nil
	})
	if err != nil {
		return nil, 0, err
	}

	return labels, next, nil
}
