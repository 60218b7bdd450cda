// Graph algebra: elementwise graph combination, scaling, sparse
// matrix-vector products, degree/weight profiles, anomaly scores and
// bistochastic-style normalization.
package graph

import (
	"github.com/jomazi/libtvg/sparse"
	"github.com/jomazi/libtvg/vector"
)

// AddGraph accumulates other scaled by weight onto g, edge by edge. Both
// graphs must agree on directedness. The two graphs must be distinct.
// Complexity: O(E_other · log(E_g/B_g))
func (g *Graph) AddGraph(other *Graph, weight float32) error {
	if other == nil {
		return ErrNilGraph
	}
	if g.directed != other.directed {
		return ErrDirectedness
	}

	var err error
	other.ForEach(func(e sparse.Edge) bool {
		err = g.Add(e.Source, e.Target, e.Weight*weight)

		return err == nil
	})

	return err
}

// SubGraph subtracts other scaled by weight from g.
func (g *Graph) SubGraph(other *Graph, weight float32) error {
	return g.AddGraph(other, -weight)
}

// MulConst multiplies every edge weight by constant, with a fast no-op
// path for constant == 1. Under the nonzero policy, edges scaled to
// exactly zero are dropped. Scaling does not tick the rebalance counter.
// Complexity: O(E + B)
func (g *Graph) MulConst(constant float32) error {
	if g.readonly {
		return ErrReadonly
	}
	if constant == 1.0 {
		return nil
	}

	g.grid.ForEach(func(e *sparse.Edge) bool {
		e.Weight *= constant

		return true
	})
	if g.nonzero {
		g.grid.Filter(func(e sparse.Edge) bool {
			return e.Weight != 0
		})
	}
	g.revision++

	return nil
}

// SumWeights returns the sum of all logical edge weights.
// Complexity: O(E + B)
func (g *Graph) SumWeights() float64 {
	var sum float64
	g.ForEach(func(e sparse.Edge) bool {
		sum += float64(e.Weight)

		return true
	})

	return sum
}

// MulVector returns the sparse matrix-vector product
//
//	out[source] += weight(source, target) · v[target]
//
// over the directed edge scan. Undirected graphs store both directions,
// so the product is symmetric without further work; callers combining a
// directed graph with undirected semantics must symmetrize first.
// Complexity: O(E · log)
func (g *Graph) MulVector(v *vector.Vector) (*vector.Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}

	out := vector.New()
	g.ForEachDirected(func(e sparse.Edge) bool {
		// Absent entries are skipped rather than treated as zeroes, so
		// that no spurious zero-weight output entries appear.
		if w, ok := v.Lookup(e.Target); ok {
			_ = out.Add(e.Source, e.Weight*w)
		}

		return true
	})

	return out, nil
}

// OutDegrees returns a vector counting, per node, the stored edges
// leaving it. For undirected graphs this is the plain node degree.
// Complexity: O(E + B)
func (g *Graph) OutDegrees() *vector.Vector {
	out := vector.New()
	g.ForEachDirected(func(e sparse.Edge) bool {
		_ = out.Add(e.Source, 1)

		return true
	})

	return out
}

// OutWeights returns a vector summing, per node, the weights of the
// stored edges leaving it.
// Complexity: O(E + B)
func (g *Graph) OutWeights() *vector.Vector {
	out := vector.New()
	g.ForEachDirected(func(e sparse.Edge) bool {
		_ = out.Add(e.Source, e.Weight)

		return true
	})

	return out
}

// InDegrees returns a vector counting, per node, the stored edges
// entering it.
// Complexity: O(E + B)
func (g *Graph) InDegrees() *vector.Vector {
	out := vector.New()
	g.ForEachDirected(func(e sparse.Edge) bool {
		_ = out.Add(e.Target, 1)

		return true
	})

	return out
}

// InWeights returns a vector summing, per node, the weights of the
// stored edges entering it.
// Complexity: O(E + B)
func (g *Graph) InWeights() *vector.Vector {
	out := vector.New()
	g.ForEachDirected(func(e sparse.Edge) bool {
		_ = out.Add(e.Target, e.Weight)

		return true
	})

	return out
}

// DegreeAnomalies scores each node v with out-degree d(v) as
//
//	a(v) = d(v) − (Σ_{v→u} d(u)) / d(v)
//
// flagging nodes whose neighborhood degree is unusually high or low
// relative to their own.
// Complexity: O(E · log)
func (g *Graph) DegreeAnomalies() *vector.Vector {
	degrees := g.OutDegrees()

	neighbor := vector.New()
	g.ForEachDirected(func(e sparse.Edge) bool {
		_ = neighbor.Add(e.Source, degrees.Get(e.Target))

		return true
	})

	out := vector.New()
	degrees.ForEach(func(index uint64, d float32) bool {
		_ = out.Set(index, d-neighbor.Get(index)/d)

		return true
	})

	return out
}

// WeightAnomalies scores each node v with out-weight w(v) as
//
//	a(v) = w(v) − (Σ_{v→u} weight(v,u) · w(u)) / w(v)
//
// Complexity: O(E · log)
func (g *Graph) WeightAnomalies() *vector.Vector {
	weights := g.OutWeights()

	neighbor := vector.New()
	g.ForEachDirected(func(e sparse.Edge) bool {
		_ = neighbor.Add(e.Source, e.Weight*weights.Get(e.Target))

		return true
	})

	out := vector.New()
	weights.ForEach(func(index uint64, w float32) bool {
		_ = out.Set(index, w-neighbor.Get(index)/w)

		return true
	})

	return out
}

// Normalize returns a new graph with every edge weight divided by
// outWeight(source) · inWeight(target). Undirected graphs reuse the
// out-weight vector for both roles.
// Complexity: O(E · log)
func (g *Graph) Normalize() (*Graph, error) {
	outWeights := g.OutWeights()
	inWeights := outWeights
	if g.directed {
		inWeights = g.InWeights()
	}

	var opts []Option
	if g.directed {
		opts = append(opts, WithDirected())
	}
	result := New(opts...)

	var err error
	g.ForEach(func(e sparse.Edge) bool {
		denom := outWeights.Get(e.Source) * inWeights.Get(e.Target)
		err = result.Add(e.Source, e.Target, e.Weight/denom)

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// FilterNodes returns the induced subgraph containing only edges whose
// endpoints are both present in nodes. The result carries the same
// storage flags as g.
// Complexity: O(E · log)
func (g *Graph) FilterNodes(nodes *vector.Vector) (*Graph, error) {
	if nodes == nil {
		return nil, ErrNilVector
	}

	var opts []Option
	if g.directed {
		opts = append(opts, WithDirected())
	}
	if g.nonzero {
		opts = append(opts, WithNonzero())
	}
	if g.positive {
		opts = append(opts, WithPositive())
	}
	out := New(opts...)

	var err error
	g.ForEach(func(e sparse.Edge) bool {
		if !nodes.Has(e.Source) || !nodes.Has(e.Target) {
			return true
		}
		err = out.Set(e.Source, e.Target, e.Weight)

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
