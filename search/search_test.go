// Package search_test contains unit tests for the traversal engine:
// visit order by hops and by weight, verdict handling, distance queries
// with cutoffs, the all-pairs distance graph and component labeling.
package search_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomazi/libtvg/graph"
	"github.com/jomazi/libtvg/search"
)

// chainGraph builds the directed fixture
//
//	0 →1.0→ 1 →1.0→ 2 →1.0→ 3 →1.5→ 4
//	                 └──1.5──────────┘
func chainGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(graph.WithDirected())
	require.NoError(t, g.Set(0, 1, 1.0))
	require.NoError(t, g.Set(1, 2, 1.0))
	require.NoError(t, g.Set(2, 3, 1.0))
	require.NoError(t, g.Set(3, 4, 1.5))
	require.NoError(t, g.Set(2, 4, 1.5))

	return g
}

// ------------------------------------------------------------------------
// 1. Traverse: visit order, root step, verdicts.
// ------------------------------------------------------------------------

func TestTraverse_HopOrder(t *testing.T) {
	g := chainGraph(t)
	defer g.Release()

	var steps []search.Step
	require.NoError(t, search.Traverse(g, 0, search.WithOnVisit(func(s search.Step) search.Verdict {
		steps = append(steps, s)

		return search.Continue
	})))

	require.Len(t, steps, 5)
	assert.Equal(t, search.Step{Weight: 0, Hops: 0, From: search.NoPredecessor, To: 0}, steps[0])
	assert.Equal(t, search.Step{Weight: 1, Hops: 1, From: 0, To: 1}, steps[1])
	assert.Equal(t, search.Step{Weight: 2, Hops: 2, From: 1, To: 2}, steps[2])
	// Both node 3 and node 4 are reached in three hops.
	assert.Equal(t, uint32(3), steps[3].Hops)
	assert.Equal(t, uint32(3), steps[4].Hops)
}

func TestTraverse_WeightOrder(t *testing.T) {
	g := chainGraph(t)
	defer g.Release()

	var visited []uint64
	var weights []float64
	require.NoError(t, search.Traverse(g, 0, search.WithWeightOrder(),
		search.WithOnVisit(func(s search.Step) search.Verdict {
			visited = append(visited, s.To)
			weights = append(weights, s.Weight)

			return search.Continue
		})))

	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, visited)
	assert.Equal(t, []float64{0, 1, 2, 3, 3.5}, weights)
}

func TestTraverse_IsolatedSourceStillVisited(t *testing.T) {
	g := graph.New(graph.WithDirected())
	defer g.Release()
	require.NoError(t, g.Set(1, 2, 1))

	var steps int
	require.NoError(t, search.Traverse(g, 99, search.WithOnVisit(func(s search.Step) search.Verdict {
		assert.Equal(t, uint64(99), s.To)
		steps++

		return search.Continue
	})))
	assert.Equal(t, 1, steps)
}

func TestTraverse_StopAndAbort(t *testing.T) {
	g := chainGraph(t)
	defer g.Release()

	var visited int
	require.NoError(t, search.Traverse(g, 0, search.WithOnVisit(func(s search.Step) search.Verdict {
		visited++
		if s.To == 2 {
			return search.Stop
		}

		return search.Continue
	})))
	assert.Equal(t, 3, visited, "stop ends the traversal early with success")

	err := search.Traverse(g, 0, search.WithOnVisit(func(search.Step) search.Verdict {
		return search.Abort
	}))
	assert.ErrorIs(t, err, search.ErrAborted)
}

func TestTraverse_NilGraphAndCancel(t *testing.T) {
	assert.ErrorIs(t, search.Traverse(nil, 0), search.ErrNilGraph)

	g := chainGraph(t)
	defer g.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := search.Traverse(g, 0, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTraverse_EachNodeVisitedOnce(t *testing.T) {
	// Diamond with a shortcut: multiple queue entries per node.
	g := graph.New()
	defer g.Release()
	require.NoError(t, g.Set(0, 1, 1))
	require.NoError(t, g.Set(0, 2, 1))
	require.NoError(t, g.Set(1, 3, 1))
	require.NoError(t, g.Set(2, 3, 1))

	counts := make(map[uint64]int)
	require.NoError(t, search.Traverse(g, 0, search.WithOnVisit(func(s search.Step) search.Verdict {
		counts[s.To]++

		return search.Continue
	})))
	for node, c := range counts {
		assert.Equal(t, 1, c, "node %d visited %d times", node, c)
	}
	assert.Len(t, counts, 4)
}

// ------------------------------------------------------------------------
// 2. Distance queries.
// ------------------------------------------------------------------------

func TestDistance_Triangle(t *testing.T) {
	// Triangle with a heavy direct edge: the two-hop detour is lighter.
	g := graph.New()
	defer g.Release()
	require.NoError(t, g.Set(0, 1, 1))
	require.NoError(t, g.Set(1, 2, 1))
	require.NoError(t, g.Set(0, 2, 3))

	hops, err := search.DistanceHops(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), hops, "the direct edge wins by hop count")

	weight, err := search.DistanceWeight(g, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, weight, 1e-9, "the detour through node 1 wins by weight")
}

func TestDistance_Unreachable(t *testing.T) {
	g := graph.New(graph.WithDirected())
	defer g.Release()
	require.NoError(t, g.Set(0, 1, 1))

	_, err := search.DistanceHops(g, 1, 0)
	assert.ErrorIs(t, err, search.ErrUnreachable)
	_, err = search.DistanceWeight(g, 1, 0)
	assert.ErrorIs(t, err, search.ErrUnreachable)
}

func TestAllDistances_Cutoffs(t *testing.T) {
	g := chainGraph(t)
	defer g.Release()

	hops, err := search.AllDistancesHops(g, 0, 2)
	require.NoError(t, err)
	defer hops.Release()
	assert.Equal(t, uint64(3), hops.NumEntries(), "nodes 0, 1, 2 are within two hops")
	assert.Equal(t, float32(2), hops.Get(2))

	weights, err := search.AllDistancesWeights(g, 0, 2.0)
	require.NoError(t, err)
	defer weights.Release()
	assert.Equal(t, uint64(3), weights.NumEntries())
	assert.Equal(t, float32(2), weights.Get(2))

	all, err := search.AllDistancesWeights(g, 0, math.Inf(1))
	require.NoError(t, err)
	defer all.Release()
	assert.Equal(t, uint64(5), all.NumEntries())
	assert.Equal(t, float32(3.5), all.Get(4))
}

func TestDistanceGraph_AllPairs(t *testing.T) {
	g := graph.New()
	defer g.Release()
	require.NoError(t, g.Set(0, 1, 1))
	require.NoError(t, g.Set(1, 2, 1))

	dist, err := search.DistanceGraph(g)
	require.NoError(t, err)
	defer dist.Release()

	assert.True(t, dist.Directed())
	assert.Equal(t, float32(1), dist.Get(0, 1))
	assert.Equal(t, float32(2), dist.Get(0, 2))
	assert.Equal(t, float32(2), dist.Get(2, 0))
	assert.False(t, dist.Has(0, 0), "self-loops are skipped")
	assert.Equal(t, uint64(6), dist.NumEdges())

	_, err = search.DistanceGraph(nil)
	assert.ErrorIs(t, err, search.ErrNilGraph)
}

// ------------------------------------------------------------------------
// 3. Connected components.
// ------------------------------------------------------------------------

func TestConnectedComponents(t *testing.T) {
	g := graph.New()
	defer g.Release()
	require.NoError(t, g.Set(0, 1, 1))
	require.NoError(t, g.Set(2, 3, 1))
	require.NoError(t, g.Set(4, 4, 1))

	labels, count, err := search.ConnectedComponents(g)
	require.NoError(t, err)
	defer labels.Release()

	assert.Equal(t, uint64(3), count)
	assert.Equal(t, labels.Get(0), labels.Get(1))
	assert.Equal(t, labels.Get(2), labels.Get(3))
	assert.NotEqual(t, labels.Get(0), labels.Get(2))
	assert.NotEqual(t, labels.Get(0), labels.Get(4))
	assert.NotEqual(t, labels.Get(2), labels.Get(4))
	assert.Equal(t, uint64(5), labels.NumEntries())
}

func TestConnectedComponents_DirectedRejected(t *testing.T) {
	g := graph.New(graph.WithDirected())
	defer g.Release()

	_, _, err := search.ConnectedComponents(g)
	assert.ErrorIs(t, err, search.ErrDirected)

	_, _, err = search.ConnectedComponents(nil)
	assert.ErrorIs(t, err, search.ErrNilGraph)
}
