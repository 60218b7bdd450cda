// Package search provides priority-queue traversal over a graph.Graph,
// in breadth-first (hop count) or Dijkstra (cumulative weight) order,
// plus the distance queries built on top of it.
//
// What
//
//   - Traverse explores all nodes reachable from a source in
//     non-decreasing distance, reporting each reached node exactly once
//     through a visit callback.
//   - The callback answers with a Verdict: Continue exploring, Stop with
//     success, or Abort with ErrAborted.
//   - Derived queries: DistanceHops / DistanceWeight (single target),
//     AllDistancesHops / AllDistancesWeights (bounded sweep),
//     DistanceGraph (all-pairs distance graph), ConnectedComponents
//     (undirected component labeling).
//
// Why
//
//   - Shortest paths, reachability and component structure are the core
//     read queries over sparse weighted graphs.
//   - A single heap-driven loop serves both metrics; the ordering is the
//     only difference between plain BFS and Dijkstra here.
//
// Determinism
//
//	The pop order among equal distances follows heap mechanics and the
//	bucket layout, so it is stable for a fixed graph but not specified.
//	Distances themselves are always minimal.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O((V + E) log V) per traversal
//   - Memory: O(V + E) for the visited set and the lazy queue
//
// Usage
//
//	err := search.Traverse(g, 0,
//	    search.WithWeightOrder(),
//	    search.WithOnVisit(func(s search.Step) search.Verdict {
//	        if s.Weight > 10 {
//	            return search.Stop
//	        }
//	        return search.Continue
//	    }),
//	)
//
// Errors
//
//   - ErrNilGraph    if the graph pointer is nil.
//   - ErrAborted     if the visit callback answers Abort.
//   - ErrUnreachable if a distance query finds no path.
//   - ErrDirected    if ConnectedComponents runs on a directed graph.
package search
