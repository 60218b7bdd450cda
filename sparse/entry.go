// Package sparse entry definitions: the stored records of the 1-D and 2-D
// bucket layers, plus their sort predicates.
package sparse

// Entry is one stored vector element: a 64-bit index mapped to a weight.
type Entry struct {
	// Index is the element key; unique within a vector.
	Index uint64

	// Weight is the stored value.
	Weight float32
}

// Edge is one stored graph edge. Edges sort by Target first, Source second;
// undirected iteration and adjacency merge-joins rely on exactly this order.
type Edge struct {
	// Source is the origin node index.
	Source uint64

	// Target is the destination node index.
	Target uint64

	// Weight is the edge weight.
	Weight float32
}

// edgeLess reports whether a sorts before b under the (Target, Source) key.
func edgeLess(a, b Edge) bool {
	if a.Target != b.Target {
		return a.Target < b.Target
	}

	return a.Source < b.Source
}
