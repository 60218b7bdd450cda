package sparse

import "sort"

// EdgeBucket is an ordered, duplicate-free run of graph edges owned by one
// 2-D partition slot. Edges are strictly sorted by (Target, Source).
type EdgeBucket struct {
	edges []Edge
	hint  int
}

// Len returns the number of live edges in the bucket.
// Complexity: O(1)
func (b *EdgeBucket) Len() uint64 { return uint64(len(b.edges)) }

// Edges exposes the sorted backing slice. The slice is owned by the bucket
// and is only valid until the next mutation.
func (b *EdgeBucket) Edges() []Edge { return b.edges }

// Reset replaces the bucket content with edges, which must already be
// sorted by (Target, Source). Used by the binary loader, which reads
// buckets exactly as they were written.
func (b *EdgeBucket) Reset(edges []Edge) {
	b.edges = edges
	b.hint = len(edges)
}

// search returns the insertion position of (source, target) and whether
// the edge is present.
func (b *EdgeBucket) search(source, target uint64) (int, bool) {
	pos := sort.Search(len(b.edges), func(i int) bool {
		return !edgeLess(b.edges[i], Edge{Source: source, Target: target})
	})
	found := pos < len(b.edges) &&
		b.edges[pos].Source == source && b.edges[pos].Target == target

	return pos, found
}

// Lookup returns the weight stored under (source, target), if any.
// Complexity: O(log n)
func (b *EdgeBucket) Lookup(source, target uint64) (float32, bool) {
	pos, found := b.search(source, target)
	if !found {
		return 0, false
	}

	return b.edges[pos].Weight, true
}

// Upsert locates the edge (source, target), inserting a zero-weight edge
// at its sorted position when absent. The returned pointer stays valid
// until the next bucket mutation.
// Complexity: O(log n) search, O(n) worst-case insert shift
func (b *EdgeBucket) Upsert(source, target uint64) *Edge {
	pos, found := b.search(source, target)
	if !found {
		b.edges = append(b.edges, Edge{})
		copy(b.edges[pos+1:], b.edges[pos:])
		b.edges[pos] = Edge{Source: source, Target: target}
		if len(b.edges) > b.hint {
			b.hint = len(b.edges)
		}
	}

	return &b.edges[pos]
}

// Delete removes the edge (source, target). It reports whether it existed.
// Complexity: O(log n) search, O(n) worst-case shift
func (b *EdgeBucket) Delete(source, target uint64) bool {
	pos, found := b.search(source, target)
	if !found {
		return false
	}
	b.edges = append(b.edges[:pos], b.edges[pos+1:]...)

	return true
}

// Clear drops every edge but keeps the backing storage for reuse.
func (b *EdgeBucket) Clear() {
	b.edges = b.edges[:0]
}

// Filter compacts the bucket in place, keeping only edges for which keep
// returns true. Relative order is preserved.
// Complexity: O(n)
func (b *EdgeBucket) Filter(keep func(Edge) bool) {
	out := b.edges[:0]
	for _, e := range b.edges {
		if keep(e) {
			out = append(out, e)
		}
	}
	b.edges = out
}

// split partitions the bucket by a single key bit of either dimension:
// exactly one of sourceMask/targetMask is non-zero. Edges with a zero
// masked bit stay in the low child. Sorted order is inherited.
func (b *EdgeBucket) split(sourceMask, targetMask uint64) (lo, hi EdgeBucket) {
	for _, e := range b.edges {
		if e.Source&sourceMask == 0 && e.Target&targetMask == 0 {
			lo.edges = append(lo.edges, e)
		} else {
			hi.edges = append(hi.edges, e)
		}
	}
	lo.hint = len(lo.edges)
	hi.hint = len(hi.edges)

	return lo, hi
}

// mergedEdges combines two split siblings back into one sorted bucket.
// Complexity: O(n+m) linear merge
func mergedEdges(lo, hi *EdgeBucket) EdgeBucket {
	out := EdgeBucket{edges: make([]Edge, 0, len(lo.edges)+len(hi.edges))}
	i, j := 0, 0
	for i < len(lo.edges) && j < len(hi.edges) {
		if edgeLess(lo.edges[i], hi.edges[j]) {
			out.edges = append(out.edges, lo.edges[i])
			i++
		} else {
			out.edges = append(out.edges, hi.edges[j])
			j++
		}
	}
	out.edges = append(out.edges, lo.edges[i:]...)
	out.edges = append(out.edges, hi.edges[j:]...)
	out.hint = len(out.edges)

	return out
}

// Compress releases surplus backing storage once the bucket has shrunk
// well below both its capacity and its historical high-water mark.
func (b *EdgeBucket) Compress() {
	if cap(b.edges) >= 2*len(b.edges) && cap(b.edges) > b.hint {
		edges := make([]Edge, len(b.edges))
		copy(edges, b.edges)
		b.edges = edges
	}
	b.hint = len(b.edges)
}
