package sparse

// Grid is the 2-D bucket layer: 2^(bitsSource+bitsTarget) EdgeBuckets,
// where the edge (s, t) lives in bucket
//
//	(t & targetMask) << bitsSource | (s & sourceMask)
//
// The source and target partition widths grow and shrink independently,
// so adjacency scans for a fixed source touch exactly 2^bitsTarget
// buckets (stride 2^bitsSource).
type Grid struct {
	bitsSource uint32
	bitsTarget uint32
	buckets    []EdgeBucket
}

// NewGrid returns an empty grid with a single bucket (both widths 0).
func NewGrid() *Grid {
	return &Grid{buckets: make([]EdgeBucket, 1)}
}

// NewGridWithBits returns an empty grid with the given partition widths.
// Used by the binary loader, which restores the persisted layout as-is.
// Widths beyond MaxBits are clamped by the caller's validation.
func NewGridWithBits(bitsSource, bitsTarget uint32) *Grid {
	return &Grid{
		bitsSource: bitsSource,
		bitsTarget: bitsTarget,
		buckets:    make([]EdgeBucket, uint64(1)<<(bitsSource+bitsTarget)),
	}
}

// Bits returns the partition widths of the source and target dimensions.
func (g *Grid) Bits() (bitsSource, bitsTarget uint32) {
	return g.bitsSource, g.bitsTarget
}

// NumBuckets returns 2^(bitsSource+bitsTarget).
func (g *Grid) NumBuckets() uint64 { return uint64(len(g.buckets)) }

// Bucket returns the i-th partition slot.
func (g *Grid) Bucket(i uint64) *EdgeBucket { return &g.buckets[i] }

// bucketFor returns the bucket deterministically owning (source, target).
func (g *Grid) bucketFor(source, target uint64) *EdgeBucket {
	sMask := (uint64(1) << g.bitsSource) - 1
	tMask := (uint64(1) << g.bitsTarget) - 1
	i := (target&tMask)<<g.bitsSource | (source & sMask)

	return &g.buckets[i]
}

// Lookup returns the weight stored under (source, target), if any.
// Complexity: O(log(E/B))
func (g *Grid) Lookup(source, target uint64) (float32, bool) {
	return g.bucketFor(source, target).Lookup(source, target)
}

// Upsert locates or creates the edge (source, target). The returned
// pointer is valid until the next mutation of the grid.
func (g *Grid) Upsert(source, target uint64) *Edge {
	return g.bucketFor(source, target).Upsert(source, target)
}

// Delete removes the edge (source, target), reporting whether it existed.
func (g *Grid) Delete(source, target uint64) bool {
	return g.bucketFor(source, target).Delete(source, target)
}

// Clear drops all edges, keeping bucket storage for reuse.
func (g *Grid) Clear() {
	for i := range g.buckets {
		g.buckets[i].Clear()
	}
}

// NumEntries counts live edges across all buckets. For undirected graphs
// this counts both physical directions; the caller deduplicates.
// Complexity: O(B)
func (g *Grid) NumEntries() uint64 {
	var n uint64
	for i := range g.buckets {
		n += g.buckets[i].Len()
	}

	return n
}

// IsDiagonal reports whether bucket i can hold an edge together with its
// own mirror, i.e. the source and target partitions coincide on the
// overlapping low bits. Only diagonal buckets may contain both (a,b) and
// (b,a), or self-loops.
func (g *Grid) IsDiagonal(i uint64) bool {
	bits := g.bitsSource
	if g.bitsTarget < bits {
		bits = g.bitsTarget
	}
	mask := (uint64(1) << bits) - 1

	return ((i>>g.bitsSource)^i)&mask == 0
}

// ForEach visits every stored edge. Per-bucket order is (Target, Source);
// no order is guaranteed across buckets. Weights may be mutated in place.
// Returning false stops the iteration.
func (g *Grid) ForEach(fn func(*Edge) bool) {
	for i := range g.buckets {
		edges := g.buckets[i].edges
		for j := range edges {
			if !fn(&edges[j]) {
				return
			}
		}
	}
}

// ForEachAdjacent visits every stored edge with the given source, walking
// the 2^bitsTarget buckets of the source's partition column.
// Complexity: O(2^bitsTarget + column entries)
func (g *Grid) ForEachAdjacent(source uint64, fn func(*Edge) bool) {
	sMask := (uint64(1) << g.bitsSource) - 1
	stride := uint64(1) << g.bitsSource
	num := uint64(len(g.buckets))

	for i := source & sMask; i < num; i += stride {
		edges := g.buckets[i].edges
		for j := range edges {
			if edges[j].Source != source {
				continue
			}
			if !fn(&edges[j]) {
				return
			}
		}
	}
}

// Filter compacts every bucket in place, keeping edges for which keep
// returns true.
func (g *Grid) Filter(keep func(Edge) bool) {
	for i := range g.buckets {
		g.buckets[i].Filter(keep)
	}
}

// GrowSource doubles the bucket count by splitting every bucket on one
// extra source bit; partition columns are re-interleaved. The new bucket
// array is built completely before being swapped in. Returns false once
// the width cap is reached.
// Complexity: O(E + B)
func (g *Grid) GrowSource() bool {
	if g.bitsSource >= MaxBits {
		return false
	}

	mask := uint64(1) << g.bitsSource
	sPartMask := mask - 1
	next := make([]EdgeBucket, 2*len(g.buckets))
	for i := range g.buckets {
		tPart := uint64(i) >> g.bitsSource
		sPart := uint64(i) & sPartMask
		lo, hi := g.buckets[i].split(mask, 0)
		next[tPart<<(g.bitsSource+1)|sPart] = lo
		next[tPart<<(g.bitsSource+1)|mask|sPart] = hi
	}

	g.buckets = next
	g.bitsSource++

	return true
}

// GrowTarget doubles the bucket count by splitting every bucket on one
// extra target bit; the new high-order buckets are appended.
// Complexity: O(E + B)
func (g *Grid) GrowTarget() bool {
	if g.bitsTarget >= MaxBits {
		return false
	}

	num := uint64(len(g.buckets))
	mask := uint64(1) << g.bitsTarget
	next := make([]EdgeBucket, 2*num)
	for i := range g.buckets {
		lo, hi := g.buckets[i].split(0, mask)
		next[i] = lo
		next[uint64(i)+num] = hi
	}

	g.buckets = next
	g.bitsTarget++

	return true
}

// ShrinkSource halves the bucket count by merging source-split siblings.
// Returns false when the source width is already zero.
// Complexity: O(E + B)
func (g *Grid) ShrinkSource() bool {
	if g.bitsSource == 0 {
		return false
	}

	newBits := g.bitsSource - 1
	half := uint64(1) << newBits
	sPartMask := half - 1
	next := make([]EdgeBucket, uint64(len(g.buckets))/2)
	for j := range next {
		tPart := uint64(j) >> newBits
		sPart := uint64(j) & sPartMask
		lo := &g.buckets[tPart<<g.bitsSource|sPart]
		hi := &g.buckets[tPart<<g.bitsSource|half|sPart]
		next[j] = mergedEdges(lo, hi)
	}

	g.buckets = next
	g.bitsSource = newBits

	return true
}

// ShrinkTarget halves the bucket count by merging target-split siblings.
// Returns false when the target width is already zero.
// Complexity: O(E + B)
func (g *Grid) ShrinkTarget() bool {
	if g.bitsTarget == 0 {
		return false
	}

	num := uint64(len(g.buckets)) / 2
	next := make([]EdgeBucket, num)
	for i := uint64(0); i < num; i++ {
		next[i] = mergedEdges(&g.buckets[i], &g.buckets[i+num])
	}

	g.buckets = next
	g.bitsTarget--

	return true
}

// Rebalance recomputes the ideal partition widths for the current edge
// count and applies them, then returns the number of mutations to defer
// until the next check (the caller halves it for undirected graphs, which
// store two physical entries per logical edge).
//
// Growth always extends the dimension with the smaller width, ties favor
// source; shrinking retracts the dimension with the larger width, ties
// favor target.
// Complexity: O(B) when no resize fires, O(E + B) per resize step
func (g *Grid) Rebalance() uint64 {
	entries := g.NumEntries()
	buckets := g.NumBuckets()

	if entries >= buckets*growTrigger {
		for entries >= buckets*targetLoad {
			var grown bool
			if g.bitsSource <= g.bitsTarget {
				grown = g.GrowSource()
			} else {
				grown = g.GrowTarget()
			}
			if !grown {
				break
			}
			buckets *= 2
		}
	} else if buckets >= 2 && entries < buckets*shrinkTrigger {
		for buckets >= 2 && entries < buckets*targetLoad {
			var shrunk bool
			if g.bitsSource <= g.bitsTarget {
				shrunk = g.ShrinkTarget()
			} else {
				shrunk = g.ShrinkSource()
			}
			if !shrunk {
				break
			}
			buckets /= 2
		}
	}

	return deferral(entries, g.NumBuckets())
}

// Compress releases surplus bucket storage after bulk shrinkage.
func (g *Grid) Compress() {
	for i := range g.buckets {
		g.buckets[i].Compress()
	}
}

// Clone returns a deep copy of the grid with identical partition widths
// and bucket contents.
// Complexity: O(E + B)
func (g *Grid) Clone() *Grid {
	out := &Grid{
		bitsSource: g.bitsSource,
		bitsTarget: g.bitsTarget,
		buckets:    make([]EdgeBucket, len(g.buckets)),
	}
	for i := range g.buckets {
		edges := make([]Edge, len(g.buckets[i].edges))
		copy(edges, g.buckets[i].edges)
		out.buckets[i] = EdgeBucket{edges: edges, hint: g.buckets[i].hint}
	}

	return out
}

// MemoryUsage estimates the heap footprint in bytes. The bookkeeping of
// the allocator itself is not accounted for.
func (g *Grid) MemoryUsage() uint64 {
	const edgeSize = 24 // two uint64 + float32, padded
	size := uint64(len(g.buckets)) * 32
	for i := range g.buckets {
		size += uint64(cap(g.buckets[i].edges)) * edgeSize
	}

	return size
}
