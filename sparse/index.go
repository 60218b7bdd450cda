package sparse

// MaxBits caps the partition width of one dimension. Widths beyond this
// would overflow the on-disk header and are rejected on load as well.
const MaxBits = 31

// Density thresholds of the rebalance control loop, in entries per bucket.
// Growing starts at growTrigger and continues until the load falls under
// targetLoad; shrinking starts under shrinkTrigger and continues until the
// load reaches targetLoad again (or a single bucket remains).
const (
	growTrigger   = 256
	targetLoad    = 64
	shrinkTrigger = 16
)

// MinDeferral is the lower bound on the number of mutations between two
// rebalance checks.
const MinDeferral = 256

// Index is the 1-D bucket layer: 2^bits Buckets, where the entry for
// index i lives in bucket i & (2^bits - 1).
type Index struct {
	bits    uint32
	buckets []Bucket
}

// NewIndex returns an empty index with a single bucket (bits == 0).
func NewIndex() *Index {
	return &Index{buckets: make([]Bucket, 1)}
}

// Bits returns the current partition width.
func (ix *Index) Bits() uint32 { return ix.bits }

// NumBuckets returns 2^bits.
func (ix *Index) NumBuckets() uint64 { return uint64(len(ix.buckets)) }

// Bucket returns the i-th partition slot.
func (ix *Index) Bucket(i uint64) *Bucket { return &ix.buckets[i] }

// bucketFor returns the bucket deterministically owning index.
func (ix *Index) bucketFor(index uint64) *Bucket {
	return &ix.buckets[index&(uint64(len(ix.buckets))-1)]
}

// Lookup returns the weight stored under index, if any.
// Complexity: O(log(E/B))
func (ix *Index) Lookup(index uint64) (float32, bool) {
	return ix.bucketFor(index).Lookup(index)
}

// Upsert locates or creates the entry for index. The returned pointer is
// valid until the next mutation of the index.
func (ix *Index) Upsert(index uint64) *Entry {
	return ix.bucketFor(index).Upsert(index)
}

// Delete removes the entry for index, reporting whether it existed.
func (ix *Index) Delete(index uint64) bool {
	return ix.bucketFor(index).Delete(index)
}

// Clear drops all entries, keeping bucket storage for reuse.
func (ix *Index) Clear() {
	for i := range ix.buckets {
		ix.buckets[i].Clear()
	}
}

// NumEntries counts live entries across all buckets.
// Complexity: O(B)
func (ix *Index) NumEntries() uint64 {
	var n uint64
	for i := range ix.buckets {
		n += ix.buckets[i].Len()
	}

	return n
}

// ForEach visits every entry. Per-bucket order is sorted by index; no
// order is guaranteed across buckets. The visited pointer may be mutated
// in place (weights only — changing Index breaks the bucket invariant).
// Returning false stops the iteration.
func (ix *Index) ForEach(fn func(*Entry) bool) {
	for i := range ix.buckets {
		entries := ix.buckets[i].entries
		for j := range entries {
			if !fn(&entries[j]) {
				return
			}
		}
	}
}

// Filter compacts every bucket in place, keeping entries for which keep
// returns true.
func (ix *Index) Filter(keep func(Entry) bool) {
	for i := range ix.buckets {
		ix.buckets[i].Filter(keep)
	}
}

// Grow doubles the bucket count by splitting every bucket on one extra
// key bit. The new bucket array is built completely before being swapped
// in. Returns false once the width cap is reached.
// Complexity: O(E + B)
func (ix *Index) Grow() bool {
	if ix.bits >= MaxBits {
		return false
	}

	num := uint64(len(ix.buckets))
	mask := num // the newly tested bit
	next := make([]Bucket, 2*num)
	for i := range ix.buckets {
		lo, hi := ix.buckets[i].split(mask)
		next[i] = lo
		next[uint64(i)+num] = hi
	}

	ix.buckets = next
	ix.bits++

	return true
}

// Shrink halves the bucket count by merging split sibling pairs.
// Returns false when a single bucket remains.
// Complexity: O(E + B)
func (ix *Index) Shrink() bool {
	if ix.bits == 0 {
		return false
	}

	num := uint64(len(ix.buckets)) / 2
	next := make([]Bucket, num)
	for i := uint64(0); i < num; i++ {
		next[i] = merged(&ix.buckets[i], &ix.buckets[i+num])
	}

	ix.buckets = next
	ix.bits--

	return true
}

// Rebalance recomputes the ideal partition width for the current entry
// count and applies it, then returns the number of mutations to defer
// until the next check: proportional to the headroom from the nearest
// density threshold, never below MinDeferral.
// Complexity: O(B) when no resize fires, O(E + B) per resize step
func (ix *Index) Rebalance() uint64 {
	entries := ix.NumEntries()
	buckets := ix.NumBuckets()

	if entries >= buckets*growTrigger {
		for entries >= buckets*targetLoad {
			if !ix.Grow() {
				break
			}
			buckets *= 2
		}
	} else if buckets >= 2 && entries < buckets*shrinkTrigger {
		for buckets >= 2 && entries < buckets*targetLoad {
			if !ix.Shrink() {
				break
			}
			buckets /= 2
		}
	}

	return deferral(entries, ix.NumBuckets())
}

// deferral computes the mutation budget until the next rebalance check.
func deferral(entries, buckets uint64) uint64 {
	headGrow := int64(buckets*growTrigger) - int64(entries)
	headShrink := int64(entries) - int64(buckets*shrinkTrigger)
	head := headGrow
	if headShrink < head {
		head = headShrink
	}
	if head < MinDeferral {
		head = MinDeferral
	}

	return uint64(head)
}

// Compress releases surplus bucket storage after bulk shrinkage.
func (ix *Index) Compress() {
	for i := range ix.buckets {
		ix.buckets[i].Compress()
	}
}

// MemoryUsage estimates the heap footprint in bytes. The bookkeeping of
// the allocator itself is not accounted for.
func (ix *Index) MemoryUsage() uint64 {
	const entrySize = 16 // uint64 + float32, padded
	size := uint64(len(ix.buckets)) * 32
	for i := range ix.buckets {
		size += uint64(cap(ix.buckets[i].entries)) * entrySize
	}

	return size
}

// ForEachPair merge-joins two indexes by entry key, invoking fn once per
// key present in either side; the pointer of an absent side is nil.
// Pointers are only valid for the duration of the call.
//
// When the partition widths differ, each bucket of the finer index is
// joined against the coarse bucket containing its key group; coarse
// entries are reported exactly once, with the fine group their low bits
// select.
// Complexity: O(E_a + E_b) for equal widths, O(2^Δbits · E_coarse + E_fine) otherwise
func ForEachPair(a, b *Index, fn func(x, y *Entry)) {
	fine, coarse := a, b
	swapped := false
	if fine.bits < coarse.bits {
		fine, coarse = coarse, fine
		swapped = true
	}

	fineNum := uint64(len(fine.buckets))
	coarseMask := uint64(len(coarse.buckets)) - 1
	fineMask := fineNum - 1

	emit := func(x, y *Entry) {
		if swapped {
			fn(y, x)
		} else {
			fn(x, y)
		}
	}

	for i := uint64(0); i < fineNum; i++ {
		fa := fine.buckets[i].entries
		cb := coarse.buckets[i&coarseMask].entries

		j, k := 0, 0
		for j < len(fa) && k < len(cb) {
			switch {
			case fa[j].Index == cb[k].Index:
				emit(&fa[j], &cb[k])
				j++
				k++
			case fa[j].Index < cb[k].Index:
				emit(&fa[j], nil)
				j++
			default:
				// Coarse-only entry: report it within its own fine group
				// so that it is seen exactly once.
				if cb[k].Index&fineMask == i {
					emit(nil, &cb[k])
				}
				k++
			}
		}
		for ; j < len(fa); j++ {
			emit(&fa[j], nil)
		}
		for ; k < len(cb); k++ {
			if cb[k].Index&fineMask == i {
				emit(nil, &cb[k])
			}
		}
	}
}
