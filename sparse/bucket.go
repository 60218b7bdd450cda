package sparse

import "sort"

// Bucket is an ordered, duplicate-free run of vector entries owned by one
// 1-D partition slot. Entries are strictly sorted by Index. The bucket
// keeps a capacity hint so that a clear-and-refill cycle does not bounce
// allocations.
type Bucket struct {
	entries []Entry
	hint    int
}

// Len returns the number of live entries in the bucket.
// Complexity: O(1)
func (b *Bucket) Len() uint64 { return uint64(len(b.entries)) }

// Entries exposes the sorted backing slice. The slice is owned by the
// bucket and is only valid until the next mutation.
func (b *Bucket) Entries() []Entry { return b.entries }

// search returns the insertion position of index and whether it is present.
func (b *Bucket) search(index uint64) (int, bool) {
	pos := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Index >= index
	})
	found := pos < len(b.entries) && b.entries[pos].Index == index

	return pos, found
}

// Lookup returns the weight stored under index, if any.
// Complexity: O(log n)
func (b *Bucket) Lookup(index uint64) (float32, bool) {
	pos, found := b.search(index)
	if !found {
		return 0, false
	}

	return b.entries[pos].Weight, true
}

// Upsert locates the entry for index, inserting a zero-weight entry at its
// sorted position when absent. The returned pointer stays valid until the
// next bucket mutation.
// Complexity: O(log n) search, O(n) worst-case insert shift
func (b *Bucket) Upsert(index uint64) *Entry {
	pos, found := b.search(index)
	if !found {
		b.entries = append(b.entries, Entry{})
		copy(b.entries[pos+1:], b.entries[pos:])
		b.entries[pos] = Entry{Index: index}
		if len(b.entries) > b.hint {
			b.hint = len(b.entries)
		}
	}

	return &b.entries[pos]
}

// Delete removes the entry for index. It reports whether an entry existed.
// Complexity: O(log n) search, O(n) worst-case shift
func (b *Bucket) Delete(index uint64) bool {
	pos, found := b.search(index)
	if !found {
		return false
	}
	b.entries = append(b.entries[:pos], b.entries[pos+1:]...)

	return true
}

// Clear drops every entry but keeps the backing storage for reuse.
func (b *Bucket) Clear() {
	b.entries = b.entries[:0]
}

// Filter compacts the bucket in place, keeping only entries for which keep
// returns true. Relative order is preserved.
// Complexity: O(n)
func (b *Bucket) Filter(keep func(Entry) bool) {
	out := b.entries[:0]
	for _, e := range b.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	b.entries = out
}

// split partitions the bucket by a single key bit: entries with
// index&mask == 0 stay in the low child, the rest move to the high child.
// Both children inherit the sorted order (a subsequence of a sorted run
// stays sorted).
func (b *Bucket) split(mask uint64) (lo, hi Bucket) {
	for _, e := range b.entries {
		if e.Index&mask == 0 {
			lo.entries = append(lo.entries, e)
		} else {
			hi.entries = append(hi.entries, e)
		}
	}
	lo.hint = len(lo.entries)
	hi.hint = len(hi.entries)

	return lo, hi
}

// merged combines two split siblings back into one sorted bucket.
// Complexity: O(n+m) linear merge
func merged(lo, hi *Bucket) Bucket {
	out := Bucket{entries: make([]Entry, 0, len(lo.entries)+len(hi.entries))}
	i, j := 0, 0
	for i < len(lo.entries) && j < len(hi.entries) {
		if lo.entries[i].Index < hi.entries[j].Index {
			out.entries = append(out.entries, lo.entries[i])
			i++
		} else {
			out.entries = append(out.entries, hi.entries[j])
			j++
		}
	}
	out.entries = append(out.entries, lo.entries[i:]...)
	out.entries = append(out.entries, hi.entries[j:]...)
	out.hint = len(out.entries)

	return out
}

// Compress releases surplus backing storage once the bucket has shrunk
// well below both its capacity and its historical high-water mark.
func (b *Bucket) Compress() {
	if cap(b.entries) >= 2*len(b.entries) && cap(b.entries) > b.hint {
		entries := make([]Entry, len(b.entries))
		copy(entries, b.entries)
		b.entries = entries
	}
	b.hint = len(b.entries)
}
