package vector

import (
	"sync/atomic"

	"github.com/jomazi/libtvg/sparse"
)

// Vector is a sparse mapping from a 64-bit index to a float32 weight.
//
// Mutators require exclusive access; only the reference count is atomic.
// A read-only vector rejects every mutator with ErrReadonly and may be
// shared across goroutines, each holder owning its own reference.
type Vector struct {
	refs atomic.Int64

	policy   storagePolicy
	nonzero  bool
	positive bool
	readonly bool

	revision uint64
	index    *sparse.Index
	pending  uint64 // mutations until the next rebalance check
}

// New creates an empty vector with the given storage options and one
// reference. The initial partition width is zero; the first rebalance
// check is scheduled immediately.
// Complexity: O(1)
func New(opts ...Option) *Vector {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	v := &Vector{
		policy:   policyFor(o),
		nonzero:  o.nonzero,
		positive: o.positive,
		readonly: o.readonly,
		index:    sparse.NewIndex(),
	}
	v.refs.Store(1)
	v.pending = v.index.Rebalance()

	return v
}

// Grab acquires one additional reference and returns v for chaining.
// Safe to call concurrently. A nil receiver is passed through.
func (v *Vector) Grab() *Vector {
	if v != nil {
		v.refs.Add(1)
	}

	return v
}

// Release drops one reference. Releasing more often than Grab+New acquired
// is a caller bug and panics. A nil receiver is ignored.
func (v *Vector) Release() {
	if v == nil {
		return
	}
	if v.refs.Add(-1) < 0 {
		panic("vector: released more often than grabbed")
	}
}

// Nonzero reports whether zero weights are dropped on write.
func (v *Vector) Nonzero() bool { return v.nonzero }

// Positive reports whether weights are declared non-negative.
func (v *Vector) Positive() bool { return v.positive }

// Readonly reports whether all mutators are disabled.
func (v *Vector) Readonly() bool { return v.readonly }

// SetReadonly freezes the vector; no mutator succeeds afterwards.
func (v *Vector) SetReadonly() { v.readonly = true }

// Revision returns the monotonic mutation counter. Collaborators compare
// revisions to detect staleness of derived data.
func (v *Vector) Revision() uint64 { return v.revision }

// Bits returns the current partition width of the underlying index.
func (v *Vector) Bits() uint32 { return v.index.Bits() }

// finish accounts for one successful mutation: bump the revision and tick
// the rebalance counter, rebalancing once it reaches zero.
func (v *Vector) finish() {
	v.revision++
	v.pending--
	if v.pending == 0 {
		v.pending = v.index.Rebalance()
	}
}

// Empty reports whether the vector holds no entries.
// Complexity: O(B)
func (v *Vector) Empty() bool { return v.index.NumEntries() == 0 }

// NumEntries returns the number of stored entries.
// Complexity: O(B)
func (v *Vector) NumEntries() uint64 { return v.index.NumEntries() }

// Has reports whether an entry exists for index.
// Complexity: O(log(E/B))
func (v *Vector) Has(index uint64) bool {
	_, ok := v.index.Lookup(index)

	return ok
}

// Get returns the weight stored under index, or 0 when absent.
// Complexity: O(log(E/B))
func (v *Vector) Get(index uint64) float32 {
	w, _ := v.index.Lookup(index)

	return w
}

// Lookup returns the weight stored under index and whether it exists.
func (v *Vector) Lookup(index uint64) (float32, bool) {
	return v.index.Lookup(index)
}

// Set stores weight under index, replacing any previous value. Under the
// nonzero policy a zero weight deletes the entry instead.
func (v *Vector) Set(index uint64, weight float32) error {
	if v.readonly {
		return ErrReadonly
	}

	if v.policy.keep(weight) {
		v.index.Upsert(index).Weight = weight
	} else {
		v.index.Delete(index)
	}
	v.finish()

	return nil
}

// Add accumulates weight onto the entry for index, creating it on demand.
// Under the nonzero policy a sum of exactly zero deletes the entry.
func (v *Vector) Add(index uint64, weight float32) error {
	if v.readonly {
		return ErrReadonly
	}

	entry := v.index.Upsert(index)
	sum := entry.Weight + weight
	if v.policy.keep(sum) {
		entry.Weight = sum
	} else {
		v.index.Delete(index)
	}
	v.finish()

	return nil
}

// Sub subtracts weight from the entry for index.
func (v *Vector) Sub(index uint64, weight float32) error {
	return v.Add(index, -weight)
}

// Del removes the entry for index. Deleting an absent entry succeeds
// without bumping the revision.
func (v *Vector) Del(index uint64) error {
	if v.readonly {
		return ErrReadonly
	}

	if v.index.Delete(index) {
		v.finish()
	}

	return nil
}

// Clear drops all entries.
func (v *Vector) Clear() error {
	if v.readonly {
		return ErrReadonly
	}

	v.index.Clear()
	v.finish()

	return nil
}

// SetEntries stores a batch of entries, stopping at the first failure.
func (v *Vector) SetEntries(entries []sparse.Entry) error {
	for _, e := range entries {
		if err := v.Set(e.Index, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// AddEntries accumulates a batch of entries, stopping at the first failure.
func (v *Vector) AddEntries(entries []sparse.Entry) error {
	for _, e := range entries {
		if err := v.Add(e.Index, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// SubEntries subtracts a batch of entries, stopping at the first failure.
func (v *Vector) SubEntries(entries []sparse.Entry) error {
	for _, e := range entries {
		if err := v.Sub(e.Index, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// DelEntries removes a batch of indices, stopping at the first failure.
func (v *Vector) DelEntries(indices []uint64) error {
	for _, index := range indices {
		if err := v.Del(index); err != nil {
			return err
		}
	}

	return nil
}

// Entries returns a snapshot of all stored entries in bucket order:
// sorted within a bucket, unordered across buckets.
// Complexity: O(E + B)
func (v *Vector) Entries() []sparse.Entry {
	out := make([]sparse.Entry, 0, v.index.NumEntries())
	v.index.ForEach(func(e *sparse.Entry) bool {
		out = append(out, *e)

		return true
	})

	return out
}

// ForEach visits every entry in bucket order. Returning false stops the
// iteration. The entry passed to fn is a snapshot.
func (v *Vector) ForEach(fn func(index uint64, weight float32) bool) {
	v.index.ForEach(func(e *sparse.Entry) bool {
		return fn(e.Index, e.Weight)
	})
}

// MemoryUsage estimates the heap footprint of the vector in bytes.
func (v *Vector) MemoryUsage() uint64 {
	return 64 + v.index.MemoryUsage()
}
