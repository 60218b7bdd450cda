// Package sparse implements the bucketed index underlying libtvg vectors
// and graphs: fixed-capacity growable arrays of sorted entries, partitioned
// into 2^bits buckets by the low-order bits of the entry key.
//
// 🚀 What is the sparse index?
//
//	A two-flavored extendible-hashing scheme:
//	  • Index — 1-D: maps a 64-bit index to a float32 weight (vectors)
//	  • Grid  — 2-D: maps a (source, target) pair to a float32 weight
//	    (graph edges), with independent partition widths per dimension
//
// Entries within a bucket are strictly sorted and unique by key; across
// buckets no global order is guaranteed. Binary operations over two
// indexes therefore pair buckets and merge-join on the sort key.
//
// Resizing doubles or halves the bucket count one bit at a time. A resize
// builds the complete new bucket array before swapping it in, so a caller
// never observes a half-split partition. The Rebalance method implements
// the density control loop (grow at ≥256 entries/bucket down to a target
// load of 64, shrink below 16) and returns how many mutations to defer
// before the next check.
//
// Performance:
//
//   - Lookup/Upsert/Delete: O(log(E/B)) within one bucket
//   - Grow/Shrink:          O(E) entry moves, O(B) bucket allocations
//   - Iteration:            O(E + B)
//
// This package has no goroutine-safety of its own; exclusive access during
// mutation is the caller's responsibility.
package sparse
