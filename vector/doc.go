// Package vector provides the sparse 1-D entity of libtvg: a mapping from
// a 64-bit index to a float32 weight, built on the sparse bucket layer.
//
// 🚀 What is a Vector?
//
//	A dynamically rebalancing sparse vector used for node sets, degree
//	and weight profiles, BFS visit sets, and eigenvector iterates:
//	  • Get/Set/Add/Sub/Del single entries or bulk slices
//	  • MulConst, DelSmall (pruning), Norm, dot products, L2 distances
//	  • construction-time storage policies (nonzero, positive)
//	  • atomic Grab/Release reference counting for read-only sharing
//
// Every successful mutation bumps a monotonic revision counter, which
// collaborators use to detect staleness, and ticks the rebalance counter
// of the underlying index; when it reaches zero the partition width is
// recomputed.
//
// Concurrency: mutation requires exclusive access (single-writer).
// Only Grab/Release are atomic; a read-only vector may be shared across
// goroutines, enforced at the API boundary via ErrReadonly.
//
// Iteration over entries follows bucket order: sorted within a bucket,
// unordered across buckets.
package vector
