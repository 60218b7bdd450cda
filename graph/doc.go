// Package graph provides the sparse 2-D entity of libtvg: a mapping from
// an (source, target) edge key to a float32 weight, built on the sparse
// bucket grid, together with the graph algebra and the binary on-disk
// codec.
//
// 🚀 What is a Graph?
//
//	A dynamically rebalancing sparse adjacency structure:
//	  • Get/Set/Add/Sub/Del single edges or bulk slices
//	  • directed or undirected storage modes, chosen at construction
//	  • an optional nonzero policy under which zero-weight edges are
//	    never stored
//	  • edge counting, adjacency scans, top-k edges (tie-inclusive)
//	  • algebra: AddGraph, MulConst, MulVector, degree/weight profiles,
//	    anomaly scores, bistochastic-style normalization
//	  • dominant-eigenvector power iteration with a seedable RNG
//	  • induced subgraphs via FilterNodes
//	  • Save/Load of the fixed-layout "TVGG" binary format
//
// Undirected graphs physically store both edge directions; iteration
// skips the mirror entries (Target < Source), lookups and adjacency scans
// work directly for either endpoint, and Set(a,b) keeps both directions
// consistent. Storage-mode behavior is dispatched through a variant
// selected at construction, not through flag checks in every mutator.
//
// Every successful mutation bumps a monotonic revision counter and ticks
// the rebalance counter of the underlying grid; when it reaches zero the
// partition widths are recomputed (the deferral is halved for undirected
// graphs, which hold two physical entries per logical edge).
//
// Concurrency: mutation requires exclusive access (single-writer). Only
// Grab/Release are atomic; a read-only graph may be shared across
// goroutines, enforced at the API boundary via ErrReadonly.
package graph
