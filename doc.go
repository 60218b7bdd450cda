// Package libtvg is an in-memory engine for sparse, weighted,
// time-varying graphs — from the rehashing bucket store to traversal,
// spectral analysis and multi-snapshot stability metrics.
//
// 🚀 What is libtvg?
//
//	A library for graph snapshots with 64-bit node ids and float32
//	weights, bringing together:
//		• Sparse storage: bucketed extendible hashing that grows and
//		  shrinks with the live entry count
//		• Vectors: sparse index→weight maps with nonzero/positive
//		  storage policies
//		• Graphs: directed or undirected edge maps with the same policy
//		  model, plus degree/weight profiles, anomaly scores,
//		  normalization and power iteration
//		• Traversal: one heap-driven loop serving BFS and Dijkstra,
//		  distances, all-pairs distance graphs and components
//		• Stability: Pareto ranking of edges or nodes across snapshot
//		  series by (mean, variance)
//		• Persistence: a fixed-layout little-endian binary codec
//
// ✨ Why choose libtvg?
//
//   - Predictable memory – bucket density is kept between hard
//     thresholds by an amortized rebalance loop
//   - Cheap sharing – reference-counted vectors and graphs; readonly
//     instances are safe to share across goroutines
//   - Exact on-disk format – byte-stable files, safe to exchange
//     between processes
//
// Under the hood, everything is organized in five subpackages plus a CLI:
//
//	sparse/  — bucket, index and grid layers (rehashing, merge-join)
//	vector/  — the sparse vector entity and its elementwise operations
//	graph/   — the graph entity, algebra, power iteration, binary codec
//	search/  — BFS/Dijkstra traversal and derived distance queries
//	metric/  — Pareto stability rankings over snapshot series
//	cmd/tvg  — command line inspection of binary graph files
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	an undirected square: four nodes, four edges, one component.
//
//	go get github.com/jomazi/libtvg
package libtvg
