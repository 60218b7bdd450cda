// Package metric ranks edges or nodes across a series of snapshots by
// stability: consistently heavy keys land on early Pareto fronts of
// (high mean weight, low variance), noisy keys on later ones.
//
// What
//
//   - EdgeStabilityPareto takes graph snapshots and returns a graph whose
//     edge weights are Pareto layer numbers: 1 for the most stable front,
//     then 2, 3, … (or a geometric progression with WithBase).
//   - NodeStabilityPareto is the same ranking over vector snapshots.
//   - WithMeanGraph / WithMeanVector override the ranked key set, e.g. to
//     score this window's keys against a longer-term mean.
//
// Why
//
//   - In a time-varying graph, a raw mean hides whether an edge is
//     steadily present or just occasionally heavy. Ranking by the
//     (mean, variance) Pareto front separates the two.
//
// Complexity (K = keys, N = snapshots)
//
//   - Time:   O(K·N) scoring + O(K log K) sort + O(K²) worst-case peel
//   - Memory: O(K)
//
// Errors
//
//   - ErrNoInput      if no snapshots are supplied.
//   - ErrNilSnapshot  if a snapshot is nil.
//   - ErrDirectedness if graph snapshots disagree on directedness.
package metric
