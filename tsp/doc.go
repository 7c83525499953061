// Package tsp provides Travelling Salesman Problem solvers over a
// citymap.DistanceMatrix.
//
// It includes two strategies:
//
//   - SolveExact — exhaustive permutation search.
//     Complexity: O(N!·N); memory O(N) (lazy lexicographic enumeration,
//     never materializing the permutation set).
//
//   - SolveHeuristic — bounded random-restart search: a fixed number of
//     independent uniform permutation draws, keeping the strictly best tour
//     found, seeded by the identity permutation as a baseline.
//     Complexity: O(K·N) for K iterations.
//
// A path's cost is the sum of edge weights over consecutive pairs only; no
// implicit return to the start city is added. Both solvers validate the
// matrix first and report failures through sentinel errors rather than
// panicking; absence of a result is always distinguishable from a zero-cost
// tour.
//
// Use SolveExact when N is small (N! candidates; there is deliberately no
// built-in cutoff) and SolveHeuristic everywhere else.
package tsp
