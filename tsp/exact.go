// Package tsp - exhaustive (brute force) solver.
//
// SolveExact enumerates every permutation of the city indices and keeps the
// cheapest tour. The enumeration is lazy and lexicographic, starting at the
// identity permutation; ties keep the first-seen minimum, so results are
// reproducible for any fixed matrix.
//
// There is deliberately no cap on the search: N! candidates are visited no
// matter how large N is. Bounding the instance size is the caller's job.

package tsp

import "github.com/katalvlaran/citytsp/citymap"

// SolveExact returns the minimum-cost visiting order over m by exhaustive
// permutation search.
//
// Contract:
//   - m must pass IsValid; otherwise ErrInvalidMatrix (this also rejects the
//     empty matrix before any enumeration starts).
//   - When several tours share the minimum cost, the first one reached in
//     lexicographic enumeration order wins.
//
// Errors: ErrInvalidMatrix, ErrCostUnavailable (defensive; cost computation
// cannot fail once the matrix validated).
//
// Complexity: O(N!·N) time, O(N) space.
func SolveExact(m *citymap.DistanceMatrix) (Result, error) {
	// Stage 1: validate before touching the permutation stream.
	if !m.IsValid() {
		return Result{}, ErrInvalidMatrix
	}

	// Stage 2: fold over the lazy enumeration, keeping the strict minimum.
	var (
		n    = m.Rows()
		cand = identityPath(n) // current candidate, advanced in place
		best []int             // incumbent path (copy of cand at its best)
		low  uint64            // incumbent cost
		cost uint64
		err  error
	)
	for {
		cost, err = PathCost(m, cand)
		if err != nil {
			return Result{}, ErrCostUnavailable
		}
		// Strict < keeps the first-seen minimum under enumeration order.
		if best == nil || cost < low {
			best = append(best[:0], cand...)
			low = cost
		}
		if !nextPermutation(cand) {
			break
		}
	}

	return Result{Path: best, Cost: low}, nil
}
