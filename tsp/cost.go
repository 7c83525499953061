// Package tsp — path cost computation.
//
// This file provides the single ranking function shared by both solvers.
// It is intentionally minimal and side-effect free: validate the matrix,
// accumulate edge weights over consecutive pairs, return a widened sum.

package tsp

import "github.com/katalvlaran/citytsp/citymap"

// PathCost returns the total cost of traversing path over m: the sum of
// m.Distance(path[k], path[k+1]) for each consecutive pair. A path of length
// 0 or 1 has cost 0 (no edges). The path need not be a permutation; partial
// and repeating paths are costable.
//
// Contract:
//   - m must pass IsValid; otherwise ErrInvalidMatrix.
//   - Path indices are the caller's responsibility. An out-of-range index is
//     a contract violation and surfaces as the lookup error
//     (citymap.ErrIndexOutOfBounds) from the matrix boundary — it is never
//     silently accepted.
//
// Complexity: O(len(path)) time, O(1) extra space.
func PathCost(m *citymap.DistanceMatrix, path []int) (uint64, error) {
	// Fail fast on malformed input; this is the sole guard against indexing
	// a non-square matrix.
	if !m.IsValid() {
		return 0, ErrInvalidMatrix
	}

	var (
		sum uint64 // widened accumulator, distinct from the uint16 weight type
		w   uint16 // current edge weight
		err error
		k   int
	)
	for k = 0; k+1 < len(path); k++ {
		w, err = m.Distance(path[k], path[k+1])
		if err != nil {
			return 0, err
		}
		sum += uint64(w)
	}

	return sum, nil
}
