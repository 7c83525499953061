// Package tsp - bounded random-restart solver.
//
// SolveHeuristic is random-restart search with a fixed budget: K independent
// uniform permutation draws, greedy improve-only acceptance, identity-path
// baseline. It is not simulated annealing — there is no temperature schedule,
// no acceptance of worse tours, and no neighborhood moves; every candidate is
// a fresh uniform draw.

package tsp

import "github.com/katalvlaran/citytsp/citymap"

// SolveHeuristic returns the best visiting order found within
// opts.Iterations uniform random permutation draws over m.
//
// The incumbent starts as the identity permutation [0, 1, ..., N-1]. Each of
// the exactly opts.Iterations draws replaces the incumbent iff its cost is
// strictly lower; equal-cost candidates never displace an earlier incumbent.
// The budget is fixed: no early termination on stagnation or on reaching a
// known optimum.
//
// Contract:
//   - m must pass IsValid; otherwise ErrInvalidMatrix.
//   - opts.Iterations must be >= 0; zero returns the identity baseline.
//   - Draws come from the deterministic stream selected by opts.Seed
//     (seed==0 maps to a fixed default seed).
//
// Errors: ErrInvalidMatrix, ErrInvalidIterations, ErrCostUnavailable
// (defensive, on the baseline or any candidate).
//
// Complexity: O(K·N) time, O(N) space.
func SolveHeuristic(m *citymap.DistanceMatrix, opts Options) (Result, error) {
	// Stage 1: validate matrix and budget.
	if !m.IsValid() {
		return Result{}, ErrInvalidMatrix
	}
	if opts.Iterations < 0 {
		return Result{}, ErrInvalidIterations
	}

	// Stage 2: identity baseline becomes the initial incumbent.
	var (
		incumbent = identityPath(m.Rows())
		low       uint64
		err       error
	)
	low, err = PathCost(m, incumbent)
	if err != nil {
		return Result{}, ErrCostUnavailable
	}

	// Stage 3: exactly Iterations independent draws, improve-only.
	var (
		rng  = rngFromSeed(opts.Seed)
		cand []int
		cost uint64
		it   int
	)
	for it = 0; it < opts.Iterations; it++ {
		cand, err = RandomPath(m, rng)
		if err != nil {
			return Result{}, err
		}
		cost, err = PathCost(m, cand)
		if err != nil {
			return Result{}, ErrCostUnavailable
		}
		if cost < low { // strict: ties keep the existing incumbent
			incumbent = cand
			low = cost
		}
	}

	return Result{Path: incumbent, Cost: low}, nil
}
