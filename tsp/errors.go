// Package tsp: sentinel error set.
// All solvers return ONLY these sentinels on user-triggered failures and
// tests match them via errors.Is. No panics on user input.

package tsp

import "errors"

var (
	// ErrInvalidMatrix is returned when the distance matrix is empty or not
	// square. Every exported operation checks this first and fails fast
	// rather than indexing out of bounds.
	ErrInvalidMatrix = errors.New("tsp: distance matrix must be non-empty and square")

	// ErrCostUnavailable signals that a candidate tour's cost could not be
	// computed. Unreachable once the matrix validated, but solvers check
	// defensively rather than trusting transitively.
	ErrCostUnavailable = errors.New("tsp: tour cost could not be computed")

	// ErrInvalidIterations is returned by SolveHeuristic for a negative
	// iteration budget. Zero is allowed and returns the identity baseline.
	ErrInvalidIterations = errors.New("tsp: iteration budget must be >= 0")
)
