package tsp

// DefaultIterations is the default random-restart budget for SolveHeuristic.
// It is the single quality/performance knob of the heuristic; raise it for
// better tours, lower it for speed.
const DefaultIterations = 32

// Result holds the outcome of a TSP solver.
type Result struct {
	// Path is the visiting order: a permutation of the city indices 0..N-1.
	// The tour is open; Path does not repeat the start city at the end.
	Path []int

	// Cost is the total travel cost over consecutive path steps.
	// uint64 is deliberately wider than the uint16 edge weights so sums
	// cannot overflow for any realistic city count.
	Cost uint64
}

// Options configures SolveHeuristic.
type Options struct {
	// Iterations is the number of independent random permutation draws.
	// The budget is fixed: no early termination, no adaptation.
	Iterations int

	// Seed selects the deterministic random stream. Zero maps to a fixed
	// default seed; same seed => identical draws across runs.
	Seed int64
}

// DefaultOptions returns the canonical heuristic configuration:
// DefaultIterations draws on the default deterministic stream.
func DefaultOptions() Options {
	return Options{Iterations: DefaultIterations}
}
