// Package citytsp models the symmetric Travelling Salesman Problem on a
// randomly generated complete map of cities and computes visiting orders
// with two strategies: exhaustive permutation search and a bounded
// random-restart heuristic.
//
// 🚀 What is citytsp?
//
//	A small, deterministic-by-seed TSP playground built from three parts:
//		• citymap/     — distance-matrix primitives: validated square maps
//		  of uint16 edge weights and a random symmetric map generator
//		• tsp/         — the solvers: PathCost, SolveExact (brute force)
//		  and SolveHeuristic (fixed budget of uniform random restarts)
//		• cmd/citytsp/ — the demo CLI wiring generation, both solvers and
//		  a structured error channel together
//
// ✨ Design at a glance
//
//   - Minimal validity – a map is valid iff it is non-empty and square;
//     symmetry and the zero diagonal are the generator's job, never the
//     validator's, so asymmetric instances stay representable
//   - Explicit failure – sentinel errors everywhere, no panics on user
//     input; absence of a result is always distinguishable from a
//     zero-cost tour
//   - Injected randomness – every random draw flows through a *rand.Rand
//     (nil selects a fixed default seed), so all behavior is reproducible
//   - No hidden bounds – SolveExact visits all N! candidates with no
//     silent cutoff; SolveHeuristic runs exactly its configured budget
//
// Quick start:
//
//	m, err := citymap.Generate(8, citymap.WeightRange{Low: 1, High: 100}, nil)
//	if err != nil { ... }
//	best, err := tsp.SolveExact(m)
//	good, err := tsp.SolveHeuristic(m, tsp.DefaultOptions())
//
//	go get github.com/katalvlaran/citytsp
package citytsp
