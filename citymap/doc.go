// Package citymap provides the distance-matrix primitives for the citytsp
// solvers: a validated square table of intercity travel costs and a random
// symmetric map generator.
//
// The central type is DistanceMatrix, an immutable-after-construction table of
// uint16 edge weights. Validity is deliberately minimal: IsValid only checks
// that the matrix is non-empty and square. Symmetry and a zero diagonal are
// guaranteed by Generate, not by the validator — callers supplying their own
// rows via NewFromRows may pass asymmetric instances and they will be
// accepted as-is.
//
// Randomness is an injected dependency: Generate takes a *rand.Rand so tests
// can seed a deterministic stream; a nil source falls back to a fixed default
// seed.
package citymap
