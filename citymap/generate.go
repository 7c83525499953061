// Package citymap - random symmetric map generation.
//
// Generate produces a complete intercity map with uniform random edge weights
// drawn from a half-open range. Symmetry and a zero diagonal are upheld here,
// by construction: the upper triangle is drawn and the lower triangle mirrors
// it. The validator never re-checks either property.

package citymap

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass a nil
// source. The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// WeightRange is the half-open interval [Low, High) of generatable edge
// weights. It must satisfy High > Low to admit at least one value.
type WeightRange struct {
	Low  uint16 // inclusive lower bound
	High uint16 // exclusive upper bound
}

// Validate returns ErrInvalidWeightRange when the interval is reversed or
// empty (High <= Low). A degenerate range (Low == High) is rejected.
//
// Complexity: O(1).
func (wr WeightRange) Validate() error {
	if wr.High <= wr.Low {
		return ErrInvalidWeightRange
	}

	return nil
}

// Generate builds a numCities x numCities symmetric DistanceMatrix with
// zero diagonal and uniform random off-diagonal weights in [wr.Low, wr.High).
//
// Contract:
//   - wr must validate; a reversed or empty range fails before any allocation.
//   - numCities must be >= 0; zero yields the empty matrix (which then fails
//     IsValid and is rejected by every solver).
//   - rng may be nil, in which case a deterministic default-seed stream is
//     used. Same seed => identical map across runs.
//
// Complexity: O(N^2) time and space.
func Generate(numCities int, wr WeightRange, rng *rand.Rand) (*DistanceMatrix, error) {
	// Stage 1: validate inputs before allocating.
	if err := wr.Validate(); err != nil {
		return nil, err
	}
	if numCities < 0 {
		return nil, ErrInvalidCityCount
	}

	// Stage 2: resolve the random source (nil => fixed default seed).
	var r = rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}

	// Stage 3: fill rows; the lower triangle mirrors the upper one so the
	// map is symmetric and each draw is consumed exactly once.
	var (
		rows = make([][]uint16, numCities)
		span = int(wr.High - wr.Low) // width of the half-open interval
		i, j int
	)
	for i = 0; i < numCities; i++ {
		rows[i] = make([]uint16, numCities)
	}
	for i = 0; i < numCities; i++ {
		for j = 0; j < numCities; j++ {
			switch {
			case i > j:
				rows[i][j] = rows[j][i] // already drawn above the diagonal
			case i == j:
				rows[i][j] = 0 // distance to the same city
			default:
				rows[i][j] = wr.Low + uint16(r.Intn(span))
			}
		}
	}

	return &DistanceMatrix{rows: rows}, nil
}
