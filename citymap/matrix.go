// Package citymap - DistanceMatrix container and validator.
//
// DistanceMatrix wraps caller-supplied rows without copying; it is treated as
// immutable after construction. The validator is intentionally permissive:
// squareness only, no symmetry or diagonal checks, so asymmetric instances
// remain representable.

package citymap

import (
	"fmt"
	"strings"
)

// DistanceMatrix is a square table of intercity travel costs.
// rows[i][j] is the cost of travelling from city i to city j.
type DistanceMatrix struct {
	rows [][]uint16 // row-held backing storage; not copied on construction
}

// NewFromRows wraps rows in a DistanceMatrix without validation.
// Validation is a separate, explicit step: callers (and every solver) must
// consult IsValid before indexing. The rows are not copied; the caller must
// not mutate them afterwards.
//
// Complexity: O(1).
func NewFromRows(rows [][]uint16) *DistanceMatrix {
	return &DistanceMatrix{rows: rows}
}

// Empty returns the zero-city matrix. It fails IsValid and is the safe
// fallback value when map generation is rejected.
//
// Complexity: O(1).
func Empty() *DistanceMatrix {
	return &DistanceMatrix{}
}

// Rows returns the number of rows (the city count N).
// Complexity: O(1).
func (m *DistanceMatrix) Rows() int {
	return len(m.rows)
}

// Cols returns the width of the first row, or 0 for an empty matrix.
// Complexity: O(1).
func (m *DistanceMatrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}

	return len(m.rows[0])
}

// IsValid reports whether the matrix is non-empty and square.
//
// Contract:
//   - true iff Rows() > 0 and Cols() == Rows().
//   - Symmetry and a zero diagonal are NOT checked; Generate upholds both by
//     construction, but hand-built asymmetric matrices are accepted here.
//
// Complexity: O(1).
func (m *DistanceMatrix) IsValid() bool {
	if m == nil {
		return false
	}

	return len(m.rows) != 0 && len(m.rows[0]) == len(m.rows)
}

// Distance returns the travel cost from city i to city j.
//
// Contract:
//   - 0 <= i < Rows() and 0 <= j < len(rows[i]); otherwise ErrIndexOutOfBounds.
//
// Complexity: O(1).
func (m *DistanceMatrix) Distance(i, j int) (uint16, error) {
	// Validate row index.
	if i < 0 || i >= len(m.rows) {
		return 0, fmt.Errorf("Distance(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	// Validate column index against the actual row (rows may be ragged when
	// the matrix was hand-built; the validator only inspects the first row).
	if j < 0 || j >= len(m.rows[i]) {
		return 0, fmt.Errorf("Distance(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return m.rows[i][j], nil
}

// String implements fmt.Stringer for CLI output and debugging.
// Each row is rendered as a bracketed, comma-separated list on its own line.
//
// Complexity: O(N^2) for string construction.
func (m *DistanceMatrix) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < len(m.rows); i++ { // iterate over rows
		b.WriteByte('[')
		for j = 0; j < len(m.rows[i]); j++ { // iterate over columns
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", m.rows[i][j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
