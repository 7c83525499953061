// Package citymap: sentinel error set.
// All fallible operations in this package return these sentinels and callers
// are expected to match them via errors.Is. No function panics on user input.

package citymap

import "errors"

var (
	// ErrInvalidWeightRange is returned by Generate when the requested weight
	// range is reversed or empty (High <= Low). The half-open interval
	// [Low, High) must contain at least one value.
	ErrInvalidWeightRange = errors.New("citymap: weight range reversed or empty")

	// ErrInvalidCityCount is returned by Generate for a negative city count.
	// Zero is allowed and yields the empty matrix.
	ErrInvalidCityCount = errors.New("citymap: city count must be >= 0")

	// ErrIndexOutOfBounds indicates that a row or column index passed to
	// Distance is outside [0, N). Public indexers return this, never panic.
	ErrIndexOutOfBounds = errors.New("citymap: index out of bounds")
)
