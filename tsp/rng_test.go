package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citytsp/citymap"
	"github.com/katalvlaran/citytsp/tsp"
)

func TestRandomPath_IsPermutation(t *testing.T) {
	var (
		m   = randomMap(t, 10, 60, 90, 5)
		rng = seededRNG(21)
	)

	// Several draws; each must visit every city exactly once.
	for draw := 0; draw < 20; draw++ {
		path, err := tsp.RandomPath(m, rng)
		require.NoError(t, err)
		require.Len(t, path, 10)

		seen := make(map[int]bool, len(path))
		for _, c := range path {
			require.GreaterOrEqual(t, c, 0)
			require.Less(t, c, 10)
			require.False(t, seen[c], "duplicate city %d", c)
			seen[c] = true
		}
	}
}

func TestRandomPath_InvalidMatrix(t *testing.T) {
	_, err := tsp.RandomPath(citymap.Empty(), seededRNG(1))
	require.ErrorIs(t, err, tsp.ErrInvalidMatrix)

	_, err = tsp.RandomPath(nonSquare(), seededRNG(1))
	require.ErrorIs(t, err, tsp.ErrInvalidMatrix)
}

func TestRandomPath_DeterministicBySeed(t *testing.T) {
	m := randomMap(t, 12, 1, 100, 9)

	a, err := tsp.RandomPath(m, seededRNG(33))
	require.NoError(t, err)
	b, err := tsp.RandomPath(m, seededRNG(33))
	require.NoError(t, err)
	require.Equal(t, a, b)

	// Nil follows the fixed default-seed policy and is also reproducible.
	c, err := tsp.RandomPath(m, nil)
	require.NoError(t, err)
	d, err := tsp.RandomPath(m, nil)
	require.NoError(t, err)
	require.Equal(t, c, d)
}
