package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citytsp/citymap"
)

// seededRNG returns an independent deterministic random source.
func seededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// allTwos returns the n×n matrix with every entry 2 (including the diagonal,
// which the validator deliberately does not inspect).
func allTwos(n int) *citymap.DistanceMatrix {
	rows := make([][]uint16, n)
	for i := range rows {
		rows[i] = make([]uint16, n)
		for j := range rows[i] {
			rows[i][j] = 2
		}
	}

	return citymap.NewFromRows(rows)
}

// ringFour is the asymmetric 4-city fixture whose unique cheap edges form the
// directed ring 0→3→2→1→0; the cheapest open path of cost 3 starting
// lexicographically earliest is [0,3,2,1].
func ringFour() *citymap.DistanceMatrix {
	return citymap.NewFromRows([][]uint16{
		{2, 2, 2, 1},
		{1, 2, 2, 2},
		{2, 1, 2, 2},
		{2, 2, 1, 2},
	})
}

// nonSquare is a shape-invalid fixture shared by the failure-path tests.
func nonSquare() *citymap.DistanceMatrix {
	return citymap.NewFromRows([][]uint16{
		{0, 1, 2},
		{1, 0, 3},
	})
}

// randomMap generates a seeded symmetric map or fails the test.
func randomMap(t *testing.T, n int, low, high uint16, seed int64) *citymap.DistanceMatrix {
	t.Helper()

	m, err := citymap.Generate(n, citymap.WeightRange{Low: low, High: high}, seededRNG(seed))
	require.NoError(t, err)

	return m
}

// forEachPermutation invokes fn with every permutation of [0, n). The slice
// passed to fn is reused between calls; fn must copy it if it needs to keep
// it. Recursive reference enumeration, independent of the solver's own
// permutation stream.
func forEachPermutation(n int, fn func(p []int)) {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			fn(p)
			return
		}
		for i := k; i < n; i++ {
			p[k], p[i] = p[i], p[k]
			recurse(k + 1)
			p[k], p[i] = p[i], p[k]
		}
	}
	recurse(0)
}
