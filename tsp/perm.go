// Package tsp - lazy permutation enumeration.
//
// nextPermutation advances a slice to its lexicographic successor in place,
// so SolveExact can fold over all N! candidates while holding exactly one in
// memory. The sequence starting from the identity permutation covers every
// permutation exactly once; it is finite and not restartable after
// exhaustion.

package tsp

// nextPermutation rearranges p into the next permutation in lexicographic
// order and reports whether one existed. When p is already the final
// (descending) permutation it is left untouched and false is returned.
//
// Complexity: O(n) worst case, amortized O(1) over a full enumeration.
func nextPermutation(p []int) bool {
	var n = len(p)
	if n < 2 {
		return false
	}

	// Find the rightmost ascent p[i] < p[i+1].
	var i = n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false // descending: enumeration exhausted
	}

	// Find the rightmost element greater than the pivot and swap.
	var j = n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	// Reverse the suffix to restore ascending order after the pivot.
	var lo, hi = i + 1, n - 1
	for lo < hi {
		p[lo], p[hi] = p[hi], p[lo]
		lo++
		hi--
	}

	return true
}
