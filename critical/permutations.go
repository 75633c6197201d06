package critical

import (
	"iter"
	"slices"
)

// Permutations yields every ordering of ids in lexicographic order, starting
// from the sorted arrangement. Input is not modified.
//
// The yielded slice is reused between iterations; callers keeping an order
// must copy it. The sequence is restartable: each range starts afresh.
//
// Complexity: O(n) amortized per permutation, O(n) memory.
func Permutations(ids []string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		cur := slices.Clone(ids)
		slices.Sort(cur)
		for {
			if !yield(cur) {
				return
			}
			if !nextPermutation(cur) {
				return
			}
		}
	}
}

// nextPermutation rearranges a into its lexicographic successor and reports
// false when a is already the last permutation.
func nextPermutation(a []string) bool {
	// 1) Longest non-increasing suffix.
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// 2) Rightmost successor of the pivot.
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	// 3) Reverse the suffix.
	slices.Reverse(a[i+1:])

	return true
}
