package dfs

import "strings"

// IndexOf returns the first index of val in s, or -1 if not found.
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// JoinSig concatenates the elements of c with commas.
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// MinimalRotation returns the lexicographically smallest rotation of s as a
// new slice, using Booth's algorithm.
//
// Complexity: O(n).
func MinimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]string, 0, 2*n)
	doubled = append(append(doubled, s...), s...)

	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append([]string(nil), doubled[k:k+n]...)
}
