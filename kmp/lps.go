package kmp

import "github.com/katalvlaran/lvsearch/core"

// BuildLPS computes the LPS table of pattern.
//
// lps[i] is the length of the longest proper prefix of pattern[0..i] that is
// also a suffix of it. lps[0] is always 0 and 0 ≤ lps[i] ≤ i; the table is not
// monotonic in general.
//
// Algorithm Outline:
//  1. length = 0 (current border), i = 1 (next cell to fill).
//  2. pattern[i] == pattern[length] → length++, lps[i] = length, i++.
//  3. mismatch, length != 0 → length = lps[length-1]; i stays put.
//  4. mismatch, length == 0 → lps[i] = 0, i++.
//
// An empty pattern yields an empty table.
//
// Complexity: O(m) time amortised, O(m) memory.
func BuildLPS[E core.Symbol](pattern []E) []int {
	lps := make([]int, len(pattern))
	length, i := 0, 1

	for i < len(pattern) {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
			continue
		}
		if length != 0 {
			length = lps[length-1]
			continue
		}
		lps[i] = 0
		i++
	}

	return lps
}
