package kmp

import "github.com/katalvlaran/lvsearch/core"

// Search returns the offset of the first occurrence of pattern in text, or
// core.NotFound.
//
// The LPS table is computed once. Two cursors walk the input: i over text, j
// over pattern. A match advances both; a mismatch with j != 0 falls back to
// j = lps[j-1] without consuming text; a mismatch with j == 0 advances i only.
// When j reaches len(pattern) the match starts at i-j.
//
// Edge cases: empty pattern → 0; pattern longer than text → core.NotFound.
//
// Complexity: O(n + m) time, O(m) memory.
func Search[E core.Symbol](text, pattern []E) int {
	if idx, done := core.Precheck(len(text), len(pattern)); done {
		return idx
	}

	lps := BuildLPS(pattern)
	m := len(pattern)
	i, j := 0, 0
	for i < len(text) {
		switch {
		case text[i] == pattern[j]:
			i++
			j++
		case j != 0:
			j = lps[j-1]
		default:
			i++
		}
		if j == m {
			return i - j
		}
	}

	return core.NotFound
}

// SearchString is Search over the bytes of text and pattern.
// The returned offset is a byte offset.
func SearchString(text, pattern string) int {
	return Search([]byte(text), []byte(pattern))
}

// SearchAll returns the offsets of every occurrence of pattern in text,
// overlapping ones included, in increasing order. It returns nil when there
// is none. An empty pattern yields nil.
//
// After a full match the pattern cursor continues from lps[m-1], so the text
// is still scanned exactly once.
//
// Complexity: O(n + m) time, O(m + k) memory for k matches.
func SearchAll[E core.Symbol](text, pattern []E) []int {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}

	lps := BuildLPS(pattern)
	var found []int
	i, j := 0, 0
	for i < len(text) {
		switch {
		case text[i] == pattern[j]:
			i++
			j++
		case j != 0:
			j = lps[j-1]
		default:
			i++
		}
		if j == m {
			found = append(found, i-j)
			j = lps[j-1]
		}
	}

	return found
}
