// Package core defines the symbol constraint and the shared edge-case policy
// used by every matcher in lvsearch.
//
// This file declares Symbol, NotFound and Precheck.
package core

// NotFound is the index every matcher returns when the pattern does not occur
// in the text.
const NotFound = -1

// Symbol is the set of code units a text or pattern may be made of.
//
//   - ~byte: raw bytes (UTF-8 code units when the input came from a string).
//   - ~rune: Unicode code points.
//
// Matching is always performed symbol-by-symbol; there is no grapheme awareness.
type Symbol interface {
	~byte | ~rune
}

// Ord returns the numeric value of s, i.e. the byte value or the code point.
func Ord[E Symbol](s E) int64 {
	return int64(s)
}

// Precheck resolves the edge cases shared by all matchers before any table
// is built, given the text length n and the pattern length m.
//
// Returns:
//   - (0, true)       : empty pattern: it matches at offset 0, even in an empty text.
//   - (NotFound, true): the pattern is longer than the text.
//   - (0, false)      : nothing decided; the caller must run its main loop.
//
// Complexity: O(1).
func Precheck(n, m int) (index int, done bool) {
	if m == 0 {
		return 0, true
	}
	if m > n {
		return NotFound, true
	}

	return 0, false
}
