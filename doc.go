// Package lvsearch is a small toolbox of classic search algorithms: three
// substring matchers and a bisection search over sorted numbers.
//
// 🚀 What is lvsearch?
//
//	A dependency-light, generic library that brings together:
//		• Knuth–Morris–Pratt: LPS table, first match, all overlapping matches
//		• Boyer–Moore (bad-character rule): shift table + right-to-left compare
//		• Rabin–Karp: polynomial hash, rolling window, configurable base/modulus
//		• Binary search: loop count and "top margin" (smallest element ≥ target)
//
// ✨ Why choose lvsearch?
//
//   - One contract – every matcher returns the first offset or core.NotFound
//   - Generic – []byte for byte offsets, []rune for code-point offsets
//   - Pure functions – no globals, safe for concurrent use
//   - Cross-checked – matcher.CrossCheck runs all algorithms and compares
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       : Symbol constraint, NotFound, shared edge-case policy
//	kmp/        : Knuth–Morris–Pratt
//	boyermoore/ : Boyer–Moore with the bad-character shift table
//	rabinkarp/  : Rabin–Karp, Hash, PowMod, rolling Window
//	bsearch/    : binary search with loop count and top margin
//	matcher/    : algorithm registry, units, case folding / NFC preparation
//	cmd/lvsearch: benchmark harness and interactive bisection (cobra CLI)
//
// Quick example:
//
//	idx := kmp.SearchString("abxabcabcaby", "abcaby")        // 6
//	idx  = boyermoore.SearchString("HERE IS A SIMPLE EXAMPLE", "EXAMPLE") // 17
//	idx  = rabinkarp.SearchString("GEEKS FOR GEEKS", "GEEK") // 0
//
//	loops, top, ok := bsearch.Float64([]float64{1, 2, 3, 5, 8}, 4) // 2 5 true
//
// See the package docs and example_test.go files for more.
package lvsearch
