// Package bsearch implements an instrumented binary search.
//
// 🚀 What does it report?
//
//	Besides bisecting, Search counts how many loop iterations ran and
//	returns the "top margin": the last visited element that is not less
//	than the target. For input sorted in non-decreasing order that is the
//	smallest element ≥ target (the lower bound).
//
// ✨ Key features:
//   - Search: generic over cmp.Ordered
//   - Float64: the float64 shape used by the interactive harness
//   - empty input → (0, zero value, false)
//
// ⚙️ Usage:
//
//	loops, top, ok := bsearch.Float64([]float64{1, 2, 3, 5, 8}, 4) // 2 5 true
//
// Sortedness is a precondition and is not checked.
package bsearch
