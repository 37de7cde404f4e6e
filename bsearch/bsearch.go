package bsearch

import "cmp"

// Search bisects arr for target.
//
// Algorithm Outline:
//  1. low = 0, high = len(arr)-1, loops = 0, no top margin yet.
//  2. While low ≤ high: loops++, mid = (low+high)/2.
//     arr[mid] < target → low = mid+1.
//     otherwise         → high = mid-1 and top = arr[mid].
//
// Returns:
//   - loops: number of iterations executed (0 for an empty slice).
//   - top  : the last recorded candidate; the zero value when ok is false.
//   - ok   : whether any element ≥ target was visited.
//
// With duplicates equal to target the result is the last candidate recorded
// during bisection, which for sorted input carries the same value as the
// leftmost occurrence.
//
// Complexity: O(log n) time, O(1) memory.
func Search[T cmp.Ordered](arr []T, target T) (loops int, top T, ok bool) {
	low, high := 0, len(arr)-1
	for low <= high {
		loops++
		mid := (low + high) / 2
		if arr[mid] < target {
			low = mid + 1
			continue
		}
		high = mid - 1
		top, ok = arr[mid], true
	}

	return loops, top, ok
}

// Float64 is Search specialised to float64, the shape used by the
// interactive harness.
func Float64(arr []float64, target float64) (loops int, top float64, ok bool) {
	return Search(arr, target)
}
