// Package datagen produces deterministic random inputs for the interactive
// binary search.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequence across platforms.
//   - Encapsulation: a single RNG factory; no time-based seeding hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package datagen

import (
	"errors"
	"math"
	"math/rand"
	"slices"
)

// Sentinel errors for generator parameters.
var (
	// ErrBadSize indicates a negative sequence size.
	ErrBadSize = errors.New("datagen: size must be non-negative")

	// ErrBadRange indicates lo ≥ hi, a NaN bound or an infinite span.
	ErrBadRange = errors.New("datagen: range must satisfy lo < hi")
)

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 1

// Default value range of generated floats.
const (
	DefaultMin = 0.0
	DefaultMax = 100.0
)

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// SortedFloats returns size floats drawn uniformly from [lo, hi), sorted in
// non-decreasing order. A nil rng uses the DefaultSeed stream.
//
// Errors: ErrBadSize, ErrBadRange.
//
// Complexity: O(size log size).
func SortedFloats(size int, lo, hi float64, rng *rand.Rand) ([]float64, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	// The negated comparison also rejects NaN bounds.
	if !(lo < hi) || hi-lo > math.MaxFloat64 {
		return nil, ErrBadRange
	}
	if rng == nil {
		rng = RNGFromSeed(0)
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	slices.Sort(out)

	return out, nil
}
