package rabinkarp

import (
	"slices"

	"github.com/katalvlaran/lvsearch/core"
)

// Search returns the offset of the first occurrence of pattern in text, or
// core.NotFound, using the default hash parameters.
//
// Edge cases: empty pattern → 0; pattern longer than text → core.NotFound.
//
// Complexity: O(n + m) expected, O(n·m) worst case under heavy collisions.
func Search[E core.Symbol](text, pattern []E) int {
	return search(text, pattern, DefaultOptions())
}

// SearchString is Search over the bytes of text and pattern.
func SearchString(text, pattern string) int {
	return Search([]byte(text), []byte(pattern))
}

// SearchWithOptions is Search with caller-chosen hash parameters.
//
// Errors: ErrBadBase, ErrBadModulus.
func SearchWithOptions[E core.Symbol](text, pattern []E, opts ...Option) (int, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return core.NotFound, err
	}

	return search(text, pattern, cfg), nil
}

// search runs the matcher. Steps:
//  1. Hash the pattern and the first window once.
//  2. For each window start i in [0, n-m]: equal hashes → exact compare,
//     return i on confirmation.
//  3. While another window remains, roll out text[i] and roll in text[i+m].
func search[E core.Symbol](text, pattern []E, cfg Options) int {
	if idx, done := core.Precheck(len(text), len(pattern)); done {
		return idx
	}

	n, m := len(text), len(pattern)
	target := hash(pattern, cfg.Base, cfg.Modulus)
	w := newWindow(text[:m], cfg)
	for i := 0; i <= n-m; i++ {
		if w.Sum() == target && slices.Equal(text[i:i+m], pattern) {
			return i
		}
		if i < n-m {
			w.Roll(text[i], text[i+m])
		}
	}

	return core.NotFound
}
