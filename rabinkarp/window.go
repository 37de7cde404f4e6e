package rabinkarp

import "github.com/katalvlaran/lvsearch/core"

// Window is the rolling hash state of a fixed-length slice of symbols.
//
// Sum always equals Hash of the symbols currently covered, so a window can be
// slid one position in O(1) instead of rehashing m symbols.
type Window[E core.Symbol] struct {
	base    int64
	modulus int64
	h       int64 // base^(size-1) mod modulus, weight of the leaving symbol
	sum     int64
	size    int
}

// NewWindow hashes the initial window and precomputes the rolling multiplier.
//
// Errors: ErrEmptyWindow, ErrBadBase, ErrBadModulus.
func NewWindow[E core.Symbol](window []E, opts ...Option) (*Window[E], error) {
	if len(window) == 0 {
		return nil, ErrEmptyWindow
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return newWindow(window, cfg), nil
}

func newWindow[E core.Symbol](window []E, cfg Options) *Window[E] {
	return &Window[E]{
		base:    cfg.Base,
		modulus: cfg.Modulus,
		h:       PowMod(cfg.Base, int64(len(window)-1), cfg.Modulus),
		sum:     hash(window, cfg.Base, cfg.Modulus),
		size:    len(window),
	}
}

// Sum returns the hash of the current window, in [0, modulus).
func (w *Window[E]) Sum() int64 {
	return w.sum
}

// Len returns the window length.
func (w *Window[E]) Len() int {
	return w.size
}

// Roll slides the window one position: out leaves on the left, in enters on
// the right. It returns the new Sum.
func (w *Window[E]) Roll(out, in E) int64 {
	sum := (w.sum - core.Ord(out)*w.h) % w.modulus
	sum = (sum*w.base + core.Ord(in)) % w.modulus
	if sum < 0 {
		sum += w.modulus
	}
	w.sum = sum

	return sum
}
