package rabinkarp

import "github.com/katalvlaran/lvsearch/core"

// Hash returns the polynomial hash of s:
//
//	Σ ord(s[i]) · (base^(n-1-i) mod modulus)   (mod modulus)
//
// with base 256 and modulus 101 unless overridden by opts. The result lies in
// [0, modulus). An empty s hashes to 0.
//
// Errors: ErrBadBase, ErrBadModulus.
//
// Complexity: O(n log n), one modular exponentiation per symbol.
func Hash[E core.Symbol](s []E, opts ...Option) (int64, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	return hash(s, cfg.Base, cfg.Modulus), nil
}

// hash is Hash without option handling; base and modulus must be valid.
func hash[E core.Symbol](s []E, base, modulus int64) int64 {
	n := len(s)
	var value int64
	for i, c := range s {
		power := PowMod(base, int64(n-i-1), modulus)
		value = reduce(value+core.Ord(c)*power, modulus)
	}

	return value
}

// PowMod returns base^exp mod modulus by square-and-multiply, for exp ≥ 0.
// A negative exp is treated as 0. The result lies in [0, modulus).
//
// base and modulus must satisfy the Options limits.
//
// Complexity: O(log exp).
func PowMod(base, exp, modulus int64) int64 {
	result := 1 % modulus
	sq := reduce(base, modulus)
	for ; exp > 0; exp >>= 1 {
		if exp&1 != 0 {
			result = result * sq % modulus
		}
		sq = sq * sq % modulus
	}

	return result
}

// reduce maps x into [0, modulus).
func reduce(x, modulus int64) int64 {
	x %= modulus
	if x < 0 {
		x += modulus
	}

	return x
}
