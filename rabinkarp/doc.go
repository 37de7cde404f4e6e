// Package rabinkarp implements Rabin–Karp substring search on top of a
// polynomial rolling hash.
//
// 🚀 What is Rabin–Karp?
//
//	Each window of the text is summarised by a hash that is updated in O(1)
//	as the window slides. Only windows whose hash equals the pattern hash
//	are compared symbol by symbol, so collisions cost time but never
//	correctness.
//
// ✨ Key features:
//   - Hash / PowMod: Σ ord(s[i])·base^(n-1-i) mod modulus
//   - Window: a rolling hash with Roll(out, in), reusable on its own
//   - Search / SearchString: fixed base 256, modulus 101, never errors
//   - SearchWithOptions: WithBase / WithModulus, validated up front
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsearch/rabinkarp"
//
//	idx := rabinkarp.SearchString("GEEKS FOR GEEKS", "GEEK") // 0
//
//	idx, err := rabinkarp.SearchWithOptions(text, pattern,
//	    rabinkarp.WithModulus(1_000_000_007))
//
// The default parameters make collisions frequent on purpose; pass a larger
// prime modulus for fewer exact comparisons.
//
// Limits: base ∈ [1, MaxBase], modulus ∈ [2, MaxModulus]. Both are bounded by
// 2^31-1 so every intermediate product fits in int64.
package rabinkarp
