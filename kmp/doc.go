// Package kmp implements Knuth–Morris–Pratt substring search over byte or
// rune sequences.
//
// 🚀 What is KMP?
//
//	KMP pre-analyses the pattern once and builds the LPS table
//	(Longest proper Prefix that is also a Suffix). On a mismatch the table
//	says how much of the already matched prefix can be reused, so the text
//	cursor never moves backwards.
//	It shines on texts with tight repetition and small alphabets:
//	  • DNA / protein sequences
//	  • log lines with long shared prefixes
//	  • binary protocol framing
//
// ✨ Key features:
//   - BuildLPS: the prefix-function table, exposed for inspection and reuse
//   - Search  : first occurrence, linear time, no backtracking over text
//   - SearchAll: every (possibly overlapping) occurrence of one pattern
//   - generic over core.Symbol: []byte for byte offsets, []rune for code points
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsearch/kmp"
//
//	idx := kmp.SearchString("abxabcabcaby", "abcaby") // 6
//	lps := kmp.BuildLPS([]byte("abcab"))              // [0 0 0 1 2]
//
// Edge cases:
//
//   - empty pattern            → 0
//   - pattern longer than text → core.NotFound
//
// Performance:
//
//   - Time:   O(n + m)
//   - Memory: O(m) for the LPS table
package kmp
