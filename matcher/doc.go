// Package matcher gathers the substring-search algorithms behind one
// registry so callers can pick, iterate and cross-check them uniformly.
//
// 🚀 What is in the registry?
//
//	Algorithm is an explicit tagged enumeration (KMP, BoyerMoore,
//	RabinKarp) mapped to function references; nothing is looked up by
//	reflection. All returns them in a fixed order.
//
// ✨ Key features:
//   - ParseAlgorithm: canonical names or the short aliases kmp, bm, rk
//   - Searcher: one algorithm over bytes, runes and strings
//   - CrossCheck: runs every algorithm and reports ErrMismatch on disagreement
//   - Index + Prepare: optional case folding and NFC normalisation (x/text)
//
// ⚙️ Usage:
//
//	for _, a := range matcher.All() {
//	    s, _ := matcher.New(a)
//	    fmt.Println(s, s.SearchString(text, pattern))
//	}
//
//	idx, err := matcher.Index(matcher.BoyerMoore, text, "RABIN-KARP",
//	    matcher.WithFoldCase(), matcher.WithUnits(matcher.Runes))
package matcher
