// Package boyermoore implements Boyer–Moore substring search with the
// bad-character rule (Horspool variant).
//
// 🚀 What is Boyer–Moore?
//
//	The window is compared right-to-left. On a mismatch it moves by the
//	shift recorded for the text symbol aligned with the pattern's LAST
//	position, so long patterns skip most of the text. It shines on:
//	  • long patterns over large alphabets (natural-language text)
//	  • "is it there at all?" scans where most windows fail fast
//
// ✨ Key features:
//   - BuildShiftTable: the bad-character table, exposed as ShiftTable
//   - ShiftTable.Lookup: absent symbols shift by the full pattern length
//   - Search / SearchString: first occurrence or core.NotFound
//   - generic over core.Symbol: []byte for byte offsets, []rune for code points
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsearch/boyermoore"
//
//	idx := boyermoore.SearchString("HERE IS A SIMPLE EXAMPLE", "EXAMPLE") // 17
//	tbl := boyermoore.BuildShiftTable([]byte("abc"))                    // a:2 b:1 c:3
//
// Complexity:
//
//   - Time:  O(n/m) best case, O(n·m) worst case
//   - Space: O(σ) for the shift table, σ = distinct symbols in the pattern
package boyermoore
