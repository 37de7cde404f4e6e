package boyermoore

import "github.com/katalvlaran/lvsearch/core"

// BuildShiftTable builds the bad-character table for pattern.
//
// For every index k < m-1, pattern[k] maps to m-k-1; a later index overwrites
// an earlier one, so repeated symbols keep the rightmost shift. The last
// symbol is then mapped to m, but only if it was not assigned already.
//
// Example: "abc" → {a:2, b:1, c:3}, Default 3.
//
// An empty pattern yields an empty table with Default 0.
func BuildShiftTable[E core.Symbol](pattern []E) ShiftTable[E] {
	m := len(pattern)
	table := ShiftTable[E]{Shifts: make(map[E]int, m), Default: m}
	if m == 0 {
		return table
	}

	for k := 0; k < m-1; k++ {
		table.Shifts[pattern[k]] = m - k - 1
	}
	if _, ok := table.Shifts[pattern[m-1]]; !ok {
		table.Shifts[pattern[m-1]] = m
	}

	return table
}

// Search returns the offset of the first occurrence of pattern in text, or
// core.NotFound.
//
// Edge cases: empty pattern → 0; pattern longer than text → core.NotFound,
// decided before the main loop so no index ever runs past the text.
func Search[E core.Symbol](text, pattern []E) int {
	if idx, done := core.Precheck(len(text), len(pattern)); done {
		return idx
	}

	table := BuildShiftTable(pattern)
	n, m := len(text), len(pattern)
	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			return i
		}
		i += table.Lookup(text[i+m-1])
	}

	return core.NotFound
}

// SearchString is Search over the bytes of text and pattern.
func SearchString(text, pattern string) int {
	return Search([]byte(text), []byte(pattern))
}
