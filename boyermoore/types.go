package boyermoore

import "github.com/katalvlaran/lvsearch/core"

// ShiftTable maps a symbol to the distance the search window may skip when
// that symbol sits under the last position of the pattern.
//
// Shifts holds only the symbols seen in the pattern. Every other symbol falls
// back to Default, which equals the pattern length.
type ShiftTable[E core.Symbol] struct {
	Shifts  map[E]int
	Default int
}

// Lookup returns the shift for s, or Default when s is not in the table.
func (t ShiftTable[E]) Lookup(s E) int {
	if shift, ok := t.Shifts[s]; ok {
		return shift
	}

	return t.Default
}

// Len reports how many symbols have an explicit shift.
func (t ShiftTable[E]) Len() int {
	return len(t.Shifts)
}
