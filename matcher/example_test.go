package matcher_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/matcher"
)

// ExampleSearchers runs every registered algorithm on the same input.
func ExampleSearchers() {
	for _, s := range matcher.Searchers() {
		fmt.Printf("%s: %d\n", s, s.SearchString("HERE IS A SIMPLE EXAMPLE", "EXAMPLE"))
	}
	// Output:
	// knuth-morris-pratt: 17
	// boyer-moore: 17
	// rabin-karp: 17
}

// ExampleIndex searches code points case-insensitively.
func ExampleIndex() {
	idx, err := matcher.Index(matcher.RabinKarp, "Алгоритми ПОШУКУ", "пошук",
		matcher.WithUnits(matcher.Runes), matcher.WithFoldCase())
	fmt.Println(idx, err)
	// Output:
	// 10 <nil>
}
