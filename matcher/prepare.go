package matcher

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Prepare applies the string transforms selected in opts: case folding first,
// then NFC normalisation. With neither enabled s is returned unchanged.
//
// Both sides of a search must go through the same Prepare call, otherwise
// offsets refer to different strings.
func Prepare(s string, opts Options) string {
	if opts.FoldCase {
		// A Caser keeps state, so each call gets its own.
		s = cases.Fold().String(s)
	}
	if opts.NFC {
		s = norm.NFC.String(s)
	}

	return s
}
