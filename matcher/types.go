package matcher

import (
	"errors"
	"strings"
)

// Sentinel errors for registry lookups and cross-checks.
var (
	// ErrUnknownAlgorithm is returned for a name or value outside the registry.
	ErrUnknownAlgorithm = errors.New("matcher: unknown algorithm")

	// ErrUnknownUnits is returned for a units name other than bytes or runes.
	ErrUnknownUnits = errors.New("matcher: unknown units")

	// ErrMismatch is returned by CrossCheck when two algorithms disagree.
	ErrMismatch = errors.New("matcher: algorithms disagree")
)

// Algorithm identifies one substring-search algorithm.
type Algorithm int

const (
	// KMP is Knuth–Morris–Pratt (package kmp).
	KMP Algorithm = iota

	// BoyerMoore is Boyer–Moore with the bad-character rule (package boyermoore).
	BoyerMoore

	// RabinKarp is Rabin–Karp with the default polynomial hash (package rabinkarp).
	RabinKarp
)

// algorithmNames holds the canonical name of each Algorithm, in order.
var algorithmNames = [...]string{
	KMP:        "knuth-morris-pratt",
	BoyerMoore: "boyer-moore",
	RabinKarp:  "rabin-karp",
}

// algorithmAliases maps accepted short names to algorithms.
var algorithmAliases = map[string]Algorithm{
	"kmp": KMP,
	"bm":  BoyerMoore,
	"rk":  RabinKarp,
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "unknown"
	}

	return algorithmNames[a]
}

// Valid reports whether a is one of the registered algorithms.
func (a Algorithm) Valid() bool {
	return a >= KMP && a <= RabinKarp
}

// ParseAlgorithm accepts a canonical name or a short alias (kmp, bm, rk),
// case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	for a, n := range algorithmNames {
		if n == key {
			return Algorithm(a), nil
		}
	}

	return 0, ErrUnknownAlgorithm
}

// All returns every registered algorithm in a fixed order.
func All() []Algorithm {
	return []Algorithm{KMP, BoyerMoore, RabinKarp}
}

// Units selects what a symbol is when searching strings.
//
//   - Bytes: UTF-8 code units; offsets are byte offsets.
//   - Runes: Unicode code points; offsets count runes.
type Units int

const (
	// Bytes searches raw bytes.
	Bytes Units = iota

	// Runes searches decoded code points.
	Runes
)

// String returns "bytes" or "runes".
func (u Units) String() string {
	switch u {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	default:
		return "unknown"
	}
}

// ParseUnits accepts "bytes" or "runes".
func ParseUnits(name string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bytes", "byte":
		return Bytes, nil
	case "runes", "rune", "codepoints":
		return Runes, nil
	default:
		return 0, ErrUnknownUnits
	}
}

// Options configures how strings are prepared before searching.
//
//   - Units   : symbol granularity, default Bytes.
//   - FoldCase: apply Unicode case folding to text and pattern.
//   - NFC     : normalise text and pattern to Unicode NFC.
type Options struct {
	Units    Units
	FoldCase bool
	NFC      bool
}

// Option configures Options.
type Option func(*Options)

// WithUnits sets the symbol granularity.
func WithUnits(u Units) Option {
	return func(o *Options) {
		o.Units = u
	}
}

// WithFoldCase enables case-insensitive matching through Unicode case folding.
func WithFoldCase() Option {
	return func(o *Options) {
		o.FoldCase = true
	}
}

// WithNFC enables NFC normalisation, so precomposed and decomposed forms of
// the same character match.
func WithNFC() Option {
	return func(o *Options) {
		o.NFC = true
	}
}

// DefaultOptions returns byte units with no case folding and no normalisation.
func DefaultOptions() Options {
	return Options{
		Units:    Bytes,
		FoldCase: false,
		NFC:      false,
	}
}
