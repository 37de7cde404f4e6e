package matcher

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/boyermoore"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/kmp"
	"github.com/katalvlaran/lvsearch/rabinkarp"
)

// Searcher is one substring-search algorithm over bytes, runes and strings.
// Implementations are stateless and safe for concurrent use.
type Searcher interface {
	fmt.Stringer

	// Algorithm returns the registry tag.
	Algorithm() Algorithm

	// Search returns the byte offset of the first match, or core.NotFound.
	Search(text, pattern []byte) int

	// SearchRunes returns the code-point offset of the first match, or core.NotFound.
	SearchRunes(text, pattern []rune) int

	// SearchString is Search over the bytes of two strings.
	SearchString(text, pattern string) int
}

// searcher binds an Algorithm to its byte and rune instantiations.
type searcher struct {
	alg   Algorithm
	bytes func(text, pattern []byte) int
	runes func(text, pattern []rune) int
}

func (s searcher) String() string                       { return s.alg.String() }
func (s searcher) Algorithm() Algorithm                 { return s.alg }
func (s searcher) Search(text, pattern []byte) int      { return s.bytes(text, pattern) }
func (s searcher) SearchRunes(text, pattern []rune) int { return s.runes(text, pattern) }
func (s searcher) SearchString(text, pattern string) int {
	return s.bytes([]byte(text), []byte(pattern))
}

// Func returns the search function of a for symbol type E.
//
// Errors: ErrUnknownAlgorithm.
func Func[E core.Symbol](a Algorithm) (func(text, pattern []E) int, error) {
	switch a {
	case KMP:
		return kmp.Search[E], nil
	case BoyerMoore:
		return boyermoore.Search[E], nil
	case RabinKarp:
		return rabinkarp.Search[E], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

// New returns the Searcher for a.
//
// Errors: ErrUnknownAlgorithm.
func New(a Algorithm) (Searcher, error) {
	b, err := Func[byte](a)
	if err != nil {
		return nil, err
	}
	r, err := Func[rune](a)
	if err != nil {
		return nil, err
	}

	return searcher{alg: a, bytes: b, runes: r}, nil
}

// Searchers returns a Searcher for every registered algorithm, in All order.
func Searchers() []Searcher {
	out := make([]Searcher, 0, len(All()))
	for _, a := range All() {
		s, _ := New(a) // every registered algorithm resolves
		out = append(out, s)
	}

	return out
}

// CrossCheck runs every registered algorithm on text and pattern and returns
// their common answer. If any two disagree the first disagreement is reported
// as ErrMismatch.
func CrossCheck[E core.Symbol](text, pattern []E) (int, error) {
	want := core.NotFound
	for i, a := range All() {
		fn, err := Func[E](a)
		if err != nil {
			return core.NotFound, err
		}
		got := fn(text, pattern)
		if i == 0 {
			want = got
			continue
		}
		if got != want {
			return core.NotFound, fmt.Errorf("%w: %s=%d, %s=%d", ErrMismatch, All()[0], want, a, got)
		}
	}

	return want, nil
}

// Index prepares text and pattern according to opts and runs algorithm a on
// them, in the configured units.
//
// With WithFoldCase or WithNFC the offset points into the prepared text, not
// into the caller's original: folding and normalisation can change lengths
// ("ﬁ" is 3 bytes, its fold "fi" is 2). Map it back yourself if needed.
//
// Errors: ErrUnknownAlgorithm, ErrUnknownUnits.
func Index(a Algorithm, text, pattern string, opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	text, pattern = Prepare(text, cfg), Prepare(pattern, cfg)

	switch cfg.Units {
	case Bytes:
		fn, err := Func[byte](a)
		if err != nil {
			return core.NotFound, err
		}
		return fn([]byte(text), []byte(pattern)), nil
	case Runes:
		fn, err := Func[rune](a)
		if err != nil {
			return core.NotFound, err
		}
		return fn([]rune(text), []rune(pattern)), nil
	default:
		return core.NotFound, fmt.Errorf("%w: %d", ErrUnknownUnits, int(cfg.Units))
	}
}
