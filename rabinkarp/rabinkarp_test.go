package rabinkarp_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/rabinkarp"
)

// TestHash_Known checks hash values against hand-computed references
// (base 256, modulus 101).
func TestHash_Known(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"GEEK", 27},
		{"EEKS", 46},
		{"abc", 90},
		{"a", 97},
		{"", 0},
	}
	for _, tc := range cases {
		got, err := rabinkarp.Hash([]byte(tc.in))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "hash(%q)", tc.in)
	}

	got, err := rabinkarp.Hash([]rune("пошук"))
	require.NoError(t, err)
	assert.Equal(t, int64(56), got, "code points hash by their value")
}

// TestHash_BadOptions verifies parameter validation.
func TestHash_BadOptions(t *testing.T) {
	_, err := rabinkarp.Hash([]byte("a"), rabinkarp.WithBase(0))
	assert.ErrorIs(t, err, rabinkarp.ErrBadBase)

	_, err = rabinkarp.Hash([]byte("a"), rabinkarp.WithBase(rabinkarp.MaxBase+1))
	assert.ErrorIs(t, err, rabinkarp.ErrBadBase)

	_, err = rabinkarp.Hash([]byte("a"), rabinkarp.WithModulus(1))
	assert.ErrorIs(t, err, rabinkarp.ErrBadModulus)

	_, err = rabinkarp.Hash([]byte("a"), rabinkarp.WithModulus(-101))
	assert.ErrorIs(t, err, rabinkarp.ErrBadModulus)
}

// TestPowMod covers the exponent corner cases.
func TestPowMod(t *testing.T) {
	assert.Equal(t, int64(5), rabinkarp.PowMod(256, 3, 101))
	assert.Equal(t, int64(24), rabinkarp.PowMod(2, 10, 1000))
	assert.Equal(t, int64(1), rabinkarp.PowMod(7, 0, 13))
	assert.Equal(t, int64(1), rabinkarp.PowMod(7, -3, 13), "negative exponent acts as 0")
	assert.Equal(t, int64(0), rabinkarp.PowMod(13, 5, 13))
}

// TestWindow_RollMatchesRecompute is the rolling-hash law: after every slide
// Sum equals Hash recomputed over the new window.
func TestWindow_RollMatchesRecompute(t *testing.T) {
	params := [][2]int64{
		{256, 101},
		{31, 1_000_000_007},
		{2, 2},
		{1, 97},
		{rabinkarp.MaxBase, rabinkarp.MaxModulus},
	}
	rng := rand.New(rand.NewSource(5))
	text := make([]rune, 200)
	for i := range text {
		text[i] = rune(rng.Intn(0x10FFFF))
	}

	for _, p := range params {
		opts := []rabinkarp.Option{rabinkarp.WithBase(p[0]), rabinkarp.WithModulus(p[1])}
		for _, m := range []int{1, 3, 17} {
			w, err := rabinkarp.NewWindow(text[:m], opts...)
			require.NoError(t, err)
			assert.Equal(t, m, w.Len())
			for i := 0; i+m < len(text); i++ {
				got := w.Roll(text[i], text[i+m])
				want, err := rabinkarp.Hash(text[i+1:i+1+m], opts...)
				require.NoError(t, err)
				require.Equal(t, want, got, "base=%d mod=%d m=%d i=%d", p[0], p[1], m, i)
				require.GreaterOrEqual(t, got, int64(0))
				require.Less(t, got, p[1])
			}
		}
	}
}

// TestNewWindow_Errors covers the constructor's validation.
func TestNewWindow_Errors(t *testing.T) {
	_, err := rabinkarp.NewWindow([]byte{})
	assert.ErrorIs(t, err, rabinkarp.ErrEmptyWindow)

	_, err = rabinkarp.NewWindow([]byte("ab"), rabinkarp.WithModulus(0))
	assert.ErrorIs(t, err, rabinkarp.ErrBadModulus)
}

// TestSearch_Known covers the reference examples.
func TestSearch_Known(t *testing.T) {
	assert.Equal(t, 0, rabinkarp.SearchString("GEEKS FOR GEEKS", "GEEK"))
	assert.Equal(t, 6, rabinkarp.SearchString("abxabcabcaby", "abcaby"))
	assert.Equal(t, 17, rabinkarp.SearchString("HERE IS A SIMPLE EXAMPLE", "EXAMPLE"))
	assert.Equal(t, 4, rabinkarp.SearchString("FOR GEEKS", "GEEKS"), "match in the last window")
	assert.Equal(t, core.NotFound, rabinkarp.SearchString("GEEKS FOR GEEKS", "GEEKZ"))
}

// TestSearch_EdgeCases pins the empty and oversize conventions.
func TestSearch_EdgeCases(t *testing.T) {
	assert.Equal(t, 0, rabinkarp.SearchString("", ""))
	assert.Equal(t, 0, rabinkarp.SearchString("abc", ""))
	assert.Equal(t, core.NotFound, rabinkarp.SearchString("", "a"))
	assert.Equal(t, core.NotFound, rabinkarp.SearchString("ab", "abc"))
	assert.Equal(t, 0, rabinkarp.SearchString("abc", "abc"))
	assert.Equal(t, 2, rabinkarp.SearchString("abc", "c"))
}

// TestSearch_Collisions forces constant collisions with modulus 2 and checks
// results still agree with strings.Index.
func TestSearch_Collisions(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for iter := 0; iter < 300; iter++ {
		text := randomString(rng, rng.Intn(50), "ab")
		pattern := randomString(rng, 1+rng.Intn(4), "ab")
		got, err := rabinkarp.SearchWithOptions([]byte(text), []byte(pattern), rabinkarp.WithModulus(2))
		require.NoError(t, err)
		assert.Equal(t, strings.Index(text, pattern), got, "text=%q pattern=%q", text, pattern)
	}
}

// TestSearch_MatchesStdlib compares default-parameter search with strings.Index.
func TestSearch_MatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for iter := 0; iter < 500; iter++ {
		text := randomString(rng, rng.Intn(80), "abcd")
		pattern := randomString(rng, 1+rng.Intn(6), "abcd")
		assert.Equal(t, strings.Index(text, pattern), rabinkarp.SearchString(text, pattern),
			"text=%q pattern=%q", text, pattern)
	}
}

// TestSearchWithOptions_BadOptions returns NotFound with the error.
func TestSearchWithOptions_BadOptions(t *testing.T) {
	idx, err := rabinkarp.SearchWithOptions([]byte("abc"), []byte("b"), rabinkarp.WithBase(-1))
	assert.ErrorIs(t, err, rabinkarp.ErrBadBase)
	assert.Equal(t, core.NotFound, idx)
}

// TestSearch_Runes checks code-point offsets.
func TestSearch_Runes(t *testing.T) {
	text := []rune("алгоритми пошуку: пошук")
	assert.Equal(t, 10, rabinkarp.Search(text, []rune("пошук")))
}

func randomString(rng *rand.Rand, n int, alphabet string) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return sb.String()
}
