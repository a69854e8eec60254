package sol

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPhrase(t *testing.T, wordValues ...[]int) Phrase {
	t.Helper()
	words := make([]Word, len(wordValues))
	for i, values := range wordValues {
		words[i] = mustWord(t, values...)
	}
	return PhraseFromWords(words...)
}

func TestParsePhrase(t *testing.T) {
	for _, tc := range []struct {
		name   string
		in     string
		syntax Syntax
		want   Phrase
	}{
		{
			name:   "three words full",
			in:     "dodomi sol refa",
			syntax: SyntaxFull,
			want:   mustPhrase(t, []int{1, 1, 3}, []int{5}, []int{2, 4}),
		},
		{
			name:   "punctuation stripped",
			in:     "dodomi, sol! (refa?)",
			syntax: SyntaxFull,
			want:   mustPhrase(t, []int{1, 1, 3}, []int{5}, []int{2, 4}),
		},
		{
			name:   "ses",
			in:     "pom u ka",
			syntax: SyntaxSes,
			want:   mustPhrase(t, []int{1, 1, 3}, []int{5}, []int{2, 4}),
		},
		{
			name:   "numeric",
			in:     "113 5 24",
			syntax: SyntaxNumeric,
			want:   mustPhrase(t, []int{1, 1, 3}, []int{5}, []int{2, 4}),
		},
		{
			name:   "empty",
			in:     "  ",
			syntax: SyntaxFull,
			want:   PhraseFromWords(),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePhrase(tc.in, tc.syntax)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(p), "got %q", p)
		})
	}
}

func TestParsePhraseMalformed(t *testing.T) {
	_, err := ParsePhrase("dodomi xx", SyntaxFull)
	assert.ErrorIs(t, err, ErrMalformedPhrase)
	assert.ErrorIs(t, err, ErrMalformedWord)
	assert.Contains(t, err.Error(), "word 2")
	assert.Contains(t, err.Error(), `"xx"`)
}

func TestPhraseViews(t *testing.T) {
	p := mustPhrase(t, []int{1, 1, 3}, []int{5}, []int{2, 4})
	assert.Equal(t, "dodomi sol refa", p.String())
	assert.Equal(t, "pom u ka", p.Ses())
	assert.Equal(t, []uint64{0o113, 0o5, 0o24}, p.Values())
}

// Two words of ordinals [1] and [7 7] pack into the octal digit string
// 00001 00077, read as one base-8 integer.
func TestPhrasePackedScenario(t *testing.T) {
	p := mustPhrase(t, []int{1}, []int{7, 7})

	packed, err := p.Packed()
	require.NoError(t, err)

	digits := packed.Text(8)
	padded := strings.Repeat("0", 10-len(digits)) + digits
	assert.Equal(t, "0000100077", padded)

	back, err := PhraseFromPacked(packed)
	require.NoError(t, err)
	assert.True(t, p.Equal(back), "got %q", back)
}

func TestPhrasePackedCeiling(t *testing.T) {
	ok := mustPhrase(t, []int{1, 2, 3, 4, 5})
	_, err := ok.Packed()
	require.NoError(t, err)

	long := mustPhrase(t, []int{5}, []int{1, 2, 3, 4, 5, 6})
	_, err = long.Packed()
	assert.ErrorIs(t, err, ErrWordTooLong)
}

func TestPhraseFromPackedInvalid(t *testing.T) {
	_, err := PhraseFromPacked(big.NewInt(-5))
	assert.ErrorIs(t, err, ErrInvalidPackedValue)

	// 00100 in the low chunk: a zero digit below the leading symbol.
	_, err = PhraseFromPacked(big.NewInt(0o100))
	assert.ErrorIs(t, err, ErrInvalidPackedValue)
}

func TestPhrasePackedEmpty(t *testing.T) {
	packed, err := PhraseFromWords().Packed()
	require.NoError(t, err)
	assert.Zero(t, packed.Sign())

	p, err := PhraseFromPacked(big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
}

// Any phrase whose words stay within the 5-symbol ceiling round-trips
// through the packed integer form.
func TestPhrasePackedRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		words := make([]Word, 1+rng.Intn(6))
		for j := range words {
			values := make([]int, 1+rng.Intn(MaxPackedWordLen))
			for k := range values {
				values[k] = 1 + rng.Intn(NumSymbols)
			}
			words[j] = mustWord(t, values...)
		}
		p := PhraseFromWords(words...)

		packed, err := p.Packed()
		require.NoError(t, err)
		back, err := PhraseFromPacked(packed)
		require.NoError(t, err)
		assert.True(t, p.Equal(back), "phrase %q packed %s", p, packed)

		// The surface forms round-trip too.
		full, err := ParsePhrase(p.String(), SyntaxFull)
		require.NoError(t, err)
		assert.True(t, p.Equal(full))
		ses, err := ParsePhrase(p.Ses(), SyntaxSes)
		require.NoError(t, err)
		assert.True(t, p.Equal(ses))
	}
}
