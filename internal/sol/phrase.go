package sol

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// phraseChunkDigits is the fixed width of one word inside a packed phrase:
// every word occupies exactly 5 octal digits, left-padded with zeros.
// A word of more than 5 symbols cannot fit and must be rejected, or the
// chunk boundaries of every following word silently shift.
const phraseChunkDigits = 5

// MaxPackedWordLen is the longest word the phrase-level packed encoding
// can carry. Full-text and ses forms are not bounded by it.
const MaxPackedWordLen = phraseChunkDigits

// punctuation is stripped from phrase text before splitting into words.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Phrase is an ordered sequence of words, whitespace-separated in surface
// form. Immutable after construction; a phrase may be empty.
type Phrase struct {
	words []Word
}

// PhraseFromWords builds a phrase from already-parsed words.
func PhraseFromWords(words ...Word) Phrase {
	p := Phrase{words: make([]Word, len(words))}
	copy(p.words, words)
	return p
}

// ParsePhrase strips punctuation, splits the text on whitespace and parses
// every token as a word in the given syntax. A failing token fails the
// whole phrase; no partial result is returned.
func ParsePhrase(text string, syntax Syntax) (Phrase, error) {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)

	var words []Word
	for i, token := range strings.Fields(clean) {
		w, err := ParseWord(token, syntax)
		if err != nil {
			return Phrase{}, fmt.Errorf("%w: word %d %q: %w", ErrMalformedPhrase, i+1, token, err)
		}
		words = append(words, w)
	}
	return Phrase{words: words}, nil
}

// PhraseFromPacked decodes a phrase-level packed integer. The base-8
// rendering is left-padded with zeros to a multiple of 5 digits (integer
// rendering drops the first word's padding) and split into 5-digit chunks,
// each decoded independently as a packed word. Zero decodes to the empty
// phrase, matching what encoding zero words produces.
func PhraseFromPacked(packed *big.Int) (Phrase, error) {
	if packed.Sign() < 0 {
		return Phrase{}, fmt.Errorf("%w: negative value %s", ErrInvalidPackedValue, packed)
	}
	if packed.Sign() == 0 {
		return Phrase{}, nil
	}
	digits := packed.Text(8)
	if pad := len(digits) % phraseChunkDigits; pad != 0 {
		digits = strings.Repeat("0", phraseChunkDigits-pad) + digits
	}
	words := make([]Word, 0, len(digits)/phraseChunkDigits)
	for i := 0; i < len(digits); i += phraseChunkDigits {
		chunk, err := strconv.ParseUint(digits[i:i+phraseChunkDigits], 8, 64)
		if err != nil {
			return Phrase{}, fmt.Errorf("%w: chunk %q: %v", ErrInvalidPackedValue, digits[i:i+phraseChunkDigits], err)
		}
		w, err := WordFromPacked(chunk)
		if err != nil {
			return Phrase{}, fmt.Errorf("word %d: %w", i/phraseChunkDigits+1, err)
		}
		words = append(words, w)
	}
	return Phrase{words: words}, nil
}

// Len returns the number of words.
func (p Phrase) Len() int { return len(p.words) }

// At returns the word at position i.
func (p Phrase) At(i int) Word { return p.words[i] }

// Words returns a copy of the word sequence.
func (p Phrase) Words() []Word {
	out := make([]Word, len(p.words))
	copy(out, p.words)
	return out
}

// Equal reports whether two phrases contain the same words in order.
func (p Phrase) Equal(other Phrase) bool {
	if len(p.words) != len(other.words) {
		return false
	}
	for i, w := range p.words {
		if !w.Equal(other.words[i]) {
			return false
		}
	}
	return true
}

// String returns the space-joined full-text spelling.
func (p Phrase) String() string {
	parts := make([]string, len(p.words))
	for i, w := range p.words {
		parts[i] = w.String()
	}
	return strings.Join(parts, " ")
}

// Ses returns the space-joined phonetic form.
func (p Phrase) Ses() string {
	parts := make([]string, len(p.words))
	for i, w := range p.words {
		parts[i] = w.Ses()
	}
	return strings.Join(parts, " ")
}

// Values returns the per-word packed values.
func (p Phrase) Values() []uint64 {
	out := make([]uint64, len(p.words))
	for i, w := range p.words {
		out[i] = w.Packed()
	}
	return out
}

// Packed encodes the whole phrase as one base-8 integer: each word's
// packed value rendered in octal, left-padded to exactly 5 digits, chunks
// concatenated in word order. Words longer than MaxPackedWordLen fail with
// ErrWordTooLong rather than silently corrupting the chunk alignment.
func (p Phrase) Packed() (*big.Int, error) {
	var b strings.Builder
	for i, w := range p.words {
		if w.Len() > MaxPackedWordLen {
			return nil, fmt.Errorf("%w: word %d %q has %d symbols (max %d)",
				ErrWordTooLong, i+1, w, w.Len(), MaxPackedWordLen)
		}
		digits := strconv.FormatUint(w.Packed(), 8)
		b.WriteString(strings.Repeat("0", phraseChunkDigits-len(digits)))
		b.WriteString(digits)
	}
	if b.Len() == 0 {
		return big.NewInt(0), nil
	}
	v, ok := new(big.Int).SetString(b.String(), 8)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackedValue, b.String())
	}
	return v, nil
}
