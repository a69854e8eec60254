package sol

import (
	"fmt"
	"strconv"
	"strings"
)

// Word is an ordered, non-empty sequence of symbols, the smallest
// independently encodable unit of the language. A Word is immutable after
// construction; accessors never expose the underlying slice for writing.
type Word struct {
	syms []Symbol
}

// NewWord builds a word from symbols. At least one symbol is required and
// every symbol must belong to the alphabet.
func NewWord(syms ...Symbol) (Word, error) {
	if len(syms) == 0 {
		return Word{}, fmt.Errorf("%w: empty word", ErrMalformedWord)
	}
	for _, s := range syms {
		if !s.Valid() {
			return Word{}, fmt.Errorf("%w: %d", ErrValueOutOfRange, int(s))
		}
	}
	w := Word{syms: make([]Symbol, len(syms))}
	copy(w.syms, syms)
	return w, nil
}

// WordFromValues builds a word from symbol ordinals.
func WordFromValues(values []int) (Word, error) {
	syms := make([]Symbol, 0, len(values))
	for _, v := range values {
		sym, err := SymbolFromValue(v)
		if err != nil {
			return Word{}, err
		}
		syms = append(syms, sym)
	}
	return NewWord(syms...)
}

// WordFromNames builds a word from per-symbol name strings, resolved in
// the full alias scope. Unlike the full-text scanner, this path accepts
// single-letter aliases such as "d" or "t", because each element names
// exactly one symbol.
func WordFromNames(names []string) (Word, error) {
	syms := make([]Symbol, 0, len(names))
	for _, name := range names {
		sym, err := LookupAlias(name, SyntaxFull)
		if err != nil {
			return Word{}, fmt.Errorf("%w: %w", ErrMalformedWord, err)
		}
		syms = append(syms, sym)
	}
	return NewWord(syms...)
}

// ParseWord parses a single word from surface text in the given syntax.
func ParseWord(text string, syntax Syntax) (Word, error) {
	var (
		syms []Symbol
		err  error
	)
	switch syntax {
	case SyntaxFull:
		syms, err = scanFull(text)
	case SyntaxSes:
		syms, err = scanSes(text)
	case SyntaxNumeric:
		syms, err = scanNumeric(text)
	default:
		err = fmt.Errorf("unknown syntax %v", syntax)
	}
	if err != nil {
		return Word{}, err
	}
	return NewWord(syms...)
}

// scanFull tokenizes long-form spelling left to right. "sol" needs three
// characters because its two-letter form "so" is a prefix of "sola..."
// spellings where "so" + "la" is meant; the scanner takes the three-letter
// reading only when the text does not continue "sola". Every other symbol
// consumes exactly two characters, case-preserved.
func scanFull(text string) ([]Symbol, error) {
	var syms []Symbol
	rest := text
	for len(rest) > 0 {
		low := strings.ToLower(rest)
		if strings.HasPrefix(low, "sol") && !strings.HasPrefix(low, "sola") {
			syms = append(syms, Sol)
			rest = rest[3:]
			continue
		}
		if len(rest) < 2 {
			return nil, fmt.Errorf("%w: trailing %q in %q", ErrMalformedWord, rest, text)
		}
		sym, err := LookupAlias(rest[:2], SyntaxFull)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q: %w", ErrMalformedWord, rest[:2], text, err)
		}
		syms = append(syms, sym)
		rest = rest[2:]
	}
	return syms, nil
}

var sesDigraphs = strings.NewReplacer("ai", "l", "au", "t")

// scanSes resolves one ses letter per symbol. The vowel digraphs "ai" (La)
// and "au" (Si) are first rewritten to those symbols' consonant letters so
// the remaining characters map one-to-one.
func scanSes(text string) ([]Symbol, error) {
	flat := sesDigraphs.Replace(text)
	syms := make([]Symbol, 0, len(flat))
	for i := 0; i < len(flat); i++ {
		sym, err := LookupAlias(flat[i:i+1], SyntaxSes)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q: %w", ErrMalformedWord, flat[i:i+1], text, err)
		}
		syms = append(syms, sym)
	}
	return syms, nil
}

// scanNumeric resolves one ordinal digit per symbol. Leading zeros encode
// fixed-width padding, not data, and are stripped first.
func scanNumeric(text string) ([]Symbol, error) {
	trimmed := strings.TrimLeft(text, "0")
	if trimmed == "" {
		return nil, fmt.Errorf("%w: no digits in %q", ErrMalformedWord, text)
	}
	syms := make([]Symbol, 0, len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		sym, err := LookupAlias(trimmed[i:i+1], SyntaxNumeric)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q: %w", ErrMalformedWord, trimmed[i:i+1], text, err)
		}
		syms = append(syms, sym)
	}
	return syms, nil
}

// WordFromPacked decodes a base-8 packed value back into a word. Leading
// zero digits are padding and are stripped; a zero digit anywhere else, or
// a value with no nonzero digits at all, fails with ErrInvalidPackedValue
// since symbol ordinals are 1..7 and can never produce one.
func WordFromPacked(packed uint64) (Word, error) {
	digits := strings.TrimLeft(strconv.FormatUint(packed, 8), "0")
	if digits == "" {
		return Word{}, fmt.Errorf("%w: %d has no symbol digits", ErrInvalidPackedValue, packed)
	}
	syms := make([]Symbol, 0, len(digits))
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if d == 0 {
			return Word{}, fmt.Errorf("%w: zero digit inside %#o", ErrInvalidPackedValue, packed)
		}
		syms = append(syms, Symbol(d))
	}
	return NewWord(syms...)
}

// Len returns the number of symbols.
func (w Word) Len() int { return len(w.syms) }

// At returns the symbol at position i.
func (w Word) At(i int) Symbol { return w.syms[i] }

// Symbols returns a copy of the symbol sequence.
func (w Word) Symbols() []Symbol {
	out := make([]Symbol, len(w.syms))
	copy(out, w.syms)
	return out
}

// Equal reports whether two words spell the same symbol sequence.
func (w Word) Equal(other Word) bool {
	if len(w.syms) != len(other.syms) {
		return false
	}
	for i, s := range w.syms {
		if other.syms[i] != s {
			return false
		}
	}
	return true
}

// String returns the canonical full-text spelling, lowercase. Sol is the
// only three-letter form; the rest spell with two letters.
func (w Word) String() string {
	var b strings.Builder
	for _, s := range w.syms {
		b.WriteString(s.Name())
	}
	return b.String()
}

// Ses returns the phonetic transliteration. A single-symbol word has no
// leading consonant and is spelled as the bare vowel; longer words
// alternate consonant at even positions and vowel at odd ones.
func (w Word) Ses() string {
	if len(w.syms) == 1 {
		return w.syms[0].Vowel()
	}
	var b strings.Builder
	for i, s := range w.syms {
		if i%2 == 0 {
			b.WriteByte(s.Consonant())
		} else {
			b.WriteString(s.Vowel())
		}
	}
	return b.String()
}

// Digits returns the symbol ordinals as a digit string.
func (w Word) Digits() string {
	b := make([]byte, len(w.syms))
	for i, s := range w.syms {
		b[i] = byte('0' + s.Value())
	}
	return string(b)
}

// Packed returns the digit string read as a base-8 integer. Ordinals are
// 1..7, all valid octal digits, so the packing is lossless at any length:
// WordFromPacked(w.Packed()) always reproduces w.
func (w Word) Packed() uint64 {
	var v uint64
	for _, s := range w.syms {
		v = v*8 + uint64(s.Value())
	}
	return v
}
