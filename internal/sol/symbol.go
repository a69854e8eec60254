// Package sol implements the Solresol codec: the seven-note solfège
// alphabet, word and phrase parsing across the surface syntaxes (full
// spelling, "ses" phonetic transliteration, numeric), and the packed
// base-8 integer encoding with its round-trip guarantees.
//
// Everything in this package is pure and immutable: symbols are shared
// process-wide constants, words and phrases never change after
// construction, and no operation performs I/O. Values may be shared
// freely across goroutines.
package sol

import (
	"fmt"
	"math"
)

// Symbol is one of the seven notes of the Solresol alphabet, ordinally
// numbered 1 through 7.
type Symbol int

const (
	Do Symbol = iota + 1
	Re
	Mi
	Fa
	Sol
	La
	Si
)

// NumSymbols is the size of the alphabet.
const NumSymbols = 7

var (
	names      = [NumSymbols]string{"do", "re", "mi", "fa", "sol", "la", "si"}
	shortNames = [NumSymbols]byte{'d', 'r', 'm', 'f', 's', 'l', 't'}
	consonants = [NumSymbols]byte{'p', 'k', 'm', 'f', 's', 'l', 't'}
	vowels     = [NumSymbols]string{"o", "e", "i", "a", "u", "ai", "au"}

	// Equal-tempered C major at octave 4 (C4..B4).
	frequencies = [NumSymbols]float64{261.63, 293.66, 329.63, 349.23, 392.00, 440.00, 493.88}
)

// ReferenceOctave is the octave the frequency table is defined at.
const ReferenceOctave = 4

// Valid reports whether s is one of the seven alphabet symbols.
func (s Symbol) Valid() bool { return s >= Do && s <= Si }

// Value returns the canonical ordinal 1..7.
func (s Symbol) Value() int { return int(s) }

// Name returns the canonical lowercase spelling ("do" .. "si").
func (s Symbol) Name() string { return names[s-1] }

// ShortName returns the one-letter solfège abbreviation.
func (s Symbol) ShortName() byte { return shortNames[s-1] }

// Consonant returns the ses consonant letter.
func (s Symbol) Consonant() byte { return consonants[s-1] }

// Vowel returns the ses vowel. La and Si use the digraphs "ai" and "au";
// the rest are single letters.
func (s Symbol) Vowel() string { return vowels[s-1] }

// Freq returns the symbol's tone frequency at the given octave. The audio
// collaborator is the only consumer; the codec itself never touches it.
func (s Symbol) Freq(octave int) float64 {
	return frequencies[s-1] * math.Ldexp(1, octave-ReferenceOctave)
}

func (s Symbol) String() string { return s.Name() }

// SymbolFromValue resolves an ordinal to its symbol. Values outside 1..7
// fail with ErrValueOutOfRange.
func SymbolFromValue(n int) (Symbol, error) {
	if n < 1 || n > NumSymbols {
		return 0, fmt.Errorf("%w: %d", ErrValueOutOfRange, n)
	}
	return Symbol(n), nil
}

// Syntax selects one of the surface forms the codec can read and write.
type Syntax int

const (
	// SyntaxFull is the long-form spelling, e.g. "dodomi".
	SyntaxFull Syntax = iota
	// SyntaxSes is the consonant/vowel phonetic transliteration.
	SyntaxSes
	// SyntaxNumeric is the digit string of symbol ordinals.
	SyntaxNumeric
)

// ParseSyntax maps the user-facing syntax names (and their historical
// shorthands) to a Syntax.
func ParseSyntax(s string) (Syntax, error) {
	switch s {
	case "full", "default", "":
		return SyntaxFull, nil
	case "ses", "s":
		return SyntaxSes, nil
	case "num", "numeric", "#":
		return SyntaxNumeric, nil
	}
	return 0, fmt.Errorf("unknown syntax %q (want full, ses or num)", s)
}

func (sy Syntax) String() string {
	switch sy {
	case SyntaxFull:
		return "full"
	case SyntaxSes:
		return "ses"
	case SyntaxNumeric:
		return "num"
	}
	return fmt.Sprintf("Syntax(%d)", int(sy))
}

// fullAliases resolves case-preserved long, short and single-letter
// spellings. Single-letter forms are only reachable through
// WordFromNames; the full-text scanner always consumes two or three
// characters at a time.
var fullAliases = map[string]Symbol{
	"DO": Do, "Do": Do, "do": Do, "D": Do, "d": Do,
	"RE": Re, "Re": Re, "re": Re, "R": Re, "r": Re,
	"MI": Mi, "Mi": Mi, "mi": Mi, "M": Mi, "m": Mi,
	"FA": Fa, "Fa": Fa, "fa": Fa, "F": Fa, "f": Fa,
	"SOL": Sol, "Sol": Sol, "sol": Sol, "So": Sol, "so": Sol, "S": Sol, "s": Sol,
	"LA": La, "La": La, "la": La, "L": La, "l": La,
	"SI": Si, "Si": Si, "si": Si, "TI": Si, "Ti": Si, "ti": Si, "T": Si, "t": Si,
}

// sesAliases resolves single ses letters, consonant or vowel. The vowel
// digraphs "ai" and "au" are rewritten to the La and Si consonant letters
// before per-character lookup, so they never appear here.
var sesAliases = map[byte]Symbol{
	'p': Do, 'o': Do,
	'k': Re, 'e': Re,
	'm': Mi, 'i': Mi,
	'f': Fa, 'a': Fa,
	's': Sol, 'u': Sol,
	'l': La,
	't': Si,
}

// LookupAlias resolves a spelling in the alias set of the given syntax.
// The tables are disjoint per syntax: "do" only resolves under SyntaxFull,
// "p" only under SyntaxSes, "1" only under SyntaxNumeric. Anything absent
// from the requested scope fails with ErrUnknownAlias.
func LookupAlias(alias string, syntax Syntax) (Symbol, error) {
	switch syntax {
	case SyntaxFull:
		if sym, ok := fullAliases[alias]; ok {
			return sym, nil
		}
	case SyntaxSes:
		if len(alias) == 1 {
			if sym, ok := sesAliases[alias[0]]; ok {
				return sym, nil
			}
		}
		// Digraph vowels arrive intact when a caller looks one up
		// directly rather than through the word parser.
		switch alias {
		case "ai":
			return La, nil
		case "au":
			return Si, nil
		}
	case SyntaxNumeric:
		if len(alias) == 1 && alias[0] >= '1' && alias[0] <= '7' {
			return Symbol(alias[0] - '0'), nil
		}
	}
	return 0, fmt.Errorf("%w: %q in %s syntax", ErrUnknownAlias, alias, syntax)
}
