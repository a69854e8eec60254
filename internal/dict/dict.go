// Package dict provides the Solresol dictionary: canonical spellings
// mapped to comma-separated human-language definitions. The codec never
// consults it; translation is a view built on top of parsed phrases, with
// the dictionary passed in explicitly.
package dict

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ferrolis/solresol/internal/sol"
)

// ErrNotFound is returned when a spelling has no dictionary entry.
var ErrNotFound = errors.New("word not found in dictionary")

// Dictionary looks up definitions by canonical full-text spelling.
// Implementations are read-only after loading and safe for concurrent use.
type Dictionary interface {
	// Lookup returns the comma-separated definitions for a spelling, or
	// an error wrapping ErrNotFound.
	Lookup(spelling string) (string, error)

	// Size returns the number of entries.
	Size() int
}

// TranslateOptions selects which definition of each word a translation
// uses.
type TranslateOptions struct {
	// All annotates every word with its complete definition list instead
	// of picking one.
	All bool

	// Random picks a random alternative per word. Overrides Index.
	Random bool

	// Index picks the definition at this position, clamped to the last
	// alternative when a word has fewer.
	Index int
}

// Translate renders a phrase as a human-language gloss, one definition per
// word. An unknown word fails the whole translation.
func Translate(p sol.Phrase, d Dictionary, opts TranslateOptions) (string, error) {
	parts := make([]string, 0, p.Len())
	for _, w := range p.Words() {
		spelling := w.String()
		defs, err := d.Lookup(spelling)
		if err != nil {
			return "", fmt.Errorf("translating %q: %w", spelling, err)
		}
		if opts.All {
			parts = append(parts, fmt.Sprintf("%s: (%s)", spelling, defs))
			continue
		}
		alts := strings.Split(defs, ",")
		ix := opts.Index
		switch {
		case opts.Random:
			ix = rand.IntN(len(alts))
		case ix < 0:
			ix = 0
		case ix >= len(alts):
			ix = len(alts) - 1
		}
		parts = append(parts, strings.TrimSpace(alts[ix]))
	}
	return strings.Join(parts, " "), nil
}
