package sol

import "errors"

// Parse and encode failures. All of them are caller/input problems; the
// codec is pure and never retries. Wrapped errors keep their cause in the
// chain, so errors.Is works on both the outer and inner sentinel.
var (
	// ErrUnknownAlias is returned when a token or character does not
	// resolve in the alias table of the requested syntax.
	ErrUnknownAlias = errors.New("unknown symbol alias")

	// ErrValueOutOfRange is returned by value lookups outside 1..7.
	ErrValueOutOfRange = errors.New("symbol value out of range")

	// ErrMalformedWord is returned when surface text cannot be segmented
	// into valid symbol tokens, including trailing leftover characters.
	ErrMalformedWord = errors.New("malformed word")

	// ErrMalformedPhrase wraps a word-level failure with the offending
	// token and its position in the phrase.
	ErrMalformedPhrase = errors.New("malformed phrase")

	// ErrInvalidPackedValue is returned when a packed integer contains an
	// octal digit outside 1..7 after leading-zero padding is stripped.
	// Valid data never produces such digits; seeing one means the input
	// is corrupted or out of domain.
	ErrInvalidPackedValue = errors.New("invalid packed value")

	// ErrWordTooLong is returned when a phrase-level packed encoding is
	// attempted on a word longer than the fixed 5-digit chunk width.
	ErrWordTooLong = errors.New("word too long for packed phrase encoding")
)
