package codefrag

import (
	"errors"
	"strconv"
)

var (
	// ErrUnknownDialect is returned when a dialect token or value is not one
	// of the supported set. This is a configuration error: synthesis aborts
	// and no output is produced.
	ErrUnknownDialect = errors.New("codefrag: unknown dialect")

	// ErrMalformedIndex is returned when a positional parameter key's suffix
	// does not parse as a positive integer. A malformed key indicates an
	// unreliable input source, so the whole request fails rather than the
	// single attribute being skipped.
	ErrMalformedIndex = errors.New("codefrag: malformed positional parameter index")

	// ErrUnsupportedValue is returned when a parameter value's type cannot be
	// reduced to a textual form.
	ErrUnsupportedValue = errors.New("codefrag: unsupported parameter value type")
)

// UnknownDialectError reports the offending dialect token.
type UnknownDialectError struct{ Token string }

// Error implements the error interface.
func (e *UnknownDialectError) Error() string {
	// Example: codefrag: unknown dialect "kt" (want cs, vb or fs)
	return "codefrag: unknown dialect " + strconv.Quote(e.Token) + " (want cs, vb or fs)"
}

// Unwrap makes the error match ErrUnknownDialect under errors.Is.
func (e *UnknownDialectError) Unwrap() error { return ErrUnknownDialect }

// MalformedIndexError reports a positional parameter key whose index suffix
// is not a positive integer.
type MalformedIndexError struct {
	// Key is the full metadata key, e.g. "_ParameterX".
	Key string
}

// Error implements the error interface.
func (e *MalformedIndexError) Error() string {
	// Example: codefrag: positional parameter key "_ParameterX" has a malformed index
	return "codefrag: positional parameter key " + strconv.Quote(e.Key) + " has a malformed index"
}

// Unwrap makes the error match ErrMalformedIndex under errors.Is.
func (e *MalformedIndexError) Unwrap() error { return ErrMalformedIndex }

// UnsupportedValueError reports a parameter value whose Go type the escaper
// cannot reduce to text.
type UnsupportedValueError struct {
	// GoType is the value's type as formatted by %T.
	GoType string
}

// Error implements the error interface.
func (e *UnsupportedValueError) Error() string {
	// Example: codefrag: unsupported parameter value type ([]string)
	return "codefrag: unsupported parameter value type (" + e.GoType + ")"
}

// Unwrap makes the error match ErrUnsupportedValue under errors.Is.
func (e *UnsupportedValueError) Unwrap() error { return ErrUnsupportedValue }
