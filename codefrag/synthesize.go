package codefrag

import (
	"fmt"
	"strings"
)

// Attribute is one assembly-level attribute application to synthesize.
//
// Params maps metadata keys to raw values: positional keys use the
// PositionalPrefix convention, literal markers use the LiteralSuffix
// convention, and everything else is a named parameter. Values may be nil
// (the dialect's null literal), strings, or any type Escape can reduce to
// text. Map semantics make keys unique; supply order is irrelevant.
type Attribute struct {
	Name   string
	Params map[string]any
}

// Synthesize produces the full text of a generated source unit declaring
// the given attributes, in input order, for one dialect.
//
// The result is the dialect preamble, one attribute-application line per
// specification, and the dialect trailer if it has one. Any failure aborts
// the whole request and returns an empty string: a partial unit would
// compile (or worse, half-compile) with attributes silently missing, so
// errors are never downgraded to per-attribute skips. Errors carry the
// offending attribute name and parameter key.
//
// Synthesize is a pure function of its input and is safe to call
// concurrently for independent inputs.
func Synthesize(d Dialect, attrs []Attribute) (string, error) {
	if _, ok := d.def(); !ok {
		return "", &UnknownDialectError{Token: d.String()}
	}

	var b strings.Builder
	b.WriteString(d.Preamble())

	for _, attr := range attrs {
		positional, named, err := d.Classify(attr.Params)
		if err != nil {
			return "", fmt.Errorf("attribute %q: %w", attr.Name, err)
		}
		b.WriteString(d.Render(attr.Name, d.Assemble(positional, named)))
		b.WriteByte('\n')
	}

	if trailer := d.Trailer(); trailer != "" {
		b.WriteString(trailer)
	}
	return b.String(), nil
}
