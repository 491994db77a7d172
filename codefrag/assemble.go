package codefrag

import (
	"slices"
	"strings"
)

// Assemble builds the combined argument text from classified parameters.
//
// Positional parameters are laid out by ascending index into a slot sequence
// sized to the maximum index seen; indices need not be contiguous, and any
// unfilled slot renders as the dialect's null literal. Named parameters
// follow in the order Classify produced (ascending by name), each rendered
// as "name = value" with the raw form when the parameter is marked literal.
//
// Positional text always precedes named text: the target dialects' call
// syntax rejects a positional argument after a named one.
func (d Dialect) Assemble(positional []PositionalParameter, named []NamedParameter) string {
	def := d.mustDef()

	var posText string
	if len(positional) > 0 {
		ordered := slices.Clone(positional)
		slices.SortFunc(ordered, func(a, b PositionalParameter) int {
			return a.Index - b.Index
		})

		maxIndex := ordered[len(ordered)-1].Index
		slots := make([]string, maxIndex)
		for i := range slots {
			slots[i] = def.nullLiteral
		}
		for _, p := range ordered {
			slots[p.Index-1] = p.Value.Escaped
		}
		posText = strings.Join(slots, ", ")
	}

	parts := make([]string, 0, len(named))
	for _, p := range named {
		value := p.Value.Escaped
		if p.IsLiteral {
			value = p.Value.Raw
		}
		parts = append(parts, p.Name+" = "+value)
	}
	namedText := strings.Join(parts, ", ")

	switch {
	case posText == "":
		return namedText
	case namedText == "":
		return posText
	default:
		return posText + ", " + namedText
	}
}
