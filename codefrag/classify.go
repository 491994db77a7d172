package codefrag

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Reserved metadata key affixes.
const (
	// PositionalPrefix marks a positional parameter key. The remainder of
	// the key is the parameter's 1-based index, e.g. "_Parameter1".
	PositionalPrefix = "_Parameter"

	// LiteralSuffix marks a companion entry requesting raw emission for its
	// base key: "Count_IsLiteral" = "true" makes the "Count" parameter emit
	// its unquoted textual form. Marker entries themselves are never emitted.
	LiteralSuffix = "_IsLiteral"
)

// maxPositionalIndex caps how far apart positional indices may sit. The
// assembler allocates one slot per index up to the maximum seen, so an
// absurd index would turn a one-line attribute into a giant allocation.
// No real attribute has anywhere near this many parameters.
const maxPositionalIndex = 1 << 16

// PositionalParameter is an argument identified by a 1-based ordinal index.
type PositionalParameter struct {
	Index int
	Value EscapedValue
}

// NamedParameter is an argument identified by name, rendered as "name = value".
type NamedParameter struct {
	Name      string
	Value     EscapedValue
	IsLiteral bool
}

// Classify partitions one attribute's metadata entries into positional and
// named parameters.
//
// Keys starting with PositionalPrefix are positional; their index suffix must
// parse as a positive integer no greater than maxPositionalIndex, or the
// whole request fails with a MalformedIndexError (a malformed key means the
// input source is unreliable, so nothing is skipped). Keys ending with LiteralSuffix are literal markers:
// a marker whose value is exactly "true" or "True" flags the base key's
// parameter, and every marker is discarded regardless of its value. Prefix
// classification runs first, so a key carrying both affixes fails index
// parsing rather than acting as a marker.
//
// Named parameters are returned sorted ascending by name. The ordering is a
// contract: it keeps generated output deterministic and reviewable.
func (d Dialect) Classify(entries map[string]any) ([]PositionalParameter, []NamedParameter, error) {
	if _, ok := d.def(); !ok {
		return nil, nil, &UnknownDialectError{Token: d.String()}
	}

	// Sorted traversal so the first error surfaced is deterministic too.
	keys := slices.Sorted(maps.Keys(entries))

	literal := make(map[string]bool)
	var positional []PositionalParameter
	var named []NamedParameter

	for _, key := range keys {
		if suffix, ok := strings.CutPrefix(key, PositionalPrefix); ok {
			index, err := strconv.Atoi(suffix)
			if err != nil || index < 1 || index > maxPositionalIndex {
				return nil, nil, &MalformedIndexError{Key: key}
			}
			value, err := d.Escape(entries[key])
			if err != nil {
				return nil, nil, fmt.Errorf("parameter %q: %w", key, err)
			}
			positional = append(positional, PositionalParameter{Index: index, Value: value})
			continue
		}

		if base, ok := strings.CutSuffix(key, LiteralSuffix); ok {
			if v, isString := entries[key].(string); isString && (v == "true" || v == "True") {
				literal[base] = true
			}
			continue
		}

		value, err := d.Escape(entries[key])
		if err != nil {
			return nil, nil, fmt.Errorf("parameter %q: %w", key, err)
		}
		named = append(named, NamedParameter{Name: key, Value: value})
	}

	for i := range named {
		named[i].IsLiteral = literal[named[i].Name]
	}
	slices.SortFunc(named, func(a, b NamedParameter) int {
		return strings.Compare(a.Name, b.Name)
	})

	return positional, named, nil
}
