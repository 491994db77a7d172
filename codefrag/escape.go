package codefrag

import (
	"fmt"
	"strconv"
	"strings"
)

// EscapedValue is one parameter value rendered two ways.
//
// Escaped is safe to embed directly in generated source: for strings it is a
// double-quoted literal with special characters escaped, for null it is the
// dialect's null-literal token. Raw is the value's plain textual form, used
// when the caller marks a parameter as a non-string literal (a numeric or
// boolean constant rather than a string).
type EscapedValue struct {
	Escaped string
	Raw     string
}

// Escape converts a raw parameter value into an EscapedValue.
//
// Value handling:
//   - nil renders as the dialect's null literal, not a quoted empty string.
//   - strings are quoted and escaped per the dialect's escape table.
//   - bool, integer and float values reduce to their canonical text, with
//     Escaped == Raw: escaping rules apply to string content only. Their
//     textual form is assumed free of syntax-breaking characters and is not
//     re-validated.
//   - fmt.Stringer values reduce the same way.
//
// Any other type is an UnsupportedValueError.
func (d Dialect) Escape(value any) (EscapedValue, error) {
	def, ok := d.def()
	if !ok {
		return EscapedValue{}, &UnknownDialectError{Token: d.String()}
	}

	switch v := value.(type) {
	case nil:
		return EscapedValue{Escaped: def.nullLiteral, Raw: def.nullLiteral}, nil
	case string:
		return EscapedValue{Escaped: quote(v, def.escapes), Raw: v}, nil
	case bool:
		return rawValue(strconv.FormatBool(v)), nil
	case int:
		return rawValue(strconv.Itoa(v)), nil
	case int8:
		return rawValue(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return rawValue(strconv.FormatInt(int64(v), 10)), nil
	case int32:
		return rawValue(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return rawValue(strconv.FormatInt(v, 10)), nil
	case uint:
		return rawValue(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return rawValue(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return rawValue(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return rawValue(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return rawValue(strconv.FormatUint(v, 10)), nil
	case float32:
		return rawValue(strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case float64:
		return rawValue(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case fmt.Stringer:
		return rawValue(v.String()), nil
	default:
		return EscapedValue{}, &UnsupportedValueError{GoType: fmt.Sprintf("%T", value)}
	}
}

// rawValue builds an EscapedValue for an already-textual non-string value.
func rawValue(text string) EscapedValue {
	return EscapedValue{Escaped: text, Raw: text}
}

// quote wraps s in double quotes, replacing each character listed in the
// escape table with its escape sequence.
func quote(s string, escapes map[rune]string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		if esc, ok := escapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
