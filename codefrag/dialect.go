package codefrag

import (
	"fmt"
	"strings"
)

// Dialect selects the source-syntax family of a generated fragment.
//
// The set is closed: every dialect carries its own string-escape table,
// null-literal token, attribute wrapper, file preamble and optional trailer,
// so adding a dialect means adding one entry to dialectDefs and nothing else.
type Dialect int

const (
	// CSharp emits [assembly: Name(args)] attribute lists.
	CSharp Dialect = iota

	// VisualBasic emits <Assembly: Name(args)> attribute lists.
	VisualBasic

	// FSharp emits [<assembly: Name(args)>] attribute lists. An attribute
	// list is not a valid compilation unit on its own in this dialect, so
	// the trailer appends a no-op do() binding.
	FSharp
)

// dialectDef is the fixed vocabulary of one dialect.
type dialectDef struct {
	token       string
	extension   string
	nullLiteral string
	escapes     map[rune]string
	attrFormat  string // fmt format with two %s verbs: name, args
	preamble    string
	trailer     string // empty when the dialect needs none
}

// stringEscapes maps characters that may not appear raw inside a quoted
// string literal to their escape sequences. All three dialects currently
// share the same table contents; each dialectDef still carries its own
// reference so a dialect with different rules can diverge.
var stringEscapes = map[rune]string{
	'\n':   `\n`,
	'\r':   `\r`,
	'\t':   `\t`,
	'\'':   `\'`,
	'\\':   `\\`,
	'"':    `\"`,
	'\x00': `\0`,
}

const generatedHeaderSlash = `// <auto-generated>
//     This code was generated by a tool.
//     Changes to this file will be lost if the code is regenerated.
// </auto-generated>
`

const generatedHeaderTick = `' <auto-generated>
'     This code was generated by a tool.
'     Changes to this file will be lost if the code is regenerated.
' </auto-generated>
`

var dialectDefs = [...]dialectDef{
	CSharp: {
		token:       "cs",
		extension:   ".cs",
		nullLiteral: "null",
		escapes:     stringEscapes,
		attrFormat:  "[assembly: %s(%s)]",
		preamble: generatedHeaderSlash + `
using System;
using System.Reflection;

`,
	},
	VisualBasic: {
		token:       "vb",
		extension:   ".vb",
		nullLiteral: "Nothing",
		escapes:     stringEscapes,
		attrFormat:  "<Assembly: %s(%s)>",
		preamble: generatedHeaderTick + `
Option Strict Off
Option Explicit On

Imports System
Imports System.Reflection

`,
	},
	FSharp: {
		token:       "fs",
		extension:   ".fs",
		nullLiteral: "null",
		escapes:     stringEscapes,
		attrFormat:  "[<assembly: %s(%s)>]",
		preamble: generatedHeaderSlash + `
namespace FSharp

open System
open System.Reflection

`,
		trailer: "do()\n",
	},
}

// ParseDialect resolves one of the three dialect tokens ("cs", "vb", "fs",
// case-insensitive). Unknown tokens are a configuration error, never a
// silent default.
func ParseDialect(token string) (Dialect, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	for d, def := range dialectDefs {
		if def.token == normalized {
			return Dialect(d), nil
		}
	}
	return 0, &UnknownDialectError{Token: token}
}

// def returns the dialect's definition, or ok == false for values outside
// the closed set (e.g. a zero-initialized struct field cast from bad input).
func (d Dialect) def() (dialectDef, bool) {
	if d < 0 || int(d) >= len(dialectDefs) {
		return dialectDef{}, false
	}
	return dialectDefs[d], true
}

// mustDef is for accessors whose callers have already validated d.
func (d Dialect) mustDef() dialectDef {
	def, ok := d.def()
	if !ok {
		panic(fmt.Errorf("codefrag: invalid dialect value %d", int(d)))
	}
	return def
}

// String returns the dialect's short token, e.g. "cs".
func (d Dialect) String() string {
	if def, ok := d.def(); ok {
		return def.token
	}
	return fmt.Sprintf("dialect(%d)", int(d))
}

// Extension returns the conventional file extension for generated units,
// including the leading dot.
func (d Dialect) Extension() string { return d.mustDef().extension }

// NullLiteral returns the dialect's textual representation of "no value".
// It fills unset positional argument slots and renders null parameter values.
func (d Dialect) NullLiteral() string { return d.mustDef().nullLiteral }

// Preamble returns the fixed header emitted before any attribute line:
// an auto-generated marker comment plus the top-of-file declarations the
// dialect needs for a standalone compilation unit.
func (d Dialect) Preamble() string { return d.mustDef().preamble }

// Trailer returns the statement required after the attribute list to keep
// the generated unit valid, or "" when the dialect needs none.
func (d Dialect) Trailer() string { return d.mustDef().trailer }

// Render wraps an attribute name and its assembled argument text in the
// dialect's attribute-application syntax. Zero arguments still render the
// parentheses: Description("") vs Description().
func (d Dialect) Render(attributeName, argsText string) string {
	return fmt.Sprintf(d.mustDef().attrFormat, attributeName, argsText)
}
