// Package codefrag synthesizes small source-code fragments that declare
// assembly-level attributes, in one of three dialects (cs, vb, fs).
//
// Input is a list of Attribute specifications: an attribute name plus a map
// of metadata keys to raw values. Keys follow two reserved conventions:
//
//   - "_Parameter<N>" supplies the N-th positional argument (1-based).
//     Indices may have gaps; missing slots render as the dialect's null
//     literal.
//   - "<Name>_IsLiteral" = "true" makes the named parameter <Name> emit its
//     raw textual form instead of a quoted string literal (for numeric or
//     boolean constants). Marker entries never appear in output.
//
// Every other key is a named parameter, rendered "name = value" and sorted
// alphabetically for deterministic output.
//
// Synthesize ties it together:
//
//	text, err := codefrag.Synthesize(codefrag.CSharp, []codefrag.Attribute{{
//		Name:   "System.Reflection.AssemblyDescriptionAttribute",
//		Params: map[string]any{"_Parameter1": "built by CI"},
//	}})
//
// which yields the dialect preamble followed by
//
//	[assembly: System.Reflection.AssemblyDescriptionAttribute("built by CI")]
//
// The package is pure computation: no I/O, no shared state, no goroutines.
// Persisting the produced text is the fragment package's job.
package codefrag
