// Command codefrag synthesizes assembly-attribute source fragments from a
// YAML manifest.
//
// A build that needs to stamp assembly-level attributes (description,
// version metadata, internals-visible-to and the like) into a generated
// source file describes them declaratively:
//
//	dialect: cs
//	attributes:
//	  - name: System.Reflection.AssemblyDescriptionAttribute
//	    parameters:
//	      _Parameter1: "built by CI"
//
// and invokes:
//
//	codefrag --spec attrs.yaml --out obj/AssemblyInfo.cs
//
// # Parameter key conventions
//
// Keys named _Parameter1, _Parameter2, ... are positional arguments; gaps
// in the index sequence render as the dialect's null literal. A companion
// key "<Name>_IsLiteral: true" makes the named parameter <Name> emit its
// raw textual form (for numeric or boolean constants) instead of a quoted
// string.
//
// # Output
//
// With --out (or the manifest's outputFile) the fragment is written
// atomically to that path. With --out-dir the file name is derived from the
// fragment's content hash plus the dialect extension, so repeated runs with
// the same input land on the same path. With neither, the text is printed
// to stdout. Generation is all-or-nothing: any malformed specification
// aborts the run without touching the output location.
package main
