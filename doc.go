// Package codefrag generates assembly-attribute source fragments.
//
// This repository turns declarative attribute specifications into small,
// compilable source units for three dialects (cs, vb, fs), the way build
// systems stamp assembly metadata into generated files.
//
// Layout:
//
//   - codefrag: the core synthesizer: escaping, parameter classification,
//     argument assembly, dialect templating. Pure computation, no I/O.
//   - fragment: the host adapter: YAML manifests, output-path resolution,
//     atomic persistence, structured logging.
//   - cmd/codefrag: the CLI wrapping both.
//   - examples/basic: a minimal end-to-end usage example.
//
// Start with the codefrag package docs for the parameter key conventions.
package codefrag
