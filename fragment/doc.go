// Package fragment is the host-side adapter around codefrag: it loads YAML
// manifests, resolves where a synthesized fragment should land, and persists
// the text atomically (temp file + rename) so a downstream compiler never
// sees a partial unit.
//
// The split keeps codefrag pure: everything that touches the filesystem or
// logs lives here.
package fragment
