package fragment

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reinux/fsharp/codefrag"
)

// Manifest is the YAML document consumed by the codefrag command.
//
// Example:
//
//	dialect: fs
//	outputFile: obj/AssemblyInfo.fs
//	attributes:
//	  - name: System.Reflection.AssemblyDescriptionAttribute
//	    parameters:
//	      _Parameter1: "built by CI"
//	  - name: System.Reflection.AssemblyMetadataAttribute
//	    parameters:
//	      Count: "5"
//	      Count_IsLiteral: "true"
type Manifest struct {
	Dialect         string              `yaml:"dialect"`
	OutputFile      string              `yaml:"outputFile"`
	OutputDirectory string              `yaml:"outputDirectory"`
	Attributes      []ManifestAttribute `yaml:"attributes"`
}

// ManifestAttribute is one attribute specification in a manifest.
type ManifestAttribute struct {
	Name       string         `yaml:"name"`
	Parameters map[string]any `yaml:"parameters"`
}

// LoadManifest reads a YAML manifest from disk and converts it into a
// synthesis Request.
func LoadManifest(path string) (Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Request{}, err
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Request{}, fmt.Errorf("fragment: parse manifest %s: %w", path, err)
	}
	return m.Request()
}

// Request converts the manifest into a synthesis Request, resolving the
// dialect token and normalizing parameter values.
func (m Manifest) Request() (Request, error) {
	dialect, err := codefrag.ParseDialect(m.Dialect)
	if err != nil {
		return Request{}, err
	}

	attrs := make([]codefrag.Attribute, 0, len(m.Attributes))
	for i, a := range m.Attributes {
		if strings.TrimSpace(a.Name) == "" {
			return Request{}, fmt.Errorf("fragment: manifest attribute %d has no name", i)
		}
		attrs = append(attrs, codefrag.Attribute{
			Name:   a.Name,
			Params: normalizeParams(a.Parameters),
		})
	}

	return Request{
		Dialect:         dialect,
		Attributes:      attrs,
		OutputFile:      m.OutputFile,
		OutputDirectory: m.OutputDirectory,
	}, nil
}

// normalizeParams adjusts YAML-decoded parameter values for the classifier.
//
// Literal markers are defined as string-valued entries, but YAML decodes a
// bare `Count_IsLiteral: true` to a bool; converting marker bools to their
// string form lets both spellings work in manifests.
func normalizeParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for key, value := range params {
		if b, ok := value.(bool); ok && strings.HasSuffix(key, codefrag.LiteralSuffix) {
			out[key] = strconv.FormatBool(b)
			continue
		}
		out[key] = value
	}
	return out
}
