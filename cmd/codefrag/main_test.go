package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reinux/fsharp/codefrag"
)

// execute runs the command with the given args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// writeSpec drops a manifest into a temp dir and returns its path.
func writeSpec(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "attrs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalSpec = `
dialect: cs
attributes:
  - name: Description
    parameters:
      _Parameter1: "Hello"
`

//
// -----------------------------------------------------------------------------
// codefrag command
// -----------------------------------------------------------------------------

// TestCommand_MissingSpecFlag verifies the command refuses to run without a
// manifest.
func TestCommand_MissingSpecFlag(t *testing.T) {
	t.Parallel()

	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--spec")
}

// TestCommand_StdoutMode verifies the fragment text is printed when no
// output location is configured.
func TestCommand_StdoutMode(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--spec", writeSpec(t, minimalSpec))
	require.NoError(t, err)
	assert.Contains(t, out, `[assembly: Description("Hello")]`)
	assert.True(t, strings.HasPrefix(out, "// <auto-generated>"))
}

// TestCommand_WritesExplicitFile verifies --out persists the fragment and
// prints the resolved path.
func TestCommand_WritesExplicitFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "AssemblyInfo.cs")

	out, err := execute(t, "--spec", writeSpec(t, minimalSpec), "--out", outPath)
	require.NoError(t, err)
	assert.Equal(t, outPath+"\n", out)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `[assembly: Description("Hello")]`)
}

// TestCommand_OutDirFlag verifies --out-dir places a derived file name in
// the directory.
func TestCommand_OutDirFlag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := execute(t, "--spec", writeSpec(t, minimalSpec), "--out-dir", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".cs", filepath.Ext(path))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestCommand_UnknownDialect verifies dialect configuration errors bubble to
// the exit path.
func TestCommand_UnknownDialect(t *testing.T) {
	t.Parallel()

	spec := writeSpec(t, `
dialect: kt
attributes:
  - name: X
`)

	_, err := execute(t, "--spec", spec)
	require.ErrorIs(t, err, codefrag.ErrUnknownDialect)
}

// TestCommand_MalformedSpecAborts verifies a malformed positional key fails
// the run without producing the output file.
func TestCommand_MalformedSpecAborts(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "broken.cs")
	spec := writeSpec(t, `
dialect: cs
attributes:
  - name: Broken
    parameters:
      _ParameterX: "bad"
`)

	_, err := execute(t, "--spec", spec, "--out", outPath)
	require.ErrorIs(t, err, codefrag.ErrMalformedIndex)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no partial artifact may be written")
}
