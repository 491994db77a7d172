package fragment

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/reinux/fsharp/codefrag"
)

// descriptionRequest returns a minimal valid request for writer tests.
func descriptionRequest() Request {
	return Request{
		Dialect: codefrag.CSharp,
		Attributes: []codefrag.Attribute{{
			Name:   "Description",
			Params: map[string]any{"_Parameter1": "Hello"},
		}},
	}
}

//
// -----------------------------------------------------------------------------
// Write: happy paths
// -----------------------------------------------------------------------------

// TestWrite_ExplicitFile verifies Write persists the synthesized text to the
// requested path and echoes the resolved path back.
func TestWrite_ExplicitFile(t *testing.T) {
	t.Parallel()

	req := descriptionRequest()
	req.OutputFile = filepath.Join(t.TempDir(), "AssemblyInfo.cs")

	writer := NewWriter(zap.NewNop())

	path, err := writer.Write(req)
	require.NoError(t, err)
	assert.Equal(t, req.OutputFile, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	want, err := writer.Generate(req)
	require.NoError(t, err)
	assert.Equal(t, want, string(content))
}

// TestWrite_DirectoryNaming verifies directory output derives a stable,
// content-addressed file name with the dialect extension.
func TestWrite_DirectoryNaming(t *testing.T) {
	t.Parallel()

	req := descriptionRequest()
	req.OutputDirectory = t.TempDir()

	writer := NewWriter(nil)

	first, err := writer.Write(req)
	require.NoError(t, err)
	assert.Equal(t, req.OutputDirectory, filepath.Dir(first))
	assert.True(t, strings.HasPrefix(filepath.Base(first), "codefrag_"))
	assert.Equal(t, ".cs", filepath.Ext(first))

	second, err := writer.Write(req)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same input must resolve to the same path")
}

// TestWrite_FileWinsOverDirectory verifies an explicit output file takes
// precedence when both locations are set.
func TestWrite_FileWinsOverDirectory(t *testing.T) {
	t.Parallel()

	req := descriptionRequest()
	req.OutputFile = filepath.Join(t.TempDir(), "out.cs")
	req.OutputDirectory = t.TempDir()

	path, err := NewWriter(nil).Write(req)
	require.NoError(t, err)
	assert.Equal(t, req.OutputFile, path)
}

//
// -----------------------------------------------------------------------------
// Write: failure modes
// -----------------------------------------------------------------------------

// TestWrite_NoOutputLocation verifies a request with neither location fails
// with ErrNoOutputLocation.
func TestWrite_NoOutputLocation(t *testing.T) {
	t.Parallel()

	_, err := NewWriter(nil).Write(descriptionRequest())
	require.ErrorIs(t, err, ErrNoOutputLocation)
}

// TestWrite_SynthesisFailureTouchesNothing verifies a malformed specification
// aborts before any file is created.
func TestWrite_SynthesisFailureTouchesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	req := Request{
		Dialect: codefrag.CSharp,
		Attributes: []codefrag.Attribute{{
			Name:   "Broken",
			Params: map[string]any{"_ParameterX": "bad"},
		}},
		OutputDirectory: dir,
	}

	_, err := NewWriter(nil).Write(req)
	require.ErrorIs(t, err, codefrag.ErrMalformedIndex)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed synthesis must not produce a partial artifact")
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic() seams
// -----------------------------------------------------------------------------

// fakeSink is a controllable fragmentSink for writeFileAtomic tests.
type fakeSink struct {
	fileName string
	writeErr error
	closeErr error
}

func (f *fakeSink) Name() string { return f.fileName }

func (f *fakeSink) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeSink) Close() error { return f.closeErr }

// TestWriteFileAtomic_ErrorBranches covers the error paths: staging, write
// and rename failures, and the deferred staged-file cleanup.
func TestWriteFileAtomic_ErrorBranches(t *testing.T) {
	// NOT parallel: mutates global seams.

	origStage, origRemove, origRename := stageFragment, removeFile, renameFile
	t.Cleanup(func() {
		stageFragment, removeFile, renameFile = origStage, origRemove, origRename
	})

	t.Run("staging error", func(t *testing.T) {
		stageFragment = func(dir, pattern string) (fragmentSink, error) {
			return nil, errors.New("staging failed")
		}
		err := writeFileAtomic(filepath.Join(t.TempDir(), "x.cs"), []byte("data"), 0o644)
		require.ErrorContains(t, err, "staging failed")
	})

	t.Run("write error removes staged file", func(t *testing.T) {
		removed := 0
		stageFragment = func(dir, pattern string) (fragmentSink, error) {
			return &fakeSink{fileName: filepath.Join(dir, "tmp"), writeErr: errors.New("write failed")}, nil
		}
		removeFile = func(string) error { removed++; return nil }

		err := writeFileAtomic(filepath.Join(t.TempDir(), "x.cs"), []byte("data"), 0o644)
		require.ErrorContains(t, err, "write failed")
		assert.Equal(t, 1, removed)
	})

	t.Run("rename error removes staged file", func(t *testing.T) {
		removed := 0
		stageFragment = origStage
		removeFile = func(string) error { removed++; return nil }
		renameFile = func(string, string) error { return errors.New("rename failed") }

		err := writeFileAtomic(filepath.Join(t.TempDir(), "x.cs"), []byte("data"), 0o644)
		require.ErrorContains(t, err, "rename failed")
		assert.Equal(t, 1, removed)
	})
}

// TestWriteFileAtomic_Success verifies the rename lands the full content at
// the target path with no temp files left behind.
func TestWriteFileAtomic_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "out.cs")

	require.NoError(t, writeFileAtomic(target, []byte("content"), 0o644))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no staged files may remain")
}
