package fragment

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/reinux/fsharp/codefrag"
)

// ErrNoOutputLocation is returned by Write when a request supplies neither
// an output file nor an output directory.
var ErrNoOutputLocation = errors.New("fragment: neither output file nor output directory provided")

// Request describes one code-fragment generation.
type Request struct {
	Dialect    codefrag.Dialect
	Attributes []codefrag.Attribute

	// OutputFile is the explicit destination path. When set it wins over
	// OutputDirectory.
	OutputFile string

	// OutputDirectory receives a generated file name when OutputFile is
	// empty. The name is derived from the fragment's content hash and the
	// dialect's extension, so re-running the same input resolves to the
	// same path.
	OutputDirectory string
}

// Writer synthesizes code fragments and persists them atomically.
//
// A Writer holds no per-request state and is safe for concurrent use.
type Writer struct {
	logger *zap.Logger
}

// NewWriter returns a Writer logging through the given logger.
// A nil logger disables logging.
func NewWriter(logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{logger: logger}
}

// Generate synthesizes the fragment text without persisting it.
func (w *Writer) Generate(req Request) (string, error) {
	return codefrag.Synthesize(req.Dialect, req.Attributes)
}

// Write synthesizes the fragment and persists it to the resolved output
// location. It returns the resolved path for the caller's bookkeeping.
//
// The write is all-or-nothing: synthesis failures produce no file at all,
// and the file itself is written via a temp-file-and-rename so readers never
// observe a partial fragment.
func (w *Writer) Write(req Request) (string, error) {
	text, err := codefrag.Synthesize(req.Dialect, req.Attributes)
	if err != nil {
		w.logger.Error("fragment synthesis failed", zap.Error(err))
		return "", err
	}

	outputPath, err := resolveOutputPath(req, text)
	if err != nil {
		return "", err
	}
	w.logger.Debug("resolved output path", zap.String("path", outputPath))

	if err := writeFileAtomic(outputPath, []byte(text), 0o644); err != nil {
		w.logger.Error("fragment write failed", zap.String("path", outputPath), zap.Error(err))
		return "", err
	}

	w.logger.Info("code fragment written",
		zap.String("path", outputPath),
		zap.String("dialect", req.Dialect.String()),
		zap.Int("attributes", len(req.Attributes)),
		zap.Int("bytes", len(text)))
	return outputPath, nil
}

// resolveOutputPath picks the destination for a synthesized fragment.
func resolveOutputPath(req Request, text string) (string, error) {
	if req.OutputFile != "" {
		return filepath.Clean(req.OutputFile), nil
	}
	if req.OutputDirectory != "" {
		sum := sha256.Sum256([]byte(text))
		name := "codefrag_" + hex.EncodeToString(sum[:4]) + req.Dialect.Extension()
		return filepath.Join(req.OutputDirectory, name), nil
	}
	return "", ErrNoOutputLocation
}

// fragmentSink is the writable side of a staged fragment. It narrows
// *os.File to the three calls the writer makes, so failures on any of them
// are injectable in tests.
type fragmentSink interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// Filesystem hooks, swapped out by the error-branch tests.
var (
	stageFragment = func(dir, pattern string) (fragmentSink, error) { return os.CreateTemp(dir, pattern) }
	chmodFile     = os.Chmod
	renameFile    = os.Rename
	removeFile    = os.Remove
)

// writeFileAtomic persists a fragment with rename semantics: it appears at
// targetPath complete or not at all. The fragment is staged next to the
// target so the final rename never crosses a filesystem boundary, and a
// failure on any step removes the staged file.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	staged, err := stageFragment(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	stagedPath := staged.Name()

	defer func() {
		if err != nil {
			_ = removeFile(stagedPath)
		}
	}()

	if _, err = staged.Write(data); err != nil {
		_ = staged.Close()
		return err
	}
	if err = staged.Close(); err != nil {
		return err
	}
	if err = chmodFile(stagedPath, perm); err != nil {
		return err
	}
	return renameFile(stagedPath, targetPath)
}
