package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reinux/fsharp/fragment"
)

// newRootCmd builds the codefrag command. A fresh command per call keeps
// flag state isolated in tests.
func newRootCmd() *cobra.Command {
	var (
		specPath string
		outFile  string
		outDir   string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "codefrag --spec <manifest.yaml>",
		Short: "Generate assembly-attribute source fragments",
		Long: `codefrag reads a YAML manifest of assembly-level attribute specifications
and synthesizes a compilable source unit declaring them, in one of three
dialects (cs, vb, fs).

With --out or --out-dir (or the manifest's outputFile/outputDirectory) the
fragment is written atomically and the resolved path is printed. With no
output location the fragment text goes to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(specPath) == "" {
				return fmt.Errorf("missing required flag: --spec")
			}

			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			req, err := fragment.LoadManifest(specPath)
			if err != nil {
				return err
			}

			// Flags win over manifest locations.
			if outFile != "" {
				req.OutputFile = outFile
			}
			if outDir != "" && outFile == "" {
				req.OutputFile = ""
				req.OutputDirectory = outDir
			}

			writer := fragment.NewWriter(logger)

			if req.OutputFile == "" && req.OutputDirectory == "" {
				text, err := writer.Generate(req)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}

			path, err := writer.Write(req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "path to the YAML attribute manifest (required)")
	cmd.Flags().StringVar(&outFile, "out", "", "explicit output file path (overrides the manifest)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "output directory; the file name is derived from the content")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}

// newLogger builds the command's logger: production JSON output on stderr,
// debug level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "codefrag:", err)
		os.Exit(1)
	}
}
