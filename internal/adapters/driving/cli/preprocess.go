package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
)

var (
	preprocessInputGlob string
	preprocessOutDir    string
	preprocessWatch     bool
	preprocessCleaning  cleaningFlags
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Clean raw text files into a processed directory",
	Long: `Cleans every file matching --input-glob and writes one <name>.txt per
input into --outdir. Ge'ez punctuation and ASCII punctuation are stripped,
Latin text is lower-cased and whitespace is collapsed.

Patterns support ** for recursive matching, e.g. "data/raw/**/*.txt".

With --watch the command keeps running and re-cleans files as they are
created or modified until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runPreprocess,
}

func init() {
	preprocessCmd.Flags().StringVar(&preprocessInputGlob, "input-glob", "data/raw/*.txt", "glob for raw files")
	preprocessCmd.Flags().StringVar(&preprocessOutDir, "outdir", "data/processed", "output directory")
	preprocessCmd.Flags().BoolVar(&preprocessWatch, "watch", false, "keep watching for changed input files")
	preprocessCleaning.register(preprocessCmd)
	rootCmd.AddCommand(preprocessCmd)
}

func runPreprocess(cmd *cobra.Command, _ []string) (err error) {
	if preprocessService == nil {
		return errors.New("preprocess service not configured")
	}

	ctx := cmd.Context()
	cfg := preprocessCleaning.resolve(cmd)

	finish := recordRun(ctx, "preprocess")
	var result *driving.BatchResult
	defer func() {
		detail := ""
		if result != nil {
			detail = fmt.Sprintf("%d files, %d lines", result.Files, result.Lines)
		}
		finish(detail, nil, err)
	}()

	syncDownload(ctx, driving.ArtifactData, preprocessOutDir)

	result, err = preprocessService.BatchClean(ctx, preprocessInputGlob, preprocessOutDir, cfg)
	if err != nil {
		return fmt.Errorf("preprocess failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleaned %d files → %s\n", result.Files, preprocessOutDir)

	syncUpload(ctx, preprocessOutDir, driving.ArtifactData)

	if !preprocessWatch {
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n", preprocessInputGlob)
	return preprocessService.Watch(ctx, preprocessInputGlob, preprocessOutDir, cfg, func(ev driving.WatchEvent) {
		if ev.Err != nil {
			cmd.PrintErrf("Failed to clean %s: %v\n", ev.Input, ev.Err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleaned %s → %s (%d lines)\n", ev.Input, ev.Output, ev.Lines)
	})
}
