package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
)

var (
	evalDir       string
	evalModelPath string
	evalJSON      bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a model on a processed directory",
	Long: `Scores a trained model against a processed directory laid out like
the training data and prints accuracy with per-class precision, recall,
F1 and support.`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVar(&evalDir, "eval-dir", "data/processed", "directory of cleaned .txt files grouped by class")
	evalCmd.Flags().StringVar(&evalModelPath, "model-path", "models/model.gob", "trained model to evaluate")
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "output metrics as JSON")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, _ []string) (err error) {
	if modelService == nil {
		return errors.New("model service not configured")
	}

	ctx := cmd.Context()
	finish := recordRun(ctx, "eval")
	var metrics *domain.Metrics
	defer func() {
		detail := ""
		if metrics != nil {
			detail = fmt.Sprintf("accuracy %.4f", metrics.Accuracy)
		}
		finish(detail, metrics, err)
	}()

	syncDownload(ctx, driving.ArtifactData, evalDir)

	metrics, err = modelService.Evaluate(ctx, evalDir, evalModelPath)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if evalJSON {
		return printJSON(cmd, metrics)
	}
	newRenderer(cmd).metrics(metrics)
	return nil
}
