package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

// predictPreviewRunes is how much of each line predict echoes.
const predictPreviewRunes = 80

var (
	predictInputFile string
	predictModelPath string
	predictJSON      bool
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict labels for a text file",
	Long: `Labels every non-empty line of --input-file with a trained model.
Each output row shows the line number, label, probability and the first
80 characters of the line.`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringVar(&predictInputFile, "input-file", "", "text file with one sample per line")
	predictCmd.Flags().StringVar(&predictModelPath, "model-path", "models/model.gob", "trained model to apply")
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "output predictions as JSON")
	_ = predictCmd.MarkFlagRequired("input-file")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) (err error) {
	if modelService == nil {
		return errors.New("model service not configured")
	}

	ctx := cmd.Context()
	finish := recordRun(ctx, "predict")
	var preds []domain.Prediction
	defer func() { finish(fmt.Sprintf("%d predictions", len(preds)), nil, err) }()

	preds, err = modelService.PredictFile(ctx, predictInputFile, predictModelPath)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	if predictJSON {
		return printJSON(cmd, preds)
	}
	for i, p := range preds {
		fmt.Fprintln(cmd.OutOrStdout(), formatPrediction(i+1, p))
	}
	return nil
}

// formatPrediction renders one prediction row as "NNN | label | prob | text".
func formatPrediction(n int, p domain.Prediction) string {
	return fmt.Sprintf("%03d | %-10s | %.3f | %s", n, p.Label, p.Probability, preview(p.Text, predictPreviewRunes))
}

// preview truncates s to limit runes and flattens newlines.
func preview(s string, limit int) string {
	r := []rune(s)
	if len(r) > limit {
		r = r[:limit]
	}
	return strings.ReplaceAll(string(r), "\n", " ")
}
