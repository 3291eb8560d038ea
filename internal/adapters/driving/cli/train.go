package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
)

var (
	trainDir      string
	trainModelOut string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a text classifier",
	Long: `Trains a TF-IDF + logistic regression classifier on a processed
directory. Each immediate subdirectory of --train-dir is one class and
every non-empty line of its .txt files is one sample.`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainDir, "train-dir", "data/processed", "directory of cleaned .txt files grouped by class")
	trainCmd.Flags().StringVar(&trainModelOut, "model-out", "models/model.gob", "where to write the trained model")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) (err error) {
	if modelService == nil {
		return errors.New("model service not configured")
	}

	ctx := cmd.Context()
	finish := recordRun(ctx, "train")
	var modelPath string
	defer func() { finish(modelPath, nil, err) }()

	syncDownload(ctx, driving.ArtifactData, trainDir)

	modelPath, err = modelService.Train(ctx, trainDir, trainModelOut)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Trained model saved → %s\n", modelPath)

	syncUpload(ctx, modelPath, driving.ArtifactModel)
	return nil
}
