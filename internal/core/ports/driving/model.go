package driving

import (
	"context"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

// ModelService trains, evaluates and applies text classifiers.
type ModelService interface {
	// Train fits a classifier on a processed directory and saves it.
	// Returns the path the model was written to.
	Train(ctx context.Context, trainDir, modelOut string) (string, error)

	// Evaluate scores a saved model against a processed directory.
	Evaluate(ctx context.Context, evalDir, modelPath string) (*domain.Metrics, error)

	// PredictFile labels every non-empty line of a text file.
	PredictFile(ctx context.Context, inputFile, modelPath string) ([]domain.Prediction, error)

	// PredictTexts labels in-memory texts. Empty texts are skipped.
	PredictTexts(ctx context.Context, texts []string, modelPath string) ([]domain.Prediction, error)
}
