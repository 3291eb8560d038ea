package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/cleanhub/internal/classifier"
	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
	"github.com/custodia-labs/cleanhub/internal/logger"
)

// Ensure ModelService implements the interface.
var _ driving.ModelService = (*ModelService)(nil)

// ModelService trains, evaluates and applies classifiers.
type ModelService struct {
	corpus  driven.CorpusStore
	backend driven.ClassifierBackend
}

// NewModelService creates a model service.
func NewModelService(corpus driven.CorpusStore, backend driven.ClassifierBackend) *ModelService {
	return &ModelService{
		corpus:  corpus,
		backend: backend,
	}
}

// Train fits a classifier on trainDir and saves it to modelOut.
func (s *ModelService) Train(ctx context.Context, trainDir, modelOut string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dataset, err := s.corpus.LoadDir(trainDir)
	if err != nil {
		return "", err
	}
	logger.Info("training on %d samples, classes %v", dataset.Len(), dataset.Classes())

	model := s.backend.New()
	if err := model.Fit(dataset.Texts(), dataset.Labels()); err != nil {
		return "", fmt.Errorf("fit: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.backend.Save(model, modelOut); err != nil {
		return "", err
	}
	return modelOut, nil
}

// Evaluate scores the model at modelPath against evalDir.
func (s *ModelService) Evaluate(ctx context.Context, evalDir, modelPath string) (*domain.Metrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dataset, err := s.corpus.LoadDir(evalDir)
	if err != nil {
		return nil, err
	}

	model, err := s.backend.Load(modelPath)
	if err != nil {
		return nil, err
	}

	predicted := model.Predict(dataset.Texts())
	metrics, err := classifier.Score(dataset.Labels(), predicted)
	if err != nil {
		return nil, err
	}
	logger.Info("evaluated %d samples: accuracy %.4f", dataset.Len(), metrics.Accuracy)
	return metrics, nil
}

// PredictFile labels every non-empty line of inputFile.
func (s *ModelService) PredictFile(ctx context.Context, inputFile, modelPath string) ([]domain.Prediction, error) {
	lines, err := s.corpus.ReadLines(inputFile)
	if err != nil {
		return nil, err
	}
	return s.PredictTexts(ctx, lines, modelPath)
}

// PredictTexts labels texts with the model at modelPath.
// Texts are trimmed; empty ones are skipped.
func (s *ModelService) PredictTexts(ctx context.Context, texts []string, modelPath string) ([]domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model, err := s.backend.Load(modelPath)
	if err != nil {
		return nil, err
	}

	inputs := make([]string, 0, len(texts))
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			inputs = append(inputs, t)
		}
	}
	if len(inputs) == 0 {
		return []domain.Prediction{}, nil
	}

	labels := model.Predict(inputs)
	probs := model.PredictProba(inputs)
	classes := model.Classes()

	predictions := make([]domain.Prediction, len(inputs))
	for i, text := range inputs {
		predictions[i] = domain.Prediction{
			Text:        text,
			Label:       labels[i],
			Probability: probabilityOf(classes, probs[i], labels[i]),
		}
	}
	return predictions, nil
}

func probabilityOf(classes []string, row []float64, label string) float64 {
	for j, c := range classes {
		if c == label && j < len(row) {
			return row[j]
		}
	}
	return 0
}
