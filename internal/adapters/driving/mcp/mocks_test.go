package mcp

import (
	"context"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
)

// mockPreprocessService is a mock implementation of driving.PreprocessService.
type mockPreprocessService struct {
	lastText string
	lastCfg  domain.CleaningConfig
	result   string
	err      error
}

func (m *mockPreprocessService) CleanFile(_ context.Context, _, _ string, _ domain.CleaningConfig) (int, error) {
	return 0, m.err
}

func (m *mockPreprocessService) BatchClean(
	_ context.Context,
	_, _ string,
	_ domain.CleaningConfig,
) (*driving.BatchResult, error) {
	return &driving.BatchResult{}, m.err
}

func (m *mockPreprocessService) CleanText(text string, cfg domain.CleaningConfig) (string, error) {
	m.lastText = text
	m.lastCfg = cfg
	return m.result, m.err
}

func (m *mockPreprocessService) Watch(
	_ context.Context,
	_, _ string,
	_ domain.CleaningConfig,
	_ func(driving.WatchEvent),
) error {
	return m.err
}

// mockModelService is a mock implementation of driving.ModelService.
type mockModelService struct {
	lastTexts     []string
	lastModelPath string
	predictions   []domain.Prediction
	err           error
}

func (m *mockModelService) Train(_ context.Context, _, modelOut string) (string, error) {
	return modelOut, m.err
}

func (m *mockModelService) Evaluate(_ context.Context, _, _ string) (*domain.Metrics, error) {
	return &domain.Metrics{}, m.err
}

func (m *mockModelService) PredictFile(_ context.Context, _, _ string) ([]domain.Prediction, error) {
	return m.predictions, m.err
}

func (m *mockModelService) PredictTexts(_ context.Context, texts []string, modelPath string) ([]domain.Prediction, error) {
	m.lastTexts = texts
	m.lastModelPath = modelPath
	return m.predictions, m.err
}

// mockRunService is a mock implementation of driving.RunService.
type mockRunService struct {
	runs      []domain.RunRecord
	lastLimit int
	err       error
}

func (m *mockRunService) Start(_ context.Context, command string) *domain.RunRecord {
	return &domain.RunRecord{ID: "run-1", Command: command}
}

func (m *mockRunService) Finish(_ context.Context, _ *domain.RunRecord, _ string, _ *domain.Metrics, _ error) {
}

func (m *mockRunService) List(_ context.Context, limit int) ([]domain.RunRecord, error) {
	m.lastLimit = limit
	return m.runs, m.err
}
