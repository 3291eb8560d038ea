package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
)

// mockPreprocessService records the last call and returns canned results.
type mockPreprocessService struct {
	glob   string
	outDir string
	cfg    domain.CleaningConfig
	text   string

	result     *driving.BatchResult
	err        error
	watchEvent *driving.WatchEvent
	watched    bool
}

func (m *mockPreprocessService) CleanFile(_ context.Context, _, _ string, cfg domain.CleaningConfig) (int, error) {
	m.cfg = cfg
	return 0, m.err
}

func (m *mockPreprocessService) BatchClean(
	_ context.Context,
	inputGlob, outDir string,
	cfg domain.CleaningConfig,
) (*driving.BatchResult, error) {
	m.glob, m.outDir, m.cfg = inputGlob, outDir, cfg
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &driving.BatchResult{Files: 2, Lines: 5, Outputs: []string{"a.txt", "b.txt"}}, nil
}

func (m *mockPreprocessService) CleanText(text string, cfg domain.CleaningConfig) (string, error) {
	m.text, m.cfg = text, cfg
	if m.err != nil {
		return "", m.err
	}
	return strings.ToUpper(strings.TrimSpace(text)), nil
}

func (m *mockPreprocessService) Watch(
	_ context.Context,
	_, _ string,
	_ domain.CleaningConfig,
	notify func(driving.WatchEvent),
) error {
	m.watched = true
	if m.watchEvent != nil {
		notify(*m.watchEvent)
	}
	return nil
}

// mockModelService returns canned model results.
type mockModelService struct {
	trainDir  string
	modelPath string
	metrics   *domain.Metrics
	preds     []domain.Prediction
	err       error
}

func (m *mockModelService) Train(_ context.Context, trainDir, modelOut string) (string, error) {
	m.trainDir, m.modelPath = trainDir, modelOut
	if m.err != nil {
		return "", m.err
	}
	return modelOut, nil
}

func (m *mockModelService) Evaluate(_ context.Context, _, modelPath string) (*domain.Metrics, error) {
	m.modelPath = modelPath
	if m.err != nil {
		return nil, m.err
	}
	return m.metrics, nil
}

func (m *mockModelService) PredictFile(_ context.Context, _, modelPath string) ([]domain.Prediction, error) {
	m.modelPath = modelPath
	if m.err != nil {
		return nil, m.err
	}
	return m.preds, nil
}

func (m *mockModelService) PredictTexts(_ context.Context, _ []string, modelPath string) ([]domain.Prediction, error) {
	m.modelPath = modelPath
	return m.preds, m.err
}

// mockCloudSync records transfers as "what:path" strings.
type mockCloudSync struct {
	uploads   []string
	downloads []string
}

func (m *mockCloudSync) MaybeUpload(_ context.Context, localPath, what string) {
	m.uploads = append(m.uploads, what+":"+localPath)
}

func (m *mockCloudSync) MaybeDownload(_ context.Context, what, localDir string) {
	m.downloads = append(m.downloads, what+":"+localDir)
}

// mockRunService keeps finished runs in memory.
type mockRunService struct {
	started  int
	finished []domain.RunRecord
	listed   []domain.RunRecord
	limit    int
	err      error
}

func (m *mockRunService) Start(_ context.Context, command string) *domain.RunRecord {
	m.started++
	return &domain.RunRecord{
		ID:        fmt.Sprintf("run-%d", m.started),
		Command:   command,
		StartedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (m *mockRunService) Finish(_ context.Context, run *domain.RunRecord, detail string, metrics *domain.Metrics, err error) {
	run.Detail = detail
	run.Metrics = metrics
	run.Status = domain.RunStatusOK
	if err != nil {
		run.Status = domain.RunStatusFailed
		run.Detail = err.Error()
	}
	m.finished = append(m.finished, *run)
}

func (m *mockRunService) List(_ context.Context, limit int) ([]domain.RunRecord, error) {
	m.limit = limit
	return m.listed, m.err
}

type testServices struct {
	preprocess *mockPreprocessService
	model      *mockModelService
	cloud      *mockCloudSync
	runs       *mockRunService
}

// setupTestServices installs mocks in the package-level service variables
// and resets every flag to its default. The returned func restores state.
func setupTestServices() (*testServices, func()) {
	oldPreprocess, oldModel, oldCloud, oldRuns := preprocessService, modelService, cloudSync, runService
	oldSettings, oldBuilder := settings, builder

	svc := &testServices{
		preprocess: &mockPreprocessService{},
		model:      &mockModelService{},
		cloud:      &mockCloudSync{},
		runs:       &mockRunService{},
	}
	preprocessService = svc.preprocess
	modelService = svc.model
	cloudSync = svc.cloud
	runService = svc.runs
	settings = nil
	builder = nil
	resetFlags(rootCmd)

	return svc, func() {
		preprocessService, modelService, cloudSync, runService = oldPreprocess, oldModel, oldCloud, oldRuns
		settings, builder = oldSettings, oldBuilder
		resetFlags(rootCmd)
	}
}

// resetFlags restores flag values between executions of the shared rootCmd.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs rootCmd with args and returns combined output.
func executeCommand(args ...string) (string, error) {
	return executeCommandWithInput(nil, args...)
}

func executeCommandWithInput(in io.Reader, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
