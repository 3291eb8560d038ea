package cli

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

func sampleMetrics() *domain.Metrics {
	return &domain.Metrics{
		Accuracy: 0.75,
		Report: map[string]domain.ClassMetrics{
			"pos": {Precision: 1, Recall: 0.5, F1: 0.6667, Support: 2},
			"neg": {Precision: 0.6667, Recall: 1, F1: 0.8, Support: 2},
		},
		MacroAvg:    domain.ClassMetrics{Precision: 0.8333, Recall: 0.75, F1: 0.7333, Support: 4},
		WeightedAvg: domain.ClassMetrics{Precision: 0.8333, Recall: 0.75, F1: 0.7333, Support: 4},
	}
}

func TestTrainCmd_Defaults(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("train")

	require.NoError(t, err)
	assert.Contains(t, out, "Trained model saved → models/model.gob")
	assert.Equal(t, "data/processed", svc.model.trainDir)
	assert.Equal(t, []string{"data:data/processed"}, svc.cloud.downloads)
	assert.Equal(t, []string{"model:models/model.gob"}, svc.cloud.uploads)

	require.Len(t, svc.runs.finished, 1)
	assert.Equal(t, "train", svc.runs.finished[0].Command)
	assert.Equal(t, "models/model.gob", svc.runs.finished[0].Detail)
}

func TestTrainCmd_Failure(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.model.err = domain.ErrNoSamples

	_, err := executeCommand("train", "--train-dir", "empty")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoSamples))
	assert.Empty(t, svc.cloud.uploads)
	assert.Equal(t, domain.RunStatusFailed, svc.runs.finished[0].Status)
}

func TestEvalCmd_PrintsReport(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.model.metrics = sampleMetrics()

	out, err := executeCommand("eval", "--model-path", "m.gob")

	require.NoError(t, err)
	assert.Equal(t, "m.gob", svc.model.modelPath)
	assert.Contains(t, out, "Accuracy: 0.7500")
	assert.Contains(t, out, "precision")
	assert.Contains(t, out, "macro avg")
	assert.Contains(t, out, "weighted avg")
	assert.Less(t, strings.Index(out, "neg"), strings.Index(out, "pos"))
	assert.Contains(t, out, "0.67")

	require.Len(t, svc.runs.finished, 1)
	assert.Equal(t, "accuracy 0.7500", svc.runs.finished[0].Detail)
	assert.Equal(t, sampleMetrics(), svc.runs.finished[0].Metrics)
	assert.Equal(t, []string{"data:data/processed"}, svc.cloud.downloads)
	assert.Empty(t, svc.cloud.uploads)
}

func TestEvalCmd_JSON(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.model.metrics = sampleMetrics()

	out, err := executeCommand("eval", "--json")

	require.NoError(t, err)
	var got domain.Metrics
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 0.75, got.Accuracy, 1e-9)
	assert.Equal(t, 2, got.Report["pos"].Support)
}

func TestEvalCmd_Failure(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.model.err = domain.ErrModelFormat

	_, err := executeCommand("eval")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluation failed")
}

func TestPredictCmd_PrintsRows(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.model.preds = []domain.Prediction{
		{Text: "ሰላም ዓለም", Label: "pos", Probability: 0.9},
		{Text: "መጥፎ ቀን", Label: "neg", Probability: 0.8123},
	}

	out, err := executeCommand("predict", "--input-file", "in.txt")

	require.NoError(t, err)
	assert.Contains(t, out, "001 | pos        | 0.900 | ሰላም ዓለም")
	assert.Contains(t, out, "002 | neg        | 0.812 | መጥፎ ቀን")
	assert.Equal(t, "models/model.gob", svc.model.modelPath)
	assert.Empty(t, svc.cloud.downloads)
	assert.Equal(t, "2 predictions", svc.runs.finished[0].Detail)
}

func TestPredictCmd_RequiresInputFile(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("predict")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "input-file" not set`)
}

func TestPredictCmd_JSON(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.model.preds = []domain.Prediction{{Text: "a", Label: "pos", Probability: 1}}

	out, err := executeCommand("predict", "--input-file", "in.txt", "--json")

	require.NoError(t, err)
	var got []domain.Prediction
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, svc.model.preds, got)
}

func TestFormatPrediction_TruncatesByRune(t *testing.T) {
	text := strings.Repeat("ሀ", 100)

	row := formatPrediction(7, domain.Prediction{Text: text, Label: "a-very-long-label", Probability: 0.5})

	assert.Equal(t, "007 | a-very-long-label | 0.500 | "+strings.Repeat("ሀ", 80), row)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b", preview("a\nb", 10))
	assert.Equal(t, "ab", preview("abc", 2))
	assert.Equal(t, "", preview("", 2))
}

func TestModelCmds_NoService(t *testing.T) {
	for _, args := range [][]string{{"train"}, {"eval"}, {"predict", "--input-file", "x"}} {
		t.Run(args[0], func(t *testing.T) {
			_, cleanup := setupTestServices()
			defer cleanup()
			modelService = nil

			_, err := executeCommand(args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "model service not configured")
		})
	}
}
