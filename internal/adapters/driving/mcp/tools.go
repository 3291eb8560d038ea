package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CleanTextInput is the input schema for the clean_text tool.
type CleanTextInput struct {
	Text              string `json:"text" jsonschema:"the raw text to normalise"`
	KeepCase          bool   `json:"keep_case,omitempty" jsonschema:"do not lower-case Latin letters"`
	KeepPunctuation   bool   `json:"keep_punctuation,omitempty" jsonschema:"do not strip ASCII and Ethiopic punctuation"`
	NormalizeNumerals *bool  `json:"normalize_numerals,omitempty" jsonschema:"rewrite Ge'ez numerals as digits (default from server config)"`
	Strategy          string `json:"strategy,omitempty" jsonschema:"cleaner strategy, ethiopic or ethiopic-nfc"`
}

// CleanTextOutput is the output schema for the clean_text tool.
type CleanTextOutput struct {
	Cleaned string `json:"cleaned"`
}

// PredictInput is the input schema for the predict tool.
type PredictInput struct {
	Texts     []string `json:"texts" jsonschema:"texts to classify, one sample each"`
	ModelPath string   `json:"model_path,omitempty" jsonschema:"path of the trained model (default from server config)"`
}

// PredictOutput is the output schema for the predict tool.
type PredictOutput struct {
	Predictions []PredictionOutput `json:"predictions"`
	Count       int                `json:"count"`
}

// PredictionOutput represents a single prediction.
type PredictionOutput struct {
	Text        string  `json:"text"`
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clean_text",
		Description: "Normalise Amharic text: collapse whitespace, strip punctuation, lower-case Latin letters, map Ge'ez numerals",
	}, s.handleCleanText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "predict",
		Description: "Classify texts with a trained model and return labels with probabilities",
	}, s.handlePredict)
}

// handleCleanText handles the clean_text tool invocation.
func (s *Server) handleCleanText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CleanTextInput,
) (*mcp.CallToolResult, CleanTextOutput, error) {
	cfg := s.opts.Cleaning
	if input.KeepCase {
		cfg.Lowercase = false
	}
	if input.KeepPunctuation {
		cfg.StripPunctuation = false
	}
	if input.NormalizeNumerals != nil {
		cfg.NormalizeNumerals = *input.NormalizeNumerals
	}
	if input.Strategy != "" {
		cfg.Strategy = input.Strategy
	}

	cleaned, err := s.ports.Preprocess.CleanText(input.Text, cfg)
	if err != nil {
		return nil, CleanTextOutput{}, err
	}
	return nil, CleanTextOutput{Cleaned: cleaned}, nil
}

// handlePredict handles the predict tool invocation.
func (s *Server) handlePredict(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PredictInput,
) (*mcp.CallToolResult, PredictOutput, error) {
	if s.ports.Model == nil {
		return nil, PredictOutput{}, ErrModelUnavailable
	}

	modelPath := input.ModelPath
	if modelPath == "" {
		modelPath = s.opts.ModelPath
	}

	predictions, err := s.ports.Model.PredictTexts(ctx, input.Texts, modelPath)
	if err != nil {
		return nil, PredictOutput{}, err
	}

	output := PredictOutput{
		Predictions: make([]PredictionOutput, len(predictions)),
		Count:       len(predictions),
	}
	for i, p := range predictions {
		output.Predictions[i] = PredictionOutput{
			Text:        p.Text,
			Label:       p.Label,
			Probability: p.Probability,
		}
	}
	return nil, output, nil
}
