// Package mcp provides an MCP (Model Context Protocol) server adapter for cleanhub.
// It lets AI assistants clean Amharic text and classify it with a trained model.
package mcp

import "errors"

var (
	// ErrMissingPreprocessService is returned when the preprocess service is not provided.
	ErrMissingPreprocessService = errors.New("mcp: preprocess service is required")

	// ErrModelUnavailable is returned by the predict tool when no model service is wired.
	ErrModelUnavailable = errors.New("mcp: model service is not available")
)
