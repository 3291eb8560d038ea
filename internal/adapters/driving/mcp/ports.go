package mcp

import (
	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Preprocess cleans text.
	Preprocess driving.PreprocessService

	// Model applies trained classifiers. Optional.
	Model driving.ModelService

	// Runs exposes the run history. Optional.
	Runs driving.RunService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Preprocess == nil {
		return ErrMissingPreprocessService
	}
	return nil
}

// Options holds the defaults tools fall back to when a call omits them.
type Options struct {
	// Cleaning is the base cleaning configuration.
	Cleaning domain.CleaningConfig

	// ModelPath is the model used by predict when none is given.
	ModelPath string
}
