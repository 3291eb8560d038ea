package driven

import "github.com/custodia-labs/cleanhub/internal/core/domain"

// CleanerRegistry builds text cleaners by strategy name.
type CleanerRegistry interface {
	// Build creates a cleaner for the named strategy.
	// Returns domain.ErrUnsupportedType for unknown names.
	Build(name string, cfg domain.CleaningConfig) (TextCleaner, error)

	// Names returns the registered strategy names, sorted.
	Names() []string
}
