package normalisers

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// BuilderFunc creates a TextCleaner for a cleaning configuration.
type BuilderFunc func(cfg domain.CleaningConfig) driven.TextCleaner

// Ensure Registry implements the interface.
var _ driven.CleanerRegistry = (*Registry)(nil)

// Registry maps strategy names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a builder. Name should match the cleaner's Name() value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a cleaner by strategy name.
func (r *Registry) Build(name string, cfg domain.CleaningConfig) (driven.TextCleaner, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: cleaner strategy %q", domain.ErrUnsupportedType, name)
	}
	return builder(cfg), nil
}

// Names returns all registered strategy names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
