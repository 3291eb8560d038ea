package normalisers

import (
	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
	"github.com/custodia-labs/cleanhub/internal/normalisers/ethiopic"
)

// RegisterDefaults registers the built-in strategies.
func RegisterDefaults(r *Registry) {
	r.Register(ethiopic.Name, func(cfg domain.CleaningConfig) driven.TextCleaner {
		return ethiopic.New(cfg)
	})
	r.Register(ethiopic.NFCName, func(cfg domain.CleaningConfig) driven.TextCleaner {
		return ethiopic.NewNFC(cfg)
	})
}

// DefaultRegistry returns a registry holding the built-in strategies.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
