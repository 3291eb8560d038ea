package driven

import (
	"context"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

// RunStore persists the pipeline run history.
type RunStore interface {
	// Save stores or updates a run.
	Save(ctx context.Context, run domain.RunRecord) error

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*domain.RunRecord, error)

	// List returns up to limit runs, most recent first.
	// A limit of zero or less returns all runs.
	List(ctx context.Context, limit int) ([]domain.RunRecord, error)
}
