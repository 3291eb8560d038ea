package driving

import (
	"context"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

// RunService records and lists pipeline runs.
type RunService interface {
	// Start opens a run record for a command.
	Start(ctx context.Context, command string) *domain.RunRecord

	// Finish closes a run with its outcome. Failures to persist are logged only.
	Finish(ctx context.Context, run *domain.RunRecord, detail string, metrics *domain.Metrics, err error)

	// List returns recent runs, most recent first.
	List(ctx context.Context, limit int) ([]domain.RunRecord, error)
}
