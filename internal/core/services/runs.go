package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
	"github.com/custodia-labs/cleanhub/internal/logger"
)

// Ensure RunService implements the interface.
var _ driving.RunService = (*RunService)(nil)

// RunService records command runs in a RunStore.
// A nil store disables history.
type RunService struct {
	store driven.RunStore
	now   func() time.Time
}

// NewRunService creates a run service.
func NewRunService(store driven.RunStore) *RunService {
	return &RunService{
		store: store,
		now:   time.Now,
	}
}

// Start opens a run for command.
func (s *RunService) Start(_ context.Context, command string) *domain.RunRecord {
	return &domain.RunRecord{
		ID:        uuid.New().String(),
		Command:   command,
		StartedAt: s.now().UTC(),
	}
}

// Finish records the outcome of run. A non-nil err marks it failed and
// replaces detail with the error text.
func (s *RunService) Finish(ctx context.Context, run *domain.RunRecord, detail string, metrics *domain.Metrics, err error) {
	if run == nil {
		return
	}

	run.FinishedAt = s.now().UTC()
	run.Status = domain.RunStatusOK
	run.Detail = detail
	run.Metrics = metrics
	if err != nil {
		run.Status = domain.RunStatusFailed
		run.Detail = err.Error()
	}

	if s.store == nil {
		return
	}
	if saveErr := s.store.Save(ctx, *run); saveErr != nil {
		logger.Warn("failed to record run %s: %v", run.ID, saveErr)
	}
}

// List returns up to limit recent runs.
func (s *RunService) List(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if s.store == nil {
		return []domain.RunRecord{}, nil
	}
	return s.store.List(ctx, limit)
}
