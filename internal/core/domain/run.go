package domain

import "time"

// RunStatus is the outcome of a recorded command.
type RunStatus string

// Run statuses.
const (
	RunStatusOK     RunStatus = "ok"
	RunStatusFailed RunStatus = "failed"
)

// RunRecord is one entry of the pipeline history.
type RunRecord struct {
	// ID is a UUID assigned when the run starts.
	ID string `json:"id"`

	// Command is the CLI command name (preprocess, train, eval, predict).
	Command string `json:"command"`

	// Status is the outcome.
	Status RunStatus `json:"status"`

	// Detail is a short human-readable summary or the error text.
	Detail string `json:"detail,omitempty"`

	// Metrics holds evaluation metrics, if any.
	Metrics *Metrics `json:"metrics,omitempty"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Duration returns how long the run took.
func (r *RunRecord) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
