package models

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the state of a team creation job
type JobStatus string

const (
	JobStatusQueued  JobStatus = "queued"
	JobStatusRunning JobStatus = "running"
	JobStatusDone    JobStatus = "done"
	JobStatusFailed  JobStatus = "failed"
)

// TeamCreationJob is a durable record of one pending or finished team
// generation request. At most one job exists per user; re-submission resets
// the existing row back to queued.
type TeamCreationJob struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TeamName  string    `json:"team_name"`
	Status    JobStatus `json:"status"`
	Error     *string   `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
