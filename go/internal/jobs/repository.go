package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mdevlin/squadup/go/internal/jobs/db"
	"github.com/mdevlin/squadup/go/internal/models"
	"github.com/mdevlin/squadup/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	UpsertQueuedJob(ctx context.Context, arg db.UpsertQueuedJobParams) (db.TeamCreationJob, error)
	ClaimOldestQueuedJob(ctx context.Context) (db.TeamCreationJob, error)
	MarkJobDone(ctx context.Context, id uuid.UUID) error
	MarkJobFailed(ctx context.Context, arg db.MarkJobFailedParams) error
	GetJobByUser(ctx context.Context, userID uuid.UUID) (db.TeamCreationJob, error)
	UpdateUserOnboardingStep(ctx context.Context, arg db.UpdateUserOnboardingStepParams) error
}

// Repository implements team creation job data access
type Repository struct {
	database *sql.DB
	queries  *db.Queries
}

// NewRepository creates a new jobs repository
func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
	}
}

// UpsertQueued creates or resets the single job row for a user back to
// queued, clearing any prior error.
func (r *Repository) UpsertQueued(ctx context.Context, userID uuid.UUID, teamName string) (*models.TeamCreationJob, error) {
	job, err := r.queries.UpsertQueuedJob(ctx, db.UpsertQueuedJobParams{
		UserID:   userID,
		TeamName: teamName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert queued job: %w", err)
	}
	return dbJobToModel(job), nil
}

// ClaimOldestQueued atomically transitions the oldest queued job to running
// and returns it. The conditional update uses FOR UPDATE SKIP LOCKED, so two
// concurrent claimers can never receive the same job; the loser gets
// ErrNoQueuedJobs.
func (r *Repository) ClaimOldestQueued(ctx context.Context) (*models.TeamCreationJob, error) {
	job, err := r.queries.ClaimOldestQueuedJob(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoQueuedJobs
		}
		return nil, fmt.Errorf("failed to claim queued job: %w", err)
	}
	return dbJobToModel(job), nil
}

// CompleteJob marks the job done and advances the user's onboarding step to
// READY in one transaction, so a client can never observe a finished job with
// a user still stuck in CREATING_TEAM.
func (r *Repository) CompleteJob(ctx context.Context, jobID, userID uuid.UUID) error {
	return sqlutil.Run(ctx, r.database,
		func(tx *sql.Tx) *db.Queries { return r.queries.WithTx(tx) },
		func(q *db.Queries) error {
			if err := q.MarkJobDone(ctx, jobID); err != nil {
				return fmt.Errorf("failed to mark job done: %w", err)
			}
			if err := q.UpdateUserOnboardingStep(ctx, db.UpdateUserOnboardingStepParams{
				ID:             userID,
				OnboardingStep: string(models.OnboardingStepReady),
			}); err != nil {
				return fmt.Errorf("failed to update onboarding step: %w", err)
			}
			return nil
		})
}

// MarkFailed records a terminal failure on the job row. The row is retained
// so the error stays visible and a later re-submission can reset it.
func (r *Repository) MarkFailed(ctx context.Context, jobID uuid.UUID, errText string) error {
	if err := r.queries.MarkJobFailed(ctx, db.MarkJobFailedParams{
		ID:    jobID,
		Error: sql.NullString{String: errText, Valid: true},
	}); err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}
	return nil
}

// JobByUser retrieves a user's job row
func (r *Repository) JobByUser(ctx context.Context, userID uuid.UUID) (*models.TeamCreationJob, error) {
	job, err := r.queries.GetJobByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job by user: %w", err)
	}
	return dbJobToModel(job), nil
}

func dbJobToModel(dbJob db.TeamCreationJob) *models.TeamCreationJob {
	return &models.TeamCreationJob{
		ID:        dbJob.ID,
		UserID:    dbJob.UserID,
		TeamName:  dbJob.TeamName,
		Status:    models.JobStatus(dbJob.Status),
		Error:     sqlutil.FromSqlStringPtr(dbJob.Error),
		CreatedAt: dbJob.CreatedAt,
	}
}
