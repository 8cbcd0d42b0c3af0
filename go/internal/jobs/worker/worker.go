package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mdevlin/squadup/go/internal/club"
	"github.com/mdevlin/squadup/go/internal/jobs"
	"github.com/mdevlin/squadup/go/internal/models"
)

// JobStore defines what the worker needs from the jobs repository
type JobStore interface {
	ClaimOldestQueued(ctx context.Context) (*models.TeamCreationJob, error)
	CompleteJob(ctx context.Context, jobID, userID uuid.UUID) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, errText string) error
}

// SquadCreator defines what the worker needs from the club app
type SquadCreator interface {
	CreateTeamWithSquad(ctx context.Context, userID uuid.UUID, name string) (*models.Team, error)
}

type Config struct {
	PollInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		PollInterval: 1500 * time.Millisecond,
	}
}

// Worker polls for queued team creation jobs and executes them. Multiple
// instances may run against the same database; the claim query hands each
// job to exactly one of them.
type Worker struct {
	store   JobStore
	creator SquadCreator
	config  Config
	clock   clockwork.Clock

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewWorker(store JobStore, creator SquadCreator, cfg Config, clock clockwork.Clock) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	return &Worker{
		store:    store,
		creator:  creator,
		config:   cfg,
		clock:    clock,
		stopChan: make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("creation worker already running")
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run(ctx)

	log.Info().
		Dur("poll_interval", w.config.PollInterval).
		Msg("creation worker started")

	return nil
}

func (w *Worker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return fmt.Errorf("creation worker not running")
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()

	log.Info().Msg("creation worker stopped")
	return nil
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	ticker := w.clock.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	// One claim-and-process cycle per tick, so a burst of signups is paced
	// at one team build per interval.
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-ticker.Chan():
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	if err := w.processOne(ctx); err != nil && !errors.Is(err, jobs.ErrNoQueuedJobs) {
		log.Error().Err(err).Msg("failed to process team creation job")
	}
}

// processOne claims the oldest queued job and runs it to a terminal state.
// A claim failure is returned; an execution failure is recorded on the job
// row and nil is returned so the loop keeps running.
func (w *Worker) processOne(ctx context.Context) error {
	job, err := w.store.ClaimOldestQueued(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Str("job_id", job.ID.String()).
		Str("user_id", job.UserID.String()).
		Str("team_name", job.TeamName).
		Msg("claimed team creation job")

	team, err := w.creator.CreateTeamWithSquad(ctx, job.UserID, job.TeamName)
	if err != nil {
		// A team appearing between enqueue and execution still means the
		// user is done onboarding, so the job counts as complete.
		if errors.Is(err, club.ErrTeamExists) {
			log.Warn().
				Str("job_id", job.ID.String()).
				Str("user_id", job.UserID.String()).
				Msg("team already exists, completing job")
			return w.completeJob(ctx, job)
		}

		log.Error().
			Err(err).
			Str("job_id", job.ID.String()).
			Str("user_id", job.UserID.String()).
			Msg("team creation failed")

		if markErr := w.store.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
			return fmt.Errorf("mark job failed: %w", markErr)
		}
		return nil
	}

	log.Info().
		Str("job_id", job.ID.String()).
		Str("team_id", team.ID.String()).
		Str("team_name", team.Name).
		Msg("team created")

	return w.completeJob(ctx, job)
}

func (w *Worker) completeJob(ctx context.Context, job *models.TeamCreationJob) error {
	if err := w.store.CompleteJob(ctx, job.ID, job.UserID); err != nil {
		return fmt.Errorf("complete job: %w", err)
	}
	return nil
}
