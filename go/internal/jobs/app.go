package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mdevlin/squadup/go/internal/club"
	"github.com/mdevlin/squadup/go/internal/models"
)

// JobsRepository defines what the app layer needs from the repository
type JobsRepository interface {
	UpsertQueued(ctx context.Context, userID uuid.UUID, teamName string) (*models.TeamCreationJob, error)
	JobByUser(ctx context.Context, userID uuid.UUID) (*models.TeamCreationJob, error)
}

// TeamsRepository defines what the app layer needs from the club repository
// for the already-exists check
type TeamsRepository interface {
	GetTeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error)
}

// UsersRepository defines what the app layer needs from the users repository
type UsersRepository interface {
	UpdateOnboardingStep(ctx context.Context, id uuid.UUID, step models.OnboardingStep) (*models.User, error)
}

// App handles team creation request business logic. The request path only
// enqueues; the creation worker does the heavy lifting later.
type App struct {
	repo      JobsRepository
	teamsRepo TeamsRepository
	usersRepo UsersRepository
}

// NewApp creates a new jobs App
func NewApp(repo JobsRepository, teamsRepo TeamsRepository, usersRepo UsersRepository) *App {
	return &App{
		repo:      repo,
		teamsRepo: teamsRepo,
		usersRepo: usersRepo,
	}
}

// RequestTeamCreationResult is the outcome of a team creation request
type RequestTeamCreationResult struct {
	AlreadyExists bool                    `json:"already_exists"`
	Job           *models.TeamCreationJob `json:"job,omitempty"`
}

// RequestTeamCreation enqueues (or resets) the user's team creation job and
// flags the user as CREATING_TEAM. It returns immediately; the worker picks
// the job up on a later tick. A user who already has a team gets an
// already-exists result and no job is written.
func (a *App) RequestTeamCreation(ctx context.Context, userID uuid.UUID, teamName string) (*RequestTeamCreationResult, error) {
	if teamName == "" {
		return nil, fmt.Errorf("team name is required")
	}

	_, err := a.teamsRepo.GetTeamByUser(ctx, userID)
	if err == nil {
		return &RequestTeamCreationResult{AlreadyExists: true}, nil
	}
	if !errors.Is(err, club.ErrTeamNotFound) {
		return nil, err
	}

	job, err := a.repo.UpsertQueued(ctx, userID, teamName)
	if err != nil {
		return nil, err
	}

	if _, err := a.usersRepo.UpdateOnboardingStep(ctx, userID, models.OnboardingStepCreatingTeam); err != nil {
		return nil, err
	}

	log.Printf("Queued team creation job %s for user %s", job.ID, userID)
	return &RequestTeamCreationResult{Job: job}, nil
}

// JobStatus returns the user's job row, or nil when none exists
func (a *App) JobStatus(ctx context.Context, userID uuid.UUID) (*models.TeamCreationJob, error) {
	job, err := a.repo.JobByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}
