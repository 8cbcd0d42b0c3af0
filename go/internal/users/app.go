package users

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mdevlin/squadup/go/internal/club"
	"github.com/mdevlin/squadup/go/internal/jobs"
	"github.com/mdevlin/squadup/go/internal/models"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, email *string) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUsername(ctx context.Context, id uuid.UUID, username string, step models.OnboardingStep) (*models.User, error)
	UpdateOnboardingStep(ctx context.Context, id uuid.UUID, step models.OnboardingStep) (*models.User, error)
}

// TeamsRepository defines what the app layer needs from the club repository
type TeamsRepository interface {
	GetTeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error)
}

// JobsRepository defines what the app layer needs from the jobs repository
type JobsRepository interface {
	JobByUser(ctx context.Context, userID uuid.UUID) (*models.TeamCreationJob, error)
}

// App handles user business logic
type App struct {
	repo      UsersRepository
	teamsRepo TeamsRepository
	jobsRepo  JobsRepository
}

// NewApp creates a new users App
func NewApp(repo UsersRepository, teamsRepo TeamsRepository, jobsRepo JobsRepository) *App {
	return &App{
		repo:      repo,
		teamsRepo: teamsRepo,
		jobsRepo:  jobsRepo,
	}
}

// CreateUser creates a new user
func (a *App) CreateUser(ctx context.Context, email *string) (*models.User, error) {
	user, err := a.repo.CreateUser(ctx, email)
	if err != nil {
		return nil, err
	}
	log.Printf("Created user %s", user.ID)
	return user, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return a.repo.GetUser(ctx, id)
}

// SetUsername claims a username for the user. The first successful claim
// advances onboarding from NEED_USERNAME to NEED_TEAM; later renames keep the
// current step.
func (a *App) SetUsername(ctx context.Context, id uuid.UUID, username string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	step := user.OnboardingStep
	if step == models.OnboardingStepNeedUsername {
		step = models.OnboardingStepNeedTeam
	}

	updated, err := a.repo.UpdateUsername(ctx, id, username, step)
	if err != nil {
		return nil, err
	}

	log.Printf("User %s claimed username %q", id, username)
	return updated, nil
}

// OnboardingStatus derives the user's onboarding step from user, team and job
// state. It is computed on demand, never stored, so the job subsystem's
// internal states do not leak to clients.
func (a *App) OnboardingStatus(ctx context.Context, id uuid.UUID) (models.OnboardingStep, error) {
	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return "", err
	}

	if user.Username == nil {
		return models.OnboardingStepNeedUsername, nil
	}

	_, err = a.teamsRepo.GetTeamByUser(ctx, id)
	if err == nil {
		return models.OnboardingStepReady, nil
	}
	if !errors.Is(err, club.ErrTeamNotFound) {
		return "", err
	}

	job, err := a.jobsRepo.JobByUser(ctx, id)
	if err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			return models.OnboardingStepNeedTeam, nil
		}
		return "", err
	}
	if job.Status != models.JobStatusDone {
		return models.OnboardingStepCreatingTeam, nil
	}
	return models.OnboardingStepNeedTeam, nil
}
