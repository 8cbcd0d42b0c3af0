package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mdevlin/squadup/go/internal/models"
	"github.com/mdevlin/squadup/go/internal/sqlutil"
	"github.com/mdevlin/squadup/go/internal/users/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateUser(ctx context.Context, email sql.NullString) (db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (db.User, error)
	UpdateUsername(ctx context.Context, arg db.UpdateUsernameParams) (db.User, error)
	UpdateOnboardingStep(ctx context.Context, arg db.UpdateOnboardingStepParams) (db.User, error)
}

// Repository implements user data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new users repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateUser creates a new user at the NEED_USERNAME step
func (r *Repository) CreateUser(ctx context.Context, email *string) (*models.User, error) {
	user, err := r.queries.CreateUser(ctx, sqlutil.ToSqlString(email))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return dbUserToModel(user), nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := r.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return dbUserToModel(user), nil
}

// UpdateUsername sets the user's username and onboarding step together.
// A unique constraint collision surfaces as ErrUsernameTaken.
func (r *Repository) UpdateUsername(ctx context.Context, id uuid.UUID, username string, step models.OnboardingStep) (*models.User, error) {
	user, err := r.queries.UpdateUsername(ctx, db.UpdateUsernameParams{
		ID:             id,
		Username:       sql.NullString{String: username, Valid: true},
		OnboardingStep: string(step),
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update username: %w", err)
	}
	return dbUserToModel(user), nil
}

// UpdateOnboardingStep advances a user's onboarding step
func (r *Repository) UpdateOnboardingStep(ctx context.Context, id uuid.UUID, step models.OnboardingStep) (*models.User, error) {
	user, err := r.queries.UpdateOnboardingStep(ctx, db.UpdateOnboardingStepParams{
		ID:             id,
		OnboardingStep: string(step),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update onboarding step: %w", err)
	}
	return dbUserToModel(user), nil
}

func dbUserToModel(dbUser db.User) *models.User {
	return &models.User{
		ID:             dbUser.ID,
		Email:          sqlutil.FromSqlStringPtr(dbUser.Email),
		Username:       sqlutil.FromSqlStringPtr(dbUser.Username),
		OnboardingStep: models.OnboardingStep(dbUser.OnboardingStep),
		CreatedAt:      dbUser.CreatedAt,
	}
}
