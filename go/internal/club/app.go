package club

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mdevlin/squadup/go/internal/club/generator"
	"github.com/mdevlin/squadup/go/internal/models"
)

// InitialBudgetCents is the budget every new team starts with.
const InitialBudgetCents int64 = 5_000_000

// ClubRepository defines what the app layer needs from the repository
type ClubRepository interface {
	CreateTeamWithSquad(ctx context.Context, req CreateTeamRequest, squad []generator.PlayerSpec) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetTeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
}

// App handles team and roster business logic
type App struct {
	repo ClubRepository
	rand generator.Source
}

// NewApp creates a new club App
func NewApp(repo ClubRepository, rand generator.Source) *App {
	return &App{
		repo: repo,
		rand: rand,
	}
}

// CreateTeamWithSquad generates a full squad and persists it together with
// the new team. Called by the creation worker, never by the request path.
func (a *App) CreateTeamWithSquad(ctx context.Context, userID uuid.UUID, name string) (*models.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user_id is required")
	}

	squad := generator.NewSquad(a.rand)

	team, err := a.repo.CreateTeamWithSquad(ctx, CreateTeamRequest{
		UserID:      userID,
		Name:        name,
		BudgetCents: InitialBudgetCents,
	}, squad)
	if err != nil {
		return nil, err
	}

	log.Printf("Created team %s with %d players for user %s", team.Name, len(squad), userID)
	return team, nil
}

// TeamByUser retrieves a user's team
func (a *App) TeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error) {
	return a.repo.GetTeamByUser(ctx, userID)
}

// RosterByTeam retrieves a team's full roster
func (a *App) RosterByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	// Verify team exists
	if _, err := a.repo.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	return a.repo.GetPlayersByTeam(ctx, teamID)
}
