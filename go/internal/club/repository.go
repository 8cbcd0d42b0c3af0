package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mdevlin/squadup/go/internal/club/db"
	"github.com/mdevlin/squadup/go/internal/club/generator"
	"github.com/mdevlin/squadup/go/internal/models"
	"github.com/mdevlin/squadup/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	CreatePlayer(ctx context.Context, arg db.CreatePlayerParams) (db.Player, error)
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	GetTeamByUser(ctx context.Context, userID uuid.UUID) (db.Team, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)
	GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]db.Player, error)
	CountPlayersByTeam(ctx context.Context, teamID uuid.UUID) (int64, error)
}

// Repository implements team and roster data access
type Repository struct {
	database *sql.DB
	queries  *db.Queries
}

// NewRepository creates a new club repository
func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
	}
}

type CreateTeamRequest struct {
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	BudgetCents int64     `json:"budget_cents"`
}

// CreateTeamWithSquad creates the team row and its full squad inside one
// transaction. A failure partway leaves neither a half-built team nor any
// orphaned players. A concurrent team for the same user surfaces as
// ErrTeamExists via the unique constraint on user_id.
func (r *Repository) CreateTeamWithSquad(ctx context.Context, req CreateTeamRequest, squad []generator.PlayerSpec) (*models.Team, error) {
	var team *models.Team

	err := sqlutil.Run(ctx, r.database,
		func(tx *sql.Tx) *db.Queries { return r.queries.WithTx(tx) },
		func(q *db.Queries) error {
			created, err := q.CreateTeam(ctx, db.CreateTeamParams{
				UserID:      req.UserID,
				Name:        req.Name,
				BudgetCents: req.BudgetCents,
			})
			if err != nil {
				if sqlutil.IsUniqueViolation(err) {
					return ErrTeamExists
				}
				return fmt.Errorf("failed to create team: %w", err)
			}

			for _, spec := range squad {
				if _, err := q.CreatePlayer(ctx, db.CreatePlayerParams{
					TeamID:   created.ID,
					Name:     spec.Name,
					Position: string(spec.Position),
					Skill:    int32(spec.Skill),
					Tactic:   int32(spec.Tactic),
					Physical: int32(spec.Physical),
				}); err != nil {
					return fmt.Errorf("failed to create player: %w", err)
				}
			}

			team = dbTeamToModel(created)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return dbTeamToModel(team), nil
}

// GetTeamByUser retrieves a user's team
func (r *Repository) GetTeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error) {
	team, err := r.queries.GetTeamByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team by user: %w", err)
	}
	return dbTeamToModel(team), nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return dbPlayerToModel(player), nil
}

// GetPlayersByTeam retrieves a team's roster
func (r *Repository) GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	players, err := r.queries.GetPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by team: %w", err)
	}

	result := make([]models.Player, len(players))
	for i, p := range players {
		result[i] = *dbPlayerToModel(p)
	}
	return result, nil
}

// CountPlayersByTeam returns the current roster size for a team
func (r *Repository) CountPlayersByTeam(ctx context.Context, teamID uuid.UUID) (int64, error) {
	count, err := r.queries.CountPlayersByTeam(ctx, teamID)
	if err != nil {
		return 0, fmt.Errorf("failed to count players by team: %w", err)
	}
	return count, nil
}

func dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:          dbTeam.ID,
		UserID:      dbTeam.UserID,
		Name:        dbTeam.Name,
		BudgetCents: dbTeam.BudgetCents,
		CreatedAt:   dbTeam.CreatedAt,
	}
}

func dbPlayerToModel(dbPlayer db.Player) *models.Player {
	return &models.Player{
		ID:        dbPlayer.ID,
		TeamID:    dbPlayer.TeamID,
		Name:      dbPlayer.Name,
		Position:  models.Position(dbPlayer.Position),
		Skill:     int(dbPlayer.Skill),
		Tactic:    int(dbPlayer.Tactic),
		Physical:  int(dbPlayer.Physical),
		CreatedAt: dbPlayer.CreatedAt,
	}
}
