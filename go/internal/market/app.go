package market

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/mdevlin/squadup/go/internal/models"
)

// MarketRepository defines what the app layer needs from the repository
type MarketRepository interface {
	Purchase(ctx context.Context, buyerUserID, playerID uuid.UUID) (*models.Transfer, error)
	TeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error)
	Player(ctx context.Context, id uuid.UUID) (*models.Player, error)
	Listing(ctx context.Context, playerID uuid.UUID) (*models.TransferListing, error)
	UpsertListing(ctx context.Context, playerID, teamID uuid.UUID, askingPriceCents int64) (*models.TransferListing, error)
	DeleteListing(ctx context.Context, playerID uuid.UUID) error
	OpenListings(ctx context.Context) ([]models.TransferListing, error)
	ListingsByTeam(ctx context.Context, teamID uuid.UUID) ([]models.TransferListing, error)
	Transfer(ctx context.Context, id uuid.UUID) (*models.Transfer, error)
	TransfersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Transfer, error)
}

// App handles marketplace business logic
type App struct {
	repo MarketRepository
}

// NewApp creates a new market App
func NewApp(repo MarketRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListPlayerForSale lists one of the user's own players at an asking price.
// Listing an already-listed player reprices it.
func (a *App) ListPlayerForSale(ctx context.Context, userID, playerID uuid.UUID, askingPriceCents int64) (*models.TransferListing, error) {
	if askingPriceCents <= 0 {
		return nil, ErrInvalidPrice
	}

	team, err := a.repo.TeamByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	player, err := a.repo.Player(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.TeamID != team.ID {
		return nil, ErrNotYourPlayer
	}

	listing, err := a.repo.UpsertListing(ctx, playerID, team.ID, askingPriceCents)
	if err != nil {
		return nil, err
	}

	log.Printf("Listed player %s for %d cents by team %s", playerID, askingPriceCents, team.ID)
	return listing, nil
}

// UnlistPlayer withdraws the listing on one of the user's own players.
// Idempotent: unlisting a player with no open listing succeeds as a no-op.
func (a *App) UnlistPlayer(ctx context.Context, userID, playerID uuid.UUID) error {
	team, err := a.repo.TeamByUser(ctx, userID)
	if err != nil {
		return err
	}

	player, err := a.repo.Player(ctx, playerID)
	if err != nil {
		return err
	}
	if player.TeamID != team.ID {
		return ErrNotYourPlayer
	}

	if err := a.repo.DeleteListing(ctx, playerID); err != nil {
		return err
	}

	log.Printf("Unlisted player %s by team %s", playerID, team.ID)
	return nil
}

// PurchasePlayer buys a listed player for the acting user's team
func (a *App) PurchasePlayer(ctx context.Context, userID, playerID uuid.UUID) (*models.Transfer, error) {
	transfer, err := a.repo.Purchase(ctx, userID, playerID)
	if err != nil {
		return nil, err
	}

	log.Printf("Transfer %s: player %s sold for %d cents from team %s to team %s",
		transfer.ID, transfer.PlayerID, transfer.SoldPriceCents, transfer.SellerTeamID, transfer.BuyerTeamID)
	return transfer, nil
}

// OpenListings returns every player currently for sale
func (a *App) OpenListings(ctx context.Context) ([]models.TransferListing, error) {
	return a.repo.OpenListings(ctx)
}

// ListingsByTeam returns a team's open listings
func (a *App) ListingsByTeam(ctx context.Context, teamID uuid.UUID) ([]models.TransferListing, error) {
	return a.repo.ListingsByTeam(ctx, teamID)
}

// Transfer returns one transfer record
func (a *App) Transfer(ctx context.Context, id uuid.UUID) (*models.Transfer, error) {
	return a.repo.Transfer(ctx, id)
}

// TransfersByTeam returns a team's transfer history, both sides
func (a *App) TransfersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Transfer, error) {
	return a.repo.TransfersByTeam(ctx, teamID)
}
