package market

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/mdevlin/squadup/go/internal/market/db"
	"github.com/mdevlin/squadup/go/internal/models"
	"github.com/mdevlin/squadup/go/internal/sqlutil"
)

// RosterCap is the maximum roster size a purchase may grow a team to.
const RosterCap = 25

// saleCut is the fraction of the asking price the seller actually receives,
// in percent. The buyer pays the same discounted amount.
const saleCut = 95

// Querier defines what the purchase transaction needs from the database
// layer. All methods run against the same transaction.
type Querier interface {
	GetTeamByUserForUpdate(ctx context.Context, userID uuid.UUID) (db.Team, error)
	GetTeamForUpdate(ctx context.Context, id uuid.UUID) (db.Team, error)
	GetPlayerForUpdate(ctx context.Context, id uuid.UUID) (db.Player, error)
	GetListing(ctx context.Context, playerID uuid.UUID) (db.TransferListing, error)
	CountPlayersByTeam(ctx context.Context, teamID uuid.UUID) (int64, error)
	CreditTeamBudget(ctx context.Context, arg db.CreditTeamBudgetParams) error
	DebitTeamBudget(ctx context.Context, arg db.DebitTeamBudgetParams) error
	ReassignPlayer(ctx context.Context, arg db.ReassignPlayerParams) error
	DeleteListing(ctx context.Context, playerID uuid.UUID) error
	CreateTransfer(ctx context.Context, arg db.CreateTransferParams) (db.Transfer, error)
	CreateOutboxEvent(ctx context.Context, arg db.CreateOutboxEventParams) (db.MarketOutbox, error)
}

// Repository implements marketplace data access
type Repository struct {
	database *sql.DB
	queries  *db.Queries
}

// NewRepository creates a new market repository
func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
	}
}

// Purchase executes the whole purchase as one transaction. Either every
// effect lands (budgets moved, player reassigned, listing deleted, transfer
// and outbox event written) or none do.
func (r *Repository) Purchase(ctx context.Context, buyerUserID, playerID uuid.UUID) (*models.Transfer, error) {
	var transfer *models.Transfer
	err := sqlutil.Run(ctx, r.database,
		func(tx *sql.Tx) *db.Queries { return r.queries.WithTx(tx) },
		func(q *db.Queries) error {
			t, err := purchase(ctx, q, buyerUserID, playerID)
			if err != nil {
				return err
			}
			transfer = t
			return nil
		})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// purchase holds the purchase logic against an open transaction. The player
// row lock is the serialization point: of two concurrent buyers, the second
// waits on the lock and then fails on the already-deleted listing.
func purchase(ctx context.Context, q Querier, buyerUserID, playerID uuid.UUID) (*models.Transfer, error) {
	buyer, err := q.GetTeamByUserForUpdate(ctx, buyerUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoTeam
		}
		return nil, fmt.Errorf("failed to lock buyer team: %w", err)
	}

	player, err := q.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to lock player: %w", err)
	}

	listing, err := q.GetListing(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotListed
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	if player.TeamID == buyer.ID {
		return nil, ErrOwnPlayer
	}

	rosterSize, err := q.CountPlayersByTeam(ctx, buyer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count buyer roster: %w", err)
	}
	if rosterSize >= RosterCap {
		return nil, ErrRosterFull
	}

	// Computed once and used for both sides of the money movement, so the
	// sum of the two budgets is invariant across the purchase.
	payCents := listing.AskingPriceCents * saleCut / 100

	if buyer.BudgetCents < payCents {
		return nil, ErrInsufficientBudget
	}

	seller, err := q.GetTeamForUpdate(ctx, player.TeamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSellerMissing
		}
		return nil, fmt.Errorf("failed to lock seller team: %w", err)
	}

	if err := q.CreditTeamBudget(ctx, db.CreditTeamBudgetParams{
		ID:          seller.ID,
		BudgetCents: payCents,
	}); err != nil {
		return nil, fmt.Errorf("failed to credit seller: %w", err)
	}
	if err := q.DebitTeamBudget(ctx, db.DebitTeamBudgetParams{
		ID:          buyer.ID,
		BudgetCents: payCents,
	}); err != nil {
		return nil, fmt.Errorf("failed to debit buyer: %w", err)
	}
	if err := q.ReassignPlayer(ctx, db.ReassignPlayerParams{
		ID:     player.ID,
		TeamID: buyer.ID,
	}); err != nil {
		return nil, fmt.Errorf("failed to reassign player: %w", err)
	}
	if err := q.DeleteListing(ctx, player.ID); err != nil {
		return nil, fmt.Errorf("failed to delete listing: %w", err)
	}

	dbTransfer, err := q.CreateTransfer(ctx, db.CreateTransferParams{
		PlayerID:            player.ID,
		SellerTeamID:        seller.ID,
		BuyerTeamID:         buyer.ID,
		AskingPriceCents:    listing.AskingPriceCents,
		SoldPriceCents:      payCents,
		SnapshotPosition:    player.Position,
		SnapshotSkill:       player.Skill,
		SnapshotTactic:      player.Tactic,
		SnapshotPhysical:    player.Physical,
		BuyerBalanceBefore:  buyer.BudgetCents,
		BuyerBalanceAfter:   buyer.BudgetCents - payCents,
		SellerBalanceBefore: seller.BudgetCents,
		SellerBalanceAfter:  seller.BudgetCents + payCents,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	payload, err := json.Marshal(TransferCompletedEvent{
		TransferID:     dbTransfer.ID,
		PlayerID:       player.ID,
		PlayerName:     player.Name,
		SellerTeamID:   seller.ID,
		BuyerTeamID:    buyer.ID,
		SoldPriceCents: payCents,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transfer event: %w", err)
	}
	if _, err := q.CreateOutboxEvent(ctx, db.CreateOutboxEventParams{
		EventType: EventTypeTransferCompleted,
		Payload:   pqtype.NullRawMessage{RawMessage: payload, Valid: true},
	}); err != nil {
		return nil, fmt.Errorf("failed to write outbox event: %w", err)
	}

	return dbTransferToModel(dbTransfer), nil
}

// TeamByUser retrieves a user's team
func (r *Repository) TeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error) {
	team, err := r.queries.GetTeamByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoTeam
		}
		return nil, fmt.Errorf("failed to get team by user: %w", err)
	}
	return dbTeamToModel(team), nil
}

// Player retrieves a player by ID
func (r *Repository) Player(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return dbPlayerToModel(player), nil
}

// Listing retrieves a player's open listing
func (r *Repository) Listing(ctx context.Context, playerID uuid.UUID) (*models.TransferListing, error) {
	listing, err := r.queries.GetListing(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotListed
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return dbListingToModel(listing), nil
}

// UpsertListing creates or reprices a player's listing
func (r *Repository) UpsertListing(ctx context.Context, playerID, teamID uuid.UUID, askingPriceCents int64) (*models.TransferListing, error) {
	listing, err := r.queries.UpsertListing(ctx, db.UpsertListingParams{
		PlayerID:         playerID,
		TeamID:           teamID,
		AskingPriceCents: askingPriceCents,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert listing: %w", err)
	}
	return dbListingToModel(listing), nil
}

// DeleteListing removes a player's listing
func (r *Repository) DeleteListing(ctx context.Context, playerID uuid.UUID) error {
	if err := r.queries.DeleteListing(ctx, playerID); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}

// OpenListings retrieves every open listing, newest first
func (r *Repository) OpenListings(ctx context.Context) ([]models.TransferListing, error) {
	listings, err := r.queries.ListOpenListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open listings: %w", err)
	}
	out := make([]models.TransferListing, len(listings))
	for i, l := range listings {
		out[i] = *dbListingToModel(l)
	}
	return out, nil
}

// ListingsByTeam retrieves a team's open listings, newest first
func (r *Repository) ListingsByTeam(ctx context.Context, teamID uuid.UUID) ([]models.TransferListing, error) {
	listings, err := r.queries.ListListingsByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings by team: %w", err)
	}
	out := make([]models.TransferListing, len(listings))
	for i, l := range listings {
		out[i] = *dbListingToModel(l)
	}
	return out, nil
}

// Transfer retrieves a transfer by ID
func (r *Repository) Transfer(ctx context.Context, id uuid.UUID) (*models.Transfer, error) {
	transfer, err := r.queries.GetTransfer(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return dbTransferToModel(transfer), nil
}

// TransfersByTeam retrieves every transfer a team took part in, on either
// side, newest first.
func (r *Repository) TransfersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Transfer, error) {
	transfers, err := r.queries.ListTransfersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers by team: %w", err)
	}
	out := make([]models.Transfer, len(transfers))
	for i, t := range transfers {
		out[i] = *dbTransferToModel(t)
	}
	return out, nil
}

func dbTeamToModel(t db.Team) *models.Team {
	return &models.Team{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		BudgetCents: t.BudgetCents,
		CreatedAt:   t.CreatedAt,
	}
}

func dbPlayerToModel(p db.Player) *models.Player {
	return &models.Player{
		ID:        p.ID,
		TeamID:    p.TeamID,
		Name:      p.Name,
		Position:  models.Position(p.Position),
		Skill:     int(p.Skill),
		Tactic:    int(p.Tactic),
		Physical:  int(p.Physical),
		CreatedAt: p.CreatedAt,
	}
}

func dbListingToModel(l db.TransferListing) *models.TransferListing {
	return &models.TransferListing{
		PlayerID:         l.PlayerID,
		TeamID:           l.TeamID,
		AskingPriceCents: l.AskingPriceCents,
		CreatedAt:        l.CreatedAt,
	}
}

func dbTransferToModel(t db.Transfer) *models.Transfer {
	return &models.Transfer{
		ID:                  t.ID,
		PlayerID:            t.PlayerID,
		SellerTeamID:        t.SellerTeamID,
		BuyerTeamID:         t.BuyerTeamID,
		AskingPriceCents:    t.AskingPriceCents,
		SoldPriceCents:      t.SoldPriceCents,
		SnapshotPosition:    models.Position(t.SnapshotPosition),
		SnapshotSkill:       int(t.SnapshotSkill),
		SnapshotTactic:      int(t.SnapshotTactic),
		SnapshotPhysical:    int(t.SnapshotPhysical),
		BuyerBalanceBefore:  t.BuyerBalanceBefore,
		BuyerBalanceAfter:   t.BuyerBalanceAfter,
		SellerBalanceBefore: t.SellerBalanceBefore,
		SellerBalanceAfter:  t.SellerBalanceAfter,
		CreatedAt:           t.CreatedAt,
	}
}
