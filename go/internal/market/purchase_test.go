package market

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdevlin/squadup/go/internal/market/db"
)

// fakeQuerier backs the purchase logic with in-memory maps
type fakeQuerier struct {
	teams     map[uuid.UUID]db.Team
	players   map[uuid.UUID]db.Player
	listings  map[uuid.UUID]db.TransferListing
	transfers []db.Transfer
	outbox    []db.MarketOutbox
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{
		teams:    make(map[uuid.UUID]db.Team),
		players:  make(map[uuid.UUID]db.Player),
		listings: make(map[uuid.UUID]db.TransferListing),
	}
}

func (f *fakeQuerier) GetTeamByUserForUpdate(ctx context.Context, userID uuid.UUID) (db.Team, error) {
	for _, t := range f.teams {
		if t.UserID == userID {
			return t, nil
		}
	}
	return db.Team{}, sql.ErrNoRows
}

func (f *fakeQuerier) GetTeamForUpdate(ctx context.Context, id uuid.UUID) (db.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return db.Team{}, sql.ErrNoRows
	}
	return t, nil
}

func (f *fakeQuerier) GetPlayerForUpdate(ctx context.Context, id uuid.UUID) (db.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return db.Player{}, sql.ErrNoRows
	}
	return p, nil
}

func (f *fakeQuerier) GetListing(ctx context.Context, playerID uuid.UUID) (db.TransferListing, error) {
	l, ok := f.listings[playerID]
	if !ok {
		return db.TransferListing{}, sql.ErrNoRows
	}
	return l, nil
}

func (f *fakeQuerier) CountPlayersByTeam(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range f.players {
		if p.TeamID == teamID {
			n++
		}
	}
	return n, nil
}

func (f *fakeQuerier) CreditTeamBudget(ctx context.Context, arg db.CreditTeamBudgetParams) error {
	t := f.teams[arg.ID]
	t.BudgetCents += arg.BudgetCents
	f.teams[arg.ID] = t
	return nil
}

func (f *fakeQuerier) DebitTeamBudget(ctx context.Context, arg db.DebitTeamBudgetParams) error {
	t := f.teams[arg.ID]
	t.BudgetCents -= arg.BudgetCents
	f.teams[arg.ID] = t
	return nil
}

func (f *fakeQuerier) ReassignPlayer(ctx context.Context, arg db.ReassignPlayerParams) error {
	p := f.players[arg.ID]
	p.TeamID = arg.TeamID
	f.players[arg.ID] = p
	return nil
}

func (f *fakeQuerier) DeleteListing(ctx context.Context, playerID uuid.UUID) error {
	delete(f.listings, playerID)
	return nil
}

func (f *fakeQuerier) CreateTransfer(ctx context.Context, arg db.CreateTransferParams) (db.Transfer, error) {
	t := db.Transfer{
		ID:                  uuid.New(),
		PlayerID:            arg.PlayerID,
		SellerTeamID:        arg.SellerTeamID,
		BuyerTeamID:         arg.BuyerTeamID,
		AskingPriceCents:    arg.AskingPriceCents,
		SoldPriceCents:      arg.SoldPriceCents,
		SnapshotPosition:    arg.SnapshotPosition,
		SnapshotSkill:       arg.SnapshotSkill,
		SnapshotTactic:      arg.SnapshotTactic,
		SnapshotPhysical:    arg.SnapshotPhysical,
		BuyerBalanceBefore:  arg.BuyerBalanceBefore,
		BuyerBalanceAfter:   arg.BuyerBalanceAfter,
		SellerBalanceBefore: arg.SellerBalanceBefore,
		SellerBalanceAfter:  arg.SellerBalanceAfter,
		CreatedAt:           time.Now(),
	}
	f.transfers = append(f.transfers, t)
	return t, nil
}

func (f *fakeQuerier) CreateOutboxEvent(ctx context.Context, arg db.CreateOutboxEventParams) (db.MarketOutbox, error) {
	e := db.MarketOutbox{
		ID:        uuid.New(),
		EventType: arg.EventType,
		Payload:   arg.Payload,
		CreatedAt: time.Now(),
	}
	f.outbox = append(f.outbox, e)
	return e, nil
}

type marketFixture struct {
	q           *fakeQuerier
	buyerUserID uuid.UUID
	buyerTeamID uuid.UUID
	sellerTeam  uuid.UUID
	playerID    uuid.UUID
}

// newMarketFixture sets up a seller with one listed player and a buyer with
// the given budget and roster size.
func newMarketFixture(buyerBudget int64, buyerRoster int, askingPrice int64) marketFixture {
	q := newFakeQuerier()

	buyerUserID := uuid.New()
	buyerTeamID := uuid.New()
	q.teams[buyerTeamID] = db.Team{
		ID:          buyerTeamID,
		UserID:      buyerUserID,
		Name:        "Rovers",
		BudgetCents: buyerBudget,
	}
	for i := 0; i < buyerRoster; i++ {
		id := uuid.New()
		q.players[id] = db.Player{ID: id, TeamID: buyerTeamID, Name: "Filler", Position: "MD", Skill: 60, Tactic: 60, Physical: 60}
	}

	sellerTeamID := uuid.New()
	q.teams[sellerTeamID] = db.Team{
		ID:          sellerTeamID,
		UserID:      uuid.New(),
		Name:        "United",
		BudgetCents: 1_000_000,
	}

	playerID := uuid.New()
	q.players[playerID] = db.Player{
		ID:       playerID,
		TeamID:   sellerTeamID,
		Name:     "Jordan Vale",
		Position: "FW",
		Skill:    88,
		Tactic:   74,
		Physical: 91,
	}
	q.listings[playerID] = db.TransferListing{
		PlayerID:         playerID,
		TeamID:           sellerTeamID,
		AskingPriceCents: askingPrice,
	}

	return marketFixture{
		q:           q,
		buyerUserID: buyerUserID,
		buyerTeamID: buyerTeamID,
		sellerTeam:  sellerTeamID,
		playerID:    playerID,
	}
}

func totalBudget(q *fakeQuerier) int64 {
	var sum int64
	for _, t := range q.teams {
		sum += t.BudgetCents
	}
	return sum
}

func TestPurchaseHappyPath(t *testing.T) {
	fx := newMarketFixture(500_000, 5, 100_000)
	before := totalBudget(fx.q)

	transfer, err := purchase(context.Background(), fx.q, fx.buyerUserID, fx.playerID)
	require.NoError(t, err)

	// 95% of the asking price moves, once, in each direction
	assert.Equal(t, int64(95_000), transfer.SoldPriceCents)
	assert.Equal(t, int64(100_000), transfer.AskingPriceCents)
	assert.Equal(t, int64(500_000), transfer.BuyerBalanceBefore)
	assert.Equal(t, int64(405_000), transfer.BuyerBalanceAfter)
	assert.Equal(t, int64(1_000_000), transfer.SellerBalanceBefore)
	assert.Equal(t, int64(1_095_000), transfer.SellerBalanceAfter)

	assert.Equal(t, int64(405_000), fx.q.teams[fx.buyerTeamID].BudgetCents)
	assert.Equal(t, int64(1_095_000), fx.q.teams[fx.sellerTeam].BudgetCents)
	assert.Equal(t, before, totalBudget(fx.q), "total money must be conserved")

	assert.Equal(t, fx.buyerTeamID, fx.q.players[fx.playerID].TeamID)
	assert.NotContains(t, fx.q.listings, fx.playerID)

	// Snapshot reflects the player at sale time
	assert.Equal(t, "FW", string(transfer.SnapshotPosition))
	assert.Equal(t, 88, transfer.SnapshotSkill)
	assert.Equal(t, 74, transfer.SnapshotTactic)
	assert.Equal(t, 91, transfer.SnapshotPhysical)
}

func TestPurchasePriceTruncates(t *testing.T) {
	// 95% of 333 is 316.35; integer math truncates to 316
	fx := newMarketFixture(500_000, 5, 333)

	transfer, err := purchase(context.Background(), fx.q, fx.buyerUserID, fx.playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(316), transfer.SoldPriceCents)
}

func TestPurchaseWritesOutboxEvent(t *testing.T) {
	fx := newMarketFixture(500_000, 5, 100_000)

	transfer, err := purchase(context.Background(), fx.q, fx.buyerUserID, fx.playerID)
	require.NoError(t, err)

	require.Len(t, fx.q.outbox, 1)
	assert.Equal(t, EventTypeTransferCompleted, fx.q.outbox[0].EventType)

	var event TransferCompletedEvent
	require.NoError(t, json.Unmarshal(fx.q.outbox[0].Payload.RawMessage, &event))
	assert.Equal(t, transfer.ID, event.TransferID)
	assert.Equal(t, fx.playerID, event.PlayerID)
	assert.Equal(t, "Jordan Vale", event.PlayerName)
	assert.Equal(t, int64(95_000), event.SoldPriceCents)
}

func TestPurchaseBuyerHasNoTeam(t *testing.T) {
	fx := newMarketFixture(500_000, 5, 100_000)

	_, err := purchase(context.Background(), fx.q, uuid.New(), fx.playerID)
	assert.ErrorIs(t, err, ErrNoTeam)
}

func TestPurchasePlayerNotFound(t *testing.T) {
	fx := newMarketFixture(500_000, 5, 100_000)

	_, err := purchase(context.Background(), fx.q, fx.buyerUserID, uuid.New())
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPurchaseNotListed(t *testing.T) {
	fx := newMarketFixture(500_000, 5, 100_000)
	delete(fx.q.listings, fx.playerID)

	_, err := purchase(context.Background(), fx.q, fx.buyerUserID, fx.playerID)
	assert.ErrorIs(t, err, ErrNotListed)
}

func TestPurchaseOwnPlayer(t *testing.T) {
	fx := newMarketFixture(500_000, 5, 100_000)

	// Move the listed player onto the buyer's own roster
	p := fx.q.players[fx.playerID]
	p.TeamID = fx.buyerTeamID
	fx.q.players[fx.playerID] = p

	_, err := purchase(context.Background(), fx.q, fx.buyerUserID, fx.playerID)
	assert.ErrorIs(t, err, ErrOwnPlayer)
}

func TestPurchaseRosterFull(t *testing.T) {
	fx := newMarketFixture(500_000, RosterCap, 100_000)

	_, err := purchase(context.Background(), fx.q, fx.buyerUserID, fx.playerID)
	assert.ErrorIs(t, err, ErrRosterFull)
	assert.Contains(t, fx.q.listings, fx.playerID)
}

func TestPurchaseInsufficientBudget(t *testing.T) {
	// Budget covers 94% of asking but not the 95% sale price
	fx := newMarketFixture(94_999, 5, 100_000)

	_, err := purchase(context.Background(), fx.q, fx.buyerUserID, fx.playerID)
	assert.ErrorIs(t, err, ErrInsufficientBudget)
	assert.Equal(t, int64(94_999), fx.q.teams[fx.buyerTeamID].BudgetCents)
}

func TestPurchaseBudgetExactlyCoversSalePrice(t *testing.T) {
	fx := newMarketFixture(95_000, 5, 100_000)

	transfer, err := purchase(context.Background(), fx.q, fx.buyerUserID, fx.playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), transfer.BuyerBalanceAfter)
}

func TestPurchaseSellerMissing(t *testing.T) {
	fx := newMarketFixture(500_000, 5, 100_000)
	delete(fx.q.teams, fx.sellerTeam)

	_, err := purchase(context.Background(), fx.q, fx.buyerUserID, fx.playerID)
	assert.ErrorIs(t, err, ErrSellerMissing)
}
