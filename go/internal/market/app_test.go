package market_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdevlin/squadup/go/internal/market"
	"github.com/mdevlin/squadup/go/internal/models"
)

type fakeRepo struct {
	teamsByUser map[uuid.UUID]*models.Team
	players     map[uuid.UUID]*models.Player
	listings    map[uuid.UUID]*models.TransferListing
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		teamsByUser: make(map[uuid.UUID]*models.Team),
		players:     make(map[uuid.UUID]*models.Player),
		listings:    make(map[uuid.UUID]*models.TransferListing),
	}
}

func (r *fakeRepo) Purchase(ctx context.Context, buyerUserID, playerID uuid.UUID) (*models.Transfer, error) {
	return nil, market.ErrNotListed
}

func (r *fakeRepo) TeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error) {
	team, ok := r.teamsByUser[userID]
	if !ok {
		return nil, market.ErrNoTeam
	}
	return team, nil
}

func (r *fakeRepo) Player(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return nil, market.ErrPlayerNotFound
	}
	return player, nil
}

func (r *fakeRepo) Listing(ctx context.Context, playerID uuid.UUID) (*models.TransferListing, error) {
	listing, ok := r.listings[playerID]
	if !ok {
		return nil, market.ErrNotListed
	}
	return listing, nil
}

func (r *fakeRepo) UpsertListing(ctx context.Context, playerID, teamID uuid.UUID, askingPriceCents int64) (*models.TransferListing, error) {
	listing := &models.TransferListing{
		PlayerID:         playerID,
		TeamID:           teamID,
		AskingPriceCents: askingPriceCents,
	}
	r.listings[playerID] = listing
	return listing, nil
}

func (r *fakeRepo) DeleteListing(ctx context.Context, playerID uuid.UUID) error {
	delete(r.listings, playerID)
	return nil
}

func (r *fakeRepo) OpenListings(ctx context.Context) ([]models.TransferListing, error) {
	var out []models.TransferListing
	for _, l := range r.listings {
		out = append(out, *l)
	}
	return out, nil
}

func (r *fakeRepo) ListingsByTeam(ctx context.Context, teamID uuid.UUID) ([]models.TransferListing, error) {
	var out []models.TransferListing
	for _, l := range r.listings {
		if l.TeamID == teamID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeRepo) Transfer(ctx context.Context, id uuid.UUID) (*models.Transfer, error) {
	return nil, market.ErrTransferNotFound
}

func (r *fakeRepo) TransfersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Transfer, error) {
	return nil, nil
}

func seedOwner(r *fakeRepo) (userID uuid.UUID, teamID uuid.UUID, playerID uuid.UUID) {
	userID = uuid.New()
	teamID = uuid.New()
	playerID = uuid.New()
	r.teamsByUser[userID] = &models.Team{ID: teamID, UserID: userID, Name: "Rovers", BudgetCents: 500_000}
	r.players[playerID] = &models.Player{ID: playerID, TeamID: teamID, Name: "Jordan Vale", Position: models.PositionForward}
	return userID, teamID, playerID
}

func TestListPlayerForSale(t *testing.T) {
	repo := newFakeRepo()
	userID, teamID, playerID := seedOwner(repo)
	app := market.NewApp(repo)

	listing, err := app.ListPlayerForSale(context.Background(), userID, playerID, 100_000)
	require.NoError(t, err)

	assert.Equal(t, playerID, listing.PlayerID)
	assert.Equal(t, teamID, listing.TeamID)
	assert.Equal(t, int64(100_000), listing.AskingPriceCents)
}

func TestListPlayerForSaleReprices(t *testing.T) {
	repo := newFakeRepo()
	userID, _, playerID := seedOwner(repo)
	app := market.NewApp(repo)

	_, err := app.ListPlayerForSale(context.Background(), userID, playerID, 100_000)
	require.NoError(t, err)

	listing, err := app.ListPlayerForSale(context.Background(), userID, playerID, 150_000)
	require.NoError(t, err)
	assert.Equal(t, int64(150_000), listing.AskingPriceCents)
}

func TestListPlayerForSaleInvalidPrice(t *testing.T) {
	repo := newFakeRepo()
	userID, _, playerID := seedOwner(repo)
	app := market.NewApp(repo)

	_, err := app.ListPlayerForSale(context.Background(), userID, playerID, 0)
	assert.ErrorIs(t, err, market.ErrInvalidPrice)

	_, err = app.ListPlayerForSale(context.Background(), userID, playerID, -50)
	assert.ErrorIs(t, err, market.ErrInvalidPrice)
}

func TestListPlayerForSaleNotOwned(t *testing.T) {
	repo := newFakeRepo()
	userID, _, _ := seedOwner(repo)
	_, _, otherPlayerID := seedOwner(repo)
	app := market.NewApp(repo)

	_, err := app.ListPlayerForSale(context.Background(), userID, otherPlayerID, 100_000)
	assert.ErrorIs(t, err, market.ErrNotYourPlayer)
}

func TestListPlayerForSaleNoTeam(t *testing.T) {
	repo := newFakeRepo()
	_, _, playerID := seedOwner(repo)
	app := market.NewApp(repo)

	_, err := app.ListPlayerForSale(context.Background(), uuid.New(), playerID, 100_000)
	assert.ErrorIs(t, err, market.ErrNoTeam)
}

func TestUnlistPlayer(t *testing.T) {
	repo := newFakeRepo()
	userID, _, playerID := seedOwner(repo)
	app := market.NewApp(repo)

	_, err := app.ListPlayerForSale(context.Background(), userID, playerID, 100_000)
	require.NoError(t, err)

	require.NoError(t, app.UnlistPlayer(context.Background(), userID, playerID))

	_, err = repo.Listing(context.Background(), playerID)
	assert.ErrorIs(t, err, market.ErrNotListed)
}

func TestUnlistPlayerNotOwned(t *testing.T) {
	repo := newFakeRepo()
	ownerID, _, playerID := seedOwner(repo)
	otherUserID, _, _ := seedOwner(repo)
	app := market.NewApp(repo)

	_, err := app.ListPlayerForSale(context.Background(), ownerID, playerID, 100_000)
	require.NoError(t, err)

	err = app.UnlistPlayer(context.Background(), otherUserID, playerID)
	assert.ErrorIs(t, err, market.ErrNotYourPlayer)

	// Listing survives the rejected unlist
	_, err = repo.Listing(context.Background(), playerID)
	assert.NoError(t, err)
}

func TestUnlistPlayerIdempotent(t *testing.T) {
	repo := newFakeRepo()
	userID, _, playerID := seedOwner(repo)
	app := market.NewApp(repo)

	// Unlisting an owned player with no open listing is a successful no-op
	assert.NoError(t, app.UnlistPlayer(context.Background(), userID, playerID))

	// And a second unlist after a real one is too
	_, err := app.ListPlayerForSale(context.Background(), userID, playerID, 100_000)
	require.NoError(t, err)
	require.NoError(t, app.UnlistPlayer(context.Background(), userID, playerID))
	assert.NoError(t, app.UnlistPlayer(context.Background(), userID, playerID))
}

func TestUnlistPlayerUnknownPlayer(t *testing.T) {
	repo := newFakeRepo()
	userID, _, _ := seedOwner(repo)
	app := market.NewApp(repo)

	err := app.UnlistPlayer(context.Background(), userID, uuid.New())
	assert.ErrorIs(t, err, market.ErrPlayerNotFound)
}
