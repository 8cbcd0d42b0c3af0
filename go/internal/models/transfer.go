package models

import (
	"time"

	"github.com/google/uuid"
)

// Transfer is the immutable audit record of one completed purchase. It
// snapshots the player's attributes and both teams' balances at sale time and
// is never mutated or deleted.
type Transfer struct {
	ID                  uuid.UUID `json:"id"`
	PlayerID            uuid.UUID `json:"player_id"`
	SellerTeamID        uuid.UUID `json:"seller_team_id"`
	BuyerTeamID         uuid.UUID `json:"buyer_team_id"`
	AskingPriceCents    int64     `json:"asking_price_cents"`
	SoldPriceCents      int64     `json:"sold_price_cents"`
	SnapshotPosition    Position  `json:"snapshot_position"`
	SnapshotSkill       int       `json:"snapshot_skill"`
	SnapshotTactic      int       `json:"snapshot_tactic"`
	SnapshotPhysical    int       `json:"snapshot_physical"`
	BuyerBalanceBefore  int64     `json:"buyer_balance_before"`
	BuyerBalanceAfter   int64     `json:"buyer_balance_after"`
	SellerBalanceBefore int64     `json:"seller_balance_before"`
	SellerBalanceAfter  int64     `json:"seller_balance_after"`
	CreatedAt           time.Time `json:"created_at"`
}
