package market

import (
	"github.com/google/uuid"
)

// EventTypeTransferCompleted is emitted through the outbox after every
// successful purchase.
const EventTypeTransferCompleted = "transfer.completed"

// TransferCompletedEvent is the outbox payload for a completed purchase
type TransferCompletedEvent struct {
	TransferID     uuid.UUID `json:"transfer_id"`
	PlayerID       uuid.UUID `json:"player_id"`
	PlayerName     string    `json:"player_name"`
	SellerTeamID   uuid.UUID `json:"seller_team_id"`
	BuyerTeamID    uuid.UUID `json:"buyer_team_id"`
	SoldPriceCents int64     `json:"sold_price_cents"`
}
