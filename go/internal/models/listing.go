package models

import (
	"time"

	"github.com/google/uuid"
)

// TransferListing marks a player as for sale. At most one listing exists per
// player and it is deleted when the player is sold or unlisted.
type TransferListing struct {
	PlayerID         uuid.UUID `json:"player_id"`
	TeamID           uuid.UUID `json:"team_id"`
	AskingPriceCents int64     `json:"asking_price_cents"`
	CreatedAt        time.Time `json:"created_at"`
}
