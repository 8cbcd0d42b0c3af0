package models

import (
	"time"

	"github.com/google/uuid"
)

// Team is a user's club. Exactly one per user; the budget is mutated only by
// marketplace purchases.
type Team struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	BudgetCents int64     `json:"budget_cents"`
	CreatedAt   time.Time `json:"created_at"`
}
