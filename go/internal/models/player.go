package models

import (
	"time"

	"github.com/google/uuid"
)

// Position is a player's field position
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MD"
	PositionForward    Position = "FW"
)

// Player represents a player on a team's roster. A player belongs to exactly
// one team at any instant; team_id is reassigned on purchase.
type Player struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Name      string    `json:"name"`
	Position  Position  `json:"position"`
	Skill     int       `json:"skill"`
	Tactic    int       `json:"tactic"`
	Physical  int       `json:"physical"`
	CreatedAt time.Time `json:"created_at"`
}
