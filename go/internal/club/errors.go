package club

import "errors"

var (
	// ErrTeamNotFound is returned when a user has no team yet
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamExists is returned when a team already exists for the user
	ErrTeamExists = errors.New("team already exists for user")
	// ErrPlayerNotFound is returned when a player id resolves to nothing
	ErrPlayerNotFound = errors.New("player not found")
)
