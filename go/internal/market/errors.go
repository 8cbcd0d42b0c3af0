package market

import "errors"

var (
	// ErrNoTeam is returned when the acting user has no team
	ErrNoTeam = errors.New("user has no team")
	// ErrPlayerNotFound is returned when the player does not exist
	ErrPlayerNotFound = errors.New("player not found")
	// ErrNotYourPlayer is returned when a user lists or unlists a player
	// owned by another team
	ErrNotYourPlayer = errors.New("player belongs to another team")
	// ErrNotListed is returned when the player has no open listing
	ErrNotListed = errors.New("player is not listed for sale")
	// ErrOwnPlayer is returned when a buyer tries to purchase from themselves
	ErrOwnPlayer = errors.New("cannot buy your own player")
	// ErrRosterFull is returned when the buyer's roster is at capacity
	ErrRosterFull = errors.New("roster is full")
	// ErrInsufficientBudget is returned when the buyer cannot afford the sale price
	ErrInsufficientBudget = errors.New("insufficient budget")
	// ErrSellerMissing is returned when the selling team row cannot be found
	ErrSellerMissing = errors.New("selling team not found")
	// ErrInvalidPrice is returned for a non-positive asking price
	ErrInvalidPrice = errors.New("asking price must be positive")
	// ErrTransferNotFound is returned when the transfer does not exist
	ErrTransferNotFound = errors.New("transfer not found")
)
