package users

import "errors"

var (
	// ErrUserNotFound is returned when a user id resolves to nothing
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the requested username already exists
	ErrUsernameTaken = errors.New("username already taken")
)
