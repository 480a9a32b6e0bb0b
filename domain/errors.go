package domain

import "errors"

// Repository errors.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrRunNotFound    = errors.New("run not found")
	ErrNotRanked      = errors.New("player has no score")
)
