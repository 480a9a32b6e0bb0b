package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-runner/domain"
	"github.com/google/uuid"
)

// PlayerRepo defines the interface for player persistence operations.
type PlayerRepo interface {
	// Save inserts or updates a player in the repository.
	// If the player already exists, it updates the record. Otherwise, it creates a new one.
	Save(ctx context.Context, player *dmn.Player) error

	// ByID retrieves a player by their unique ID.
	// Returns dmn.ErrPlayerNotFound if no player matches.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Player, error)

	// ByUsername retrieves a player by their username.
	// Returns dmn.ErrPlayerNotFound if no player matches.
	ByUsername(ctx context.Context, username string) (*dmn.Player, error)
}

// RunRepo defines the interface for run persistence operations.
type RunRepo interface {
	// Save inserts or replaces a run.
	Save(ctx context.Context, run *dmn.Run) error

	// ByID retrieves a run by ID. Returns dmn.ErrRunNotFound if no run matches.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Run, error)

	// ByPlayer returns the most recent runs of a player, newest first.
	ByPlayer(ctx context.Context, playerID uuid.UUID, limit int) ([]*dmn.Run, error)
}
