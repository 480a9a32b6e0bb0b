package i

import (
	"context"

	"github.com/google/uuid"
)

// Standing is a player's position on the leaderboard. Rank starts at 1.
type Standing struct {
	PlayerID uuid.UUID
	Score    int
	Rank     int
}

// Leaderboard keeps the best score of every player.
type Leaderboard interface {
	// Submit records score for the player unless a higher one is already stored.
	Submit(ctx context.Context, playerID uuid.UUID, score int) error

	// Top returns up to limit standings, best first.
	Top(ctx context.Context, limit int) ([]Standing, error)

	// Standing returns the player's rank and best score.
	Standing(ctx context.Context, playerID uuid.UUID) (Standing, error)
}
