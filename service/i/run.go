package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-runner/domain"
	"github.com/beka-birhanu/maze-runner/game"
	"github.com/google/uuid"
)

// LeaderboardEntry is a leaderboard standing with the player's name resolved.
type LeaderboardEntry struct {
	Rank     int
	PlayerID uuid.UUID
	Username string
	Score    int
}

// RunManager drives runs from start to finish.
type RunManager interface {
	Start(ctx context.Context, playerID uuid.UUID, difficulty string) (*dmn.Run, game.Layout, error)
	Run(ctx context.Context, playerID, runID uuid.UUID) (*dmn.Run, error)
	Layout(ctx context.Context, playerID, runID uuid.UUID) (game.Layout, error)
	SubmitLevel(ctx context.Context, playerID, runID uuid.UUID, level int, trace []game.Input) (*dmn.Run, error)
	Abandon(ctx context.Context, playerID, runID uuid.UUID) (*dmn.Run, error)
	History(ctx context.Context, playerID uuid.UUID, limit int) ([]*dmn.Run, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	Standing(ctx context.Context, playerID uuid.UUID) (LeaderboardEntry, error)
}
