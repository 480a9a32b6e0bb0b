// Package runapi exposes runs, level layouts and the leaderboard over HTTP.
package runapi

import (
	"time"

	dmn "github.com/beka-birhanu/maze-runner/domain"
	"github.com/beka-birhanu/maze-runner/game"
	"github.com/beka-birhanu/maze-runner/service/i"
)

// StartRequest selects the difficulty of a new run.
type StartRequest struct {
	Difficulty string `json:"difficulty"`
}

// SubmitRequest carries the input trace that solved a level.
type SubmitRequest struct {
	Level  int          `json:"level" binding:"required,min=1"`
	Inputs []game.Input `json:"inputs"`
}

// RunResponse is the public view of a run.
type RunResponse struct {
	ID          string                `json:"id"`
	Difficulty  string                `json:"difficulty"`
	Level       int                   `json:"level"`
	Score       int                   `json:"score"`
	Status      string                `json:"status"`
	Completions []dmn.LevelCompletion `json:"completions"`
	StartedAt   time.Time             `json:"started_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// StartResponse is returned when a run starts.
type StartResponse struct {
	Run    RunResponse `json:"run"`
	Layout game.Layout `json:"layout"`
}

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

func toLeaderboardEntry(e i.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		Rank:     e.Rank,
		PlayerID: e.PlayerID.String(),
		Username: e.Username,
		Score:    e.Score,
	}
}

func toRunResponse(r *dmn.Run) RunResponse {
	return RunResponse{
		ID:          r.ID.String(),
		Difficulty:  string(r.Difficulty),
		Level:       r.Level,
		Score:       r.Score,
		Status:      string(r.Status),
		Completions: r.Completions,
		StartedAt:   r.StartedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
