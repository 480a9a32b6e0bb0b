package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidDifficulty is returned for an unknown difficulty name.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulty selects the level a run starts at.
type Difficulty string

// Difficulties.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps a name to a Difficulty. An empty name means Easy.
func ParseDifficulty(name string) (Difficulty, error) {
	switch Difficulty(name) {
	case "", Easy:
		return Easy, nil
	case Medium, Hard:
		return Difficulty(name), nil
	}
	return "", ErrInvalidDifficulty
}

// StartLevel returns the first level of a run at this difficulty.
func (d Difficulty) StartLevel() int {
	switch d {
	case Medium:
		return 4
	case Hard:
		return 8
	}
	return 1
}

// RunStatus is the lifecycle state of a run.
type RunStatus string

// Run statuses.
const (
	RunActive    RunStatus = "active"
	RunWon       RunStatus = "won"
	RunLost      RunStatus = "lost"
	RunAbandoned RunStatus = "abandoned"
)

// LevelCompletion is a verified level result.
type LevelCompletion struct {
	Level       int       `bson:"level" json:"level"`
	Points      int       `bson:"points" json:"points"`
	TimeLeft    int       `bson:"timeLeft" json:"time_left"`
	Bonuses     int       `bson:"bonuses" json:"bonuses"`
	Ticks       int       `bson:"ticks" json:"ticks"`
	CompletedAt time.Time `bson:"completedAt" json:"completed_at"`
}

// Run is one attempt by a player to clear consecutive levels. All levels are
// derived from Seed, which lets the server replay submitted input.
type Run struct {
	ID          uuid.UUID         `bson:"_id"`
	PlayerID    uuid.UUID         `bson:"playerId"`
	Seed        int64             `bson:"seed"`
	Difficulty  Difficulty        `bson:"difficulty"`
	Level       int               `bson:"level"` // Level is the level currently being played.
	Score       int               `bson:"score"`
	Status      RunStatus         `bson:"status"`
	Completions []LevelCompletion `bson:"completions"`
	StartedAt   time.Time         `bson:"startedAt"`
	UpdatedAt   time.Time         `bson:"updatedAt"`
}

// NewRun creates an active run at the first level of its difficulty.
func NewRun(id, playerID uuid.UUID, seed int64, d Difficulty) *Run {
	now := time.Now().UTC()
	return &Run{
		ID:          id,
		PlayerID:    playerID,
		Seed:        seed,
		Difficulty:  d,
		Level:       d.StartLevel(),
		Status:      RunActive,
		Completions: []LevelCompletion{},
		StartedAt:   now,
		UpdatedAt:   now,
	}
}

// Finished reports whether the run accepts no more submissions.
func (r *Run) Finished() bool {
	return r.Status != RunActive
}

// Complete records a verified level. The run is won when the level was the last one.
func (r *Run) Complete(c LevelCompletion, lastLevel int) {
	r.Completions = append(r.Completions, c)
	r.Score += c.Points
	r.UpdatedAt = c.CompletedAt
	if c.Level >= lastLevel {
		r.Status = RunWon
		return
	}
	r.Level = c.Level + 1
}

// End closes an active run with the given status.
func (r *Run) End(status RunStatus) {
	r.Status = status
	r.UpdatedAt = time.Now().UTC()
}
