package game

import "math"

// Difficulty scaling constants.
const (
	MaxLevel = 10 // MaxLevel is the last level; collecting its goal wins the run.

	minMazeSize = 20
	maxMazeSize = 40

	baseTimeSeconds     = 30
	timePerLevelSeconds = 2
	maxTimeSeconds      = baseTimeSeconds + 18

	maxBonusTokens = 4
)

// difficulty is one row of the per-level relaxation table.
type difficulty struct {
	name  string
	ratio float64
}

var difficulties = [MaxLevel]difficulty{
	{name: "Very Easy", ratio: 0.65},
	{name: "Very Easy", ratio: 0.58},
	{name: "Easy", ratio: 0.50},
	{name: "Easy", ratio: 0.42},
	{name: "Medium", ratio: 0.35},
	{name: "Medium", ratio: 0.28},
	{name: "Hard", ratio: 0.15},
	{name: "Very Hard", ratio: 0.08},
	{name: "Extreme", ratio: 0.04},
	{name: "Nightmare", ratio: 0.02},
}

// LevelConfig holds the maze parameters and rules for one level.
type LevelConfig struct {
	Level           int     `json:"level"`
	Name            string  `json:"name"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	RelaxationRatio float64 `json:"relaxation_ratio"`
	TimeLimit       int     `json:"time_limit"` // TimeLimit is the countdown in seconds.
	Bonuses         int     `json:"bonuses"`    // Bonuses is the number of bonus tokens placed.
}

// ConfigForLevel returns the configuration for a level. Early levels are small and
// open; the maze grows and fills in as the level number rises. Levels below 1 are
// treated as 1 and levels past MaxLevel reuse the last row of the table.
func ConfigForLevel(level int) LevelConfig {
	level = max(level, 1)

	progress := math.Min(float64(level-1)/float64(MaxLevel-1), 1)
	size := int(math.Floor(minMazeSize + float64(maxMazeSize-minMazeSize)*progress))
	d := difficulties[min(level, MaxLevel)-1]

	return LevelConfig{
		Level:           level,
		Name:            d.name,
		Width:           size,
		Height:          size,
		RelaxationRatio: d.ratio,
		TimeLimit:       min(baseTimeSeconds+(level-1)*timePerLevelSeconds, maxTimeSeconds),
		Bonuses:         max(1, maxBonusTokens-level),
	}
}
