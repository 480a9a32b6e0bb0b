package game

import (
	"math/rand"

	"github.com/beka-birhanu/maze-runner/maze"
)

// PlacementRules bounds the random search for spawn points and sets the minimum
// Manhattan distance, in cells, between placed items.
type PlacementRules struct {
	PlayerAttempts int // PlayerAttempts is the number of tries to spawn in the top-left quadrant.
	GoalAttempts   int
	BonusAttempts  int

	GoalFromPlayer  int
	BonusFromPlayer int
	BonusFromGoal   int
	BonusFromBonus  int
}

// DefaultPlacementRules keeps the goal and bonuses away from the spawn point.
var DefaultPlacementRules = PlacementRules{
	PlayerAttempts:  10,
	GoalAttempts:    50,
	BonusAttempts:   20,
	GoalFromPlayer:  5,
	BonusFromPlayer: 5,
	BonusFromGoal:   3,
	BonusFromBonus:  3,
}

// Placement holds the cells chosen for the player and the collectibles.
type Placement struct {
	Player  maze.Position   `json:"player"`
	Goal    maze.Position   `json:"goal"`
	Bonuses []maze.Position `json:"bonuses"`
}

// Manhattan returns the grid distance between two cells.
func Manhattan(a, b maze.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Place picks spawn cells from the empty cells of view. Each search gives up after
// its attempt budget and keeps the last candidate, so separation is best effort
// on small mazes.
func Place(m *maze.Maze, view *maze.OccupancyView, bonuses int, rules PlacementRules, rng *rand.Rand) Placement {
	var p Placement

	p.Player = maze.RandomEmptyCell(view, rng)
	for i := 1; i < rules.PlayerAttempts && !inTopLeftQuadrant(m, p.Player); i++ {
		p.Player = maze.RandomEmptyCell(view, rng)
	}

	p.Goal = sample(view, rng, rules.GoalAttempts, func(c maze.Position) bool {
		return Manhattan(c, p.Player) >= rules.GoalFromPlayer
	})

	p.Bonuses = make([]maze.Position, 0, bonuses)
	for i := 0; i < bonuses; i++ {
		b := sample(view, rng, rules.BonusAttempts, func(c maze.Position) bool {
			if Manhattan(c, p.Player) < rules.BonusFromPlayer || Manhattan(c, p.Goal) < rules.BonusFromGoal {
				return false
			}
			for _, other := range p.Bonuses {
				if Manhattan(c, other) < rules.BonusFromBonus {
					return false
				}
			}
			return true
		})
		p.Bonuses = append(p.Bonuses, b)
	}
	return p
}

// sample draws empty cells until ok accepts one or the attempts run out.
func sample(view *maze.OccupancyView, rng *rand.Rand, attempts int, ok func(maze.Position) bool) maze.Position {
	c := maze.RandomEmptyCell(view, rng)
	for i := 1; i < attempts && !ok(c); i++ {
		c = maze.RandomEmptyCell(view, rng)
	}
	return c
}

func inTopLeftQuadrant(m *maze.Maze, c maze.Position) bool {
	return c.X <= m.Width()/2 && c.Y <= m.Height()/2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
