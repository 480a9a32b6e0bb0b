package game

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/maze-runner/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigForLevel(t *testing.T) {
	tests := []struct {
		level   int
		size    int
		ratio   float64
		name    string
		time    int
		bonuses int
	}{
		{level: 1, size: 20, ratio: 0.65, name: "Very Easy", time: 30, bonuses: 3},
		{level: 2, size: 22, ratio: 0.58, name: "Very Easy", time: 32, bonuses: 2},
		{level: 3, size: 24, ratio: 0.50, name: "Easy", time: 34, bonuses: 1},
		{level: 5, size: 28, ratio: 0.35, name: "Medium", time: 38, bonuses: 1},
		{level: 7, size: 33, ratio: 0.15, name: "Hard", time: 42, bonuses: 1},
		{level: 10, size: 40, ratio: 0.02, name: "Nightmare", time: 48, bonuses: 1},
		{level: 14, size: 40, ratio: 0.02, name: "Nightmare", time: 48, bonuses: 1},
		{level: 0, size: 20, ratio: 0.65, name: "Very Easy", time: 30, bonuses: 3},
	}

	for _, tt := range tests {
		cfg := ConfigForLevel(tt.level)
		assert.Equal(t, tt.size, cfg.Width, "level %d", tt.level)
		assert.Equal(t, tt.size, cfg.Height, "level %d", tt.level)
		assert.Equal(t, tt.ratio, cfg.RelaxationRatio, "level %d", tt.level)
		assert.Equal(t, tt.name, cfg.Name, "level %d", tt.level)
		assert.Equal(t, tt.time, cfg.TimeLimit, "level %d", tt.level)
		assert.Equal(t, tt.bonuses, cfg.Bonuses, "level %d", tt.level)
	}

	for level := 1; level < MaxLevel; level++ {
		a, b := ConfigForLevel(level), ConfigForLevel(level+1)
		assert.GreaterOrEqual(t, b.Width, a.Width)
		assert.Less(t, b.RelaxationRatio, a.RelaxationRatio)
	}
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(maze.Position{X: 2, Y: 2}, maze.Position{X: 2, Y: 2}))
	assert.Equal(t, 7, Manhattan(maze.Position{X: 1, Y: 5}, maze.Position{X: 4, Y: 1}))
	assert.Equal(t, 7, Manhattan(maze.Position{X: 4, Y: 1}, maze.Position{X: 1, Y: 5}))
}

func TestPlace(t *testing.T) {
	inQuadrant := 0
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m, err := maze.New(20, 20, 0.3, maze.WithRand(rng))
		require.NoError(t, err)
		require.NoError(t, m.Generate())

		p := Place(m, m.ToOccupancyGrid(), 3, DefaultPlacementRules, rng)

		require.Len(t, p.Bonuses, 3)
		for _, c := range append([]maze.Position{p.Player, p.Goal}, p.Bonuses...) {
			assert.True(t, m.InBound(c.X, c.Y), "seed %d: %+v", seed, c)
		}
		assert.GreaterOrEqual(t, Manhattan(p.Player, p.Goal), 5, "seed %d", seed)
		if inTopLeftQuadrant(m, p.Player) {
			inQuadrant++
		}
	}
	assert.GreaterOrEqual(t, inQuadrant, 15)

	t.Run("tiny maze still places everything", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		m, err := maze.New(2, 2, 0, maze.WithRand(rng))
		require.NoError(t, err)
		require.NoError(t, m.Generate())

		p := Place(m, m.ToOccupancyGrid(), 2, DefaultPlacementRules, rng)
		assert.Len(t, p.Bonuses, 2)
		assert.True(t, m.InBound(p.Goal.X, p.Goal.Y))
	})
}
