package motion

import (
	"math"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/maze-runner/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridWalls is a hand-built wall layout. Only right and bottom sides are stored;
// left and top sides are read from the neighbor so the layout stays symmetric.
type gridWalls struct {
	w, h   int
	right  map[maze.Position]bool
	bottom map[maze.Position]bool
}

func newGridWalls(w, h int) *gridWalls {
	return &gridWalls{w: w, h: h, right: map[maze.Position]bool{}, bottom: map[maze.Position]bool{}}
}

func (g *gridWalls) Width() int  { return g.w }
func (g *gridWalls) Height() int { return g.h }

func (g *gridWalls) HasWall(x, y int, d maze.Direction) bool {
	p := maze.Position{X: x, Y: y}
	switch d {
	case maze.Right:
		return x == g.w-1 || g.right[p]
	case maze.Bottom:
		return y == g.h-1 || g.bottom[p]
	case maze.Left:
		return x == 0 || g.right[maze.Position{X: x - 1, Y: y}]
	case maze.Top:
		return y == 0 || g.bottom[maze.Position{X: x, Y: y - 1}]
	}
	return true
}

func TestResolveMove(t *testing.T) {
	actor := Square(12)
	const cell = 32.0

	t.Run("blocked by right wall of origin cell", func(t *testing.T) {
		walls := newGridWalls(2, 1)
		walls.right[maze.Position{X: 0, Y: 0}] = true

		got := ResolveMove(Vector{16, 16}, Vector{5, 0}, actor, walls, cell)
		assert.Equal(t, Result{Position: Vector{16, 16}, Moved: false}, got)
	})

	t.Run("open passage lets the box cross", func(t *testing.T) {
		walls := newGridWalls(2, 1)

		got := ResolveMove(Vector{16, 16}, Vector{5, 0}, actor, walls, cell)
		assert.Equal(t, Result{Position: Vector{21, 16}, Moved: true}, got)
	})

	t.Run("move inside the cell ignores walls", func(t *testing.T) {
		walls := newGridWalls(2, 1)
		walls.right[maze.Position{X: 0, Y: 0}] = true

		got := ResolveMove(Vector{4, 4}, Vector{3, 2}, actor, walls, cell)
		assert.Equal(t, Result{Position: Vector{7, 6}, Moved: true}, got)
	})

	t.Run("slides along a horizontal corridor", func(t *testing.T) {
		walls := newGridWalls(3, 3)
		for x := 0; x < 3; x++ {
			walls.bottom[maze.Position{X: x, Y: 0}] = true
			walls.bottom[maze.Position{X: x, Y: 1}] = true
		}

		got := ResolveMove(Vector{40, 48}, Vector{5, 5}, actor, walls, cell)
		assert.Equal(t, Result{Position: Vector{45, 48}, Moved: true}, got)

		got = ResolveMove(Vector{40, 34}, Vector{-6, -3}, actor, walls, cell)
		assert.Equal(t, Result{Position: Vector{34, 34}, Moved: true}, got)
	})

	t.Run("slides along a vertical corridor", func(t *testing.T) {
		walls := newGridWalls(3, 3)
		for y := 0; y < 3; y++ {
			walls.right[maze.Position{X: 0, Y: y}] = true
			walls.right[maze.Position{X: 1, Y: y}] = true
		}

		got := ResolveMove(Vector{48, 40}, Vector{7, 4}, actor, walls, cell)
		assert.Equal(t, Result{Position: Vector{48, 44}, Moved: true}, got)
	})

	t.Run("corner stops both axes", func(t *testing.T) {
		walls := newGridWalls(2, 2)
		walls.right[maze.Position{X: 0, Y: 0}] = true
		walls.bottom[maze.Position{X: 0, Y: 0}] = true

		pos := Vector{19.25, 19.5}
		got := ResolveMove(pos, Vector{2.5, 3.75}, actor, walls, cell)
		assert.False(t, got.Moved)
		assert.Equal(t, math.Float64bits(pos.X), math.Float64bits(got.Position.X))
		assert.Equal(t, math.Float64bits(pos.Y), math.Float64bits(got.Position.Y))
	})

	t.Run("outer boundary blocks", func(t *testing.T) {
		walls := newGridWalls(2, 2)

		got := ResolveMove(Vector{0, 0}, Vector{-3, -3}, actor, walls, cell)
		assert.Equal(t, Result{Position: Vector{0, 0}}, got)

		got = ResolveMove(Vector{51, 10}, Vector{2, 0}, actor, walls, cell)
		assert.False(t, got.Moved)

		got = ResolveMove(Vector{50, 10}, Vector{1, 0}, actor, walls, cell)
		assert.Equal(t, Result{Position: Vector{51, 10}, Moved: true}, got)
	})

	t.Run("large step cannot tunnel through a wall", func(t *testing.T) {
		walls := newGridWalls(3, 1)
		walls.right[maze.Position{X: 0, Y: 0}] = true

		got := ResolveMove(Vector{10, 10}, Vector{cell, 0}, actor, walls, cell)
		assert.False(t, got.Moved)
	})

	t.Run("zero and invalid input", func(t *testing.T) {
		walls := newGridWalls(2, 2)
		pos := Vector{10, 10}

		assert.Equal(t, Result{Position: pos}, ResolveMove(pos, Vector{}, actor, walls, cell))
		assert.Equal(t, Result{Position: pos}, ResolveMove(pos, Vector{math.NaN(), 1}, actor, walls, cell))
		assert.Equal(t, Result{Position: pos}, ResolveMove(pos, Vector{math.Inf(1), 0}, actor, walls, cell))
		assert.Equal(t, Result{Position: pos}, ResolveMove(pos, Vector{1, 1}, actor, nil, cell))
		assert.Equal(t, Result{Position: pos}, ResolveMove(pos, Vector{1, 1}, actor, walls, 0))
	})

	t.Run("pure vertical move reports movement only when it happens", func(t *testing.T) {
		walls := newGridWalls(1, 2)
		walls.bottom[maze.Position{X: 0, Y: 0}] = true

		got := ResolveMove(Vector{10, 18}, Vector{0, 4}, actor, walls, cell)
		assert.Equal(t, Result{Position: Vector{10, 18}}, got)
	})
}

func TestResolveMoveRandomWalk(t *testing.T) {
	m, err := maze.New(10, 10, 0.2, maze.WithSeed(31))
	require.NoError(t, err)
	require.NoError(t, m.Generate())

	const cell = 32.0
	actor := Square(12)
	extentX, extentY := float64(m.Width())*cell, float64(m.Height())*cell
	rng := rand.New(rand.NewSource(7))

	pos := CenteredAt(WorldPosition(maze.Position{X: 0, Y: 0}, cell), actor)
	for i := 0; i < 5000; i++ {
		delta := Vector{X: rng.Float64()*20 - 10, Y: rng.Float64()*20 - 10}
		got := ResolveMove(pos, delta, actor, m, cell)

		if !got.Moved {
			require.Equal(t, pos, got.Position)
		}
		require.GreaterOrEqual(t, got.Position.X, 0.0)
		require.GreaterOrEqual(t, got.Position.Y, 0.0)
		require.Less(t, got.Position.X+actor.W, extentX)
		require.Less(t, got.Position.Y+actor.H, extentY)
		// The box never rests across a wall.
		require.True(t, canMove(got.Position, got.Position, actor, m, cell), "tick %d at %+v", i, got.Position)

		pos = got.Position
	}
}
