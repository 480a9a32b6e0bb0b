// Package motion keeps a continuously moving box inside the wall topology of a maze.
//
// Coordinates are continuous units where one cell spans cellSize units. A position
// always names the top-left corner of the actor's bounding box.
package motion

import (
	"math"

	"github.com/beka-birhanu/maze-runner/maze"
)

// WallSource exposes the wall topology the resolver collides against.
// *maze.Maze satisfies it.
type WallSource interface {
	Width() int
	Height() int
	HasWall(x, y int, d maze.Direction) bool
}

var _ WallSource = (*maze.Maze)(nil)

// Result is the outcome of one resolved move.
type Result struct {
	Position Vector // Position is where the actor ends up this tick.
	Moved    bool   // Moved is false when every candidate move was blocked.
}

// ResolveMove returns the farthest of the candidate moves the walls allow:
// the full move, then the horizontal part alone, then the vertical part alone.
// When all three are blocked the input position is returned unchanged.
func ResolveMove(pos, delta Vector, actor Size, walls WallSource, cellSize float64) Result {
	stay := Result{Position: pos}
	if walls == nil || !(cellSize > 0) || !delta.finite() {
		return stay
	}
	actor = actor.clamped()

	candidates := [3]Vector{
		{X: pos.X + delta.X, Y: pos.Y + delta.Y},
		{X: pos.X + delta.X, Y: pos.Y},
		{X: pos.X, Y: pos.Y + delta.Y},
	}
	for _, c := range candidates {
		if c == pos {
			continue
		}
		if canMove(pos, c, actor, walls, cellSize) {
			return Result{Position: c, Moved: true}
		}
	}
	return stay
}

// canMove reports whether the box can travel in a straight line from one corner
// position to another. The destination box must lie inside the grid, and no wall
// segment may cross the region swept by the box.
func canMove(from, to Vector, actor Size, walls WallSource, cellSize float64) bool {
	cols, rows := walls.Width(), walls.Height()

	left, top, right, bottom := cellSpan(to.X, to.Y, to.X+actor.W, to.Y+actor.H, cellSize)
	if left < 0 || top < 0 || right >= cols || bottom >= rows {
		return false
	}

	left, top, right, bottom = cellSpan(
		math.Min(from.X, to.X), math.Min(from.Y, to.Y),
		math.Max(from.X, to.X)+actor.W, math.Max(from.Y, to.Y)+actor.H,
		cellSize,
	)
	left, top = max(left, 0), max(top, 0)
	right, bottom = min(right, cols-1), min(bottom, rows-1)

	// Vertical wall segments inside the swept region.
	for y := top; y <= bottom; y++ {
		for x := left; x < right; x++ {
			if walls.HasWall(x, y, maze.Right) {
				return false
			}
		}
	}
	// Horizontal wall segments inside the swept region.
	for x := left; x <= right; x++ {
		for y := top; y < bottom; y++ {
			if walls.HasWall(x, y, maze.Bottom) {
				return false
			}
		}
	}
	return true
}

// cellSpan converts a box given by its edges into the inclusive range of cells it touches.
func cellSpan(minX, minY, maxX, maxY, cellSize float64) (left, top, right, bottom int) {
	return cellIndex(minX, cellSize), cellIndex(minY, cellSize),
		cellIndex(maxX, cellSize), cellIndex(maxY, cellSize)
}

func cellIndex(v, cellSize float64) int {
	f := math.Floor(v / cellSize)
	if math.IsNaN(f) || f < math.MinInt32 {
		return math.MinInt32
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
