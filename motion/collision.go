package motion

import (
	"math"

	"github.com/beka-birhanu/maze-runner/maze"
)

// CheckPointCollision reports whether a and b are closer than threshold.
func CheckPointCollision(a, b Vector, threshold float64) bool {
	return math.Hypot(b.X-a.X, b.Y-a.Y) < threshold
}

// CheckRectangleCollision reports whether two boxes overlap with positive area.
func CheckRectangleCollision(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// GridPosition returns the cell containing a world point.
func GridPosition(world Vector, cellSize float64) maze.Position {
	return maze.Position{
		X: cellIndex(world.X, cellSize),
		Y: cellIndex(world.Y, cellSize),
	}
}

// WorldPosition returns the center of a cell in world units.
func WorldPosition(cell maze.Position, cellSize float64) Vector {
	return Vector{
		X: float64(cell.X)*cellSize + cellSize/2,
		Y: float64(cell.Y)*cellSize + cellSize/2,
	}
}

// CenteredAt returns the top-left corner that centers a box of the given size on p.
func CenteredAt(p Vector, size Size) Vector {
	return Vector{X: p.X - size.W/2, Y: p.Y - size.H/2}
}

// IsPositionWalkable reports whether the cell under a world point is passable in v.
func IsPositionWalkable(world Vector, v *maze.OccupancyView, cellSize float64) bool {
	if v == nil || !(cellSize > 0) {
		return false
	}
	return v.PassableCell(GridPosition(world, cellSize))
}

// NearestWalkable returns target when its cell is passable. Otherwise it searches
// square rings of growing radius around that cell and returns the center of the
// first passable cell found, or target when none lies within radius.
func NearestWalkable(target Vector, v *maze.OccupancyView, cellSize float64, radius int) Vector {
	if IsPositionWalkable(target, v, cellSize) {
		return target
	}
	if v == nil || !(cellSize > 0) {
		return target
	}

	origin := GridPosition(target, cellSize)
	for r := 1; r <= radius; r++ {
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if abs(dx) != r && abs(dy) != r {
					continue
				}
				cell := maze.Position{X: origin.X + dx, Y: origin.Y + dy}
				if v.PassableCell(cell) {
					return WorldPosition(cell, cellSize)
				}
			}
		}
	}
	return target
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
