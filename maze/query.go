package maze

import "math/rand"

// fallbackPosition is returned by random searches over a view with no passable square.
var fallbackPosition = Position{X: 1, Y: 1}

// RandomEmptyPosition returns a uniformly random passable square of the view.
// It returns (1,1) when the view has no passable square.
func RandomEmptyPosition(v *OccupancyView, rng *rand.Rand) Position {
	if v == nil || rng == nil {
		return fallbackPosition
	}

	empty := make([]Position, 0, len(v.blocked))
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			if !v.blocked[y*v.cols+x] {
				empty = append(empty, Position{X: x, Y: y})
			}
		}
	}
	if len(empty) == 0 {
		return fallbackPosition
	}
	return empty[rng.Intn(len(empty))]
}

// RandomEmptyCell is RandomEmptyPosition restricted to squares that stand for maze
// cells, returned in cell coordinates. The fallback is the cell under (1,1).
func RandomEmptyCell(v *OccupancyView, rng *rand.Rand) Position {
	if v == nil || rng == nil {
		return fallbackPosition
	}

	empty := make([]Position, 0, len(v.blocked))
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			if v.blocked[y*v.cols+x] {
				continue
			}
			if c, ok := v.ToCell(Position{X: x, Y: y}); ok {
				empty = append(empty, c)
			}
		}
	}
	if len(empty) == 0 {
		if c, ok := v.ToCell(fallbackPosition); ok {
			return c
		}
		return fallbackPosition
	}
	return empty[rng.Intn(len(empty))]
}

// ShortestPathLength runs a breadth-first search over 4-connected passable squares
// and returns the number of steps from start to end, or -1 when end is unreachable.
func ShortestPathLength(start, end Position, v *OccupancyView) int {
	if v == nil || !v.Passable(start) || !v.Passable(end) {
		return -1
	}
	if start == end {
		return 0
	}

	dist := make([]int, v.cols*v.rows)
	for i := range dist {
		dist[i] = -1
	}
	dist[start.Y*v.cols+start.X] = 0

	queue := []Position{start}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		curDist := dist[cur.Y*v.cols+cur.X]
		for _, d := range Directions {
			next := cur.Step(d)
			if !v.Passable(next) {
				continue
			}
			idx := next.Y*v.cols + next.X
			if dist[idx] >= 0 {
				continue
			}
			dist[idx] = curDist + 1
			if next == end {
				return dist[idx]
			}
			queue = append(queue, next)
		}
	}
	return -1
}

// PathLength returns the number of cell-to-cell moves on the shortest route between
// cells a and b that respects walls, or -1 when no route exists.
func (m *Maze) PathLength(a, b Position) int {
	if !m.InBound(a.X, a.Y) || !m.InBound(b.X, b.Y) {
		return -1
	}
	v := m.ToOccupancyGrid()
	steps := ShortestPathLength(v.FromCell(a), v.FromCell(b), v)
	if steps < 0 {
		return -1
	}
	return steps / 2
}
