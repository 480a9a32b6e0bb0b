package game

import "github.com/beka-birhanu/maze-runner/maze"

// Wall bits of a Layout cell.
const (
	WallTop = 1 << iota
	WallRight
	WallBottom
	WallLeft
)

// Layout is everything a client needs to draw the current level.
type Layout struct {
	LevelConfig
	CellSize  float64         `json:"cell_size"`
	ActorSize float64         `json:"actor_size"`
	Walls     [][]int         `json:"walls"` // Walls is indexed [y][x] and holds Wall* bits.
	Player    maze.Position   `json:"player"`
	Goal      maze.Position   `json:"goal"`
	Bonuses   []maze.Position `json:"bonuses"`
}

// Layout returns the layout of the current level.
func (s *Session) Layout() Layout {
	s.RLock()
	defer s.RUnlock()

	bonuses := make([]maze.Position, 0, len(s.bonuses))
	for _, b := range s.bonuses {
		if !b.taken {
			bonuses = append(bonuses, b.cell)
		}
	}
	return Layout{
		LevelConfig: s.level,
		CellSize:    s.cfg.CellSize,
		ActorSize:   s.cfg.ActorSize,
		Walls:       WallMask(s.maze),
		Player:      s.placement.Player,
		Goal:        s.goal.cell,
		Bonuses:     bonuses,
	}
}

// WallMask encodes the walls of every cell as a bit set.
func WallMask(m *maze.Maze) [][]int {
	bits := [4]int{WallTop, WallRight, WallBottom, WallLeft}

	rows := make([][]int, m.Height())
	for y := range rows {
		rows[y] = make([]int, m.Width())
		for x := range rows[y] {
			for i, d := range maze.Directions {
				if m.HasWall(x, y, d) {
					rows[y][x] |= bits[i]
				}
			}
		}
	}
	return rows
}
