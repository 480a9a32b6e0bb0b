/*
Package maze provides tools for creating rectangular mazes made of walled cells.

A Maze is built by randomized depth-first backtracking, which carves a perfect maze
(exactly one simple path between any two cells). An optional relaxation pass then
knocks down extra walls to introduce cycles and shortcuts.

The random source is injectable, so a maze built from the same seed is always the same.
Once Generate returns, the maze is read-only and safe for concurrent readers.
*/
package maze

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"
)

var (
	ErrInvalidDimensions      = errors.New("maze width and height must be at least 1")
	ErrInvalidRelaxationRatio = errors.New("relaxation ratio must be in [0, 1)")
	ErrAlreadyGenerated       = errors.New("maze already generated")
)

// Option configures a Maze at construction time.
type Option func(*Maze)

// WithRand makes the maze draw every random choice from rng.
func WithRand(rng *rand.Rand) Option {
	return func(m *Maze) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithSeed seeds a private random source for the maze.
func WithSeed(seed int64) Option {
	return func(m *Maze) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// Maze represents a rectangular grid of cells whose walls form the passages.
type Maze struct {
	width           int
	height          int
	relaxationRatio float64
	grid            [][]*Cell // grid is indexed [y][x].
	rng             *rand.Rand
	passages        int // passages counts the wall pairs removed so far.
	relaxed         int // relaxed counts the wall pairs removed by the relaxation pass.
	generated       bool
}

// New validates the configuration and returns a fully walled maze.
// Call Generate to carve the passages.
func New(width, height int, relaxationRatio float64, opts ...Option) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	if !(relaxationRatio >= 0 && relaxationRatio < 1) {
		return nil, ErrInvalidRelaxationRatio
	}

	m := &Maze{
		width:           width,
		height:          height,
		relaxationRatio: relaxationRatio,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m.initialize()
	return m, nil
}

// initialize fills the grid with cells walled on every side.
func (m *Maze) initialize() {
	m.grid = make([][]*Cell, m.height)
	for y := range m.grid {
		m.grid[y] = make([]*Cell, m.width)
		for x := range m.grid[y] {
			m.grid[y][x] = &Cell{
				X:          x,
				Y:          y,
				TopWall:    true,
				RightWall:  true,
				BottomWall: true,
				LeftWall:   true,
			}
		}
	}
	m.passages = 0
	m.relaxed = 0
}

// Generate carves a perfect maze starting at cell (0,0), then removes extra walls
// when the relaxation ratio is positive.
func (m *Maze) Generate() error {
	if m.generated {
		return ErrAlreadyGenerated
	}

	stack := make([]*Cell, 0, m.width*m.height)
	current := m.grid[0][0]
	current.visited = true

	for {
		next := m.randomUnvisitedNeighbor(current)
		if next != nil {
			stack = append(stack, current)
			m.openWall(current, next)
			next.visited = true
			current = next
			continue
		}
		if len(stack) == 0 {
			break
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}

	if m.relaxationRatio > 0 {
		m.relax()
	}

	m.generated = true
	return nil
}

// randomUnvisitedNeighbor picks uniformly among the unvisited neighbors of c, or returns nil.
func (m *Maze) randomUnvisitedNeighbor(c *Cell) *Cell {
	var candidates [4]*Cell
	n := 0
	for _, d := range Directions {
		nbr := m.neighbor(c, d)
		if nbr != nil && !nbr.visited {
			candidates[n] = nbr
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return candidates[m.rng.Intn(n)]
}

// neighbor returns the cell next to c in direction d, or nil at the border.
func (m *Maze) neighbor(c *Cell, d Direction) *Cell {
	p := c.Position().Step(d)
	if !m.InBound(p.X, p.Y) {
		return nil
	}
	return m.grid[p.Y][p.X]
}

// openWall removes the wall pair shared by two adjacent cells.
func (m *Maze) openWall(from, to *Cell) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		if from.X+dx == to.X && from.Y+dy == to.Y {
			from.setWall(d, false)
			to.setWall(d.Opposite(), false)
			m.passages++
			return
		}
	}
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// RelaxationRatio returns the fraction of cells given an extra wall-removal attempt.
func (m *Maze) RelaxationRatio() float64 {
	return m.relaxationRatio
}

// Generated reports whether Generate has completed.
func (m *Maze) Generated() bool {
	return m.generated
}

// InBound reports whether (x, y) addresses a cell of the grid.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Cell returns a copy of the cell at (x, y).
func (m *Maze) Cell(x, y int) (Cell, bool) {
	if !m.InBound(x, y) {
		return Cell{}, false
	}
	return *m.grid[y][x], true
}

// HasWall reports whether side d of cell (x, y) is walled.
// Cells outside the grid count as solid.
func (m *Maze) HasWall(x, y int, d Direction) bool {
	if !m.InBound(x, y) {
		return true
	}
	return m.grid[y][x].HasWall(d)
}

// Passages returns the number of wall pairs removed by generation and relaxation.
func (m *Maze) Passages() int {
	return m.passages
}

// Relaxed returns the number of wall pairs removed by the relaxation pass alone.
func (m *Maze) Relaxed() int {
	return m.relaxed
}

// maxRelaxations is the number of removal attempts the relaxation pass makes.
func (m *Maze) maxRelaxations() int {
	return int(math.Floor(float64(m.width*m.height) * m.relaxationRatio))
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < m.width; x++ {
		if m.grid[0][x].TopWall {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < m.height; y++ {
		if m.grid[y][0].LeftWall {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < m.width; x++ {
			if m.grid[y][x].RightWall {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for x := 0; x < m.width; x++ {
			if m.grid[y][x].BottomWall {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
