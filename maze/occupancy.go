package maze

// OccupancyView is a boolean projection of a maze used for coarse spatial queries.
// It is derived from the maze and never written back.
type OccupancyView struct {
	cols    int
	rows    int
	blocked []bool // blocked is row-major, true when the square is impassable.

	// A view square (vx, vy) holds cell ((vx-offset)/stride, (vy-offset)/stride)
	// when both differences are multiples of stride.
	stride int
	offset int
}

// OccupancyStrategy projects a maze onto an occupancy view.
type OccupancyStrategy interface {
	Project(m *Maze) *OccupancyView
}

// CellGrid maps every cell to one square and marks all of them passable.
// Walls are not represented, so wall checks are left to the motion resolver.
type CellGrid struct{}

// ExpandedGrid maps the maze onto a (2w+1) x (2h+1) grid where cells sit on odd
// coordinates and the squares between them are open only where the wall is gone.
type ExpandedGrid struct{}

var (
	_ OccupancyStrategy = CellGrid{}
	_ OccupancyStrategy = ExpandedGrid{}
)

// Project implements OccupancyStrategy.
func (CellGrid) Project(m *Maze) *OccupancyView {
	return &OccupancyView{
		cols:    m.width,
		rows:    m.height,
		blocked: make([]bool, m.width*m.height),
		stride:  1,
	}
}

// Project implements OccupancyStrategy.
func (ExpandedGrid) Project(m *Maze) *OccupancyView {
	v := &OccupancyView{
		cols:   2*m.width + 1,
		rows:   2*m.height + 1,
		stride: 2,
		offset: 1,
	}
	v.blocked = make([]bool, v.cols*v.rows)
	for i := range v.blocked {
		v.blocked[i] = true
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			cell := m.grid[y][x]
			center := v.FromCell(Position{X: x, Y: y})
			v.set(center, false)
			for _, d := range Directions {
				if !cell.HasWall(d) {
					v.set(center.Step(d), false)
				}
			}
		}
	}
	return v
}

// ToOccupancyGrid projects the maze with the standard ExpandedGrid strategy.
func (m *Maze) ToOccupancyGrid() *OccupancyView {
	return m.Occupancy(ExpandedGrid{})
}

// Occupancy projects the maze with the given strategy.
func (m *Maze) Occupancy(s OccupancyStrategy) *OccupancyView {
	return s.Project(m)
}

// NewOccupancyView builds a cell-aligned view from rows of blocked flags.
// Rows shorter than the first one are padded with blocked squares.
func NewOccupancyView(blocked [][]bool) *OccupancyView {
	rows := len(blocked)
	cols := 0
	if rows > 0 {
		cols = len(blocked[0])
	}
	v := &OccupancyView{
		cols:    cols,
		rows:    rows,
		blocked: make([]bool, cols*rows),
		stride:  1,
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v.blocked[y*cols+x] = x >= len(blocked[y]) || blocked[y][x]
		}
	}
	return v
}

// Cols returns the view width in squares.
func (v *OccupancyView) Cols() int {
	return v.cols
}

// Rows returns the view height in squares.
func (v *OccupancyView) Rows() int {
	return v.rows
}

// InBound reports whether p addresses a square of the view.
func (v *OccupancyView) InBound(p Position) bool {
	return p.X >= 0 && p.X < v.cols && p.Y >= 0 && p.Y < v.rows
}

// Passable reports whether the square at p can be entered.
func (v *OccupancyView) Passable(p Position) bool {
	return v.InBound(p) && !v.blocked[p.Y*v.cols+p.X]
}

// PassableCount returns the number of passable squares.
func (v *OccupancyView) PassableCount() int {
	n := 0
	for _, b := range v.blocked {
		if !b {
			n++
		}
	}
	return n
}

// ToCell converts a view square to the maze cell it represents.
// Squares standing for walls or gaps between cells report false.
func (v *OccupancyView) ToCell(p Position) (Position, bool) {
	stride := v.strideOrOne()
	dx, dy := p.X-v.offset, p.Y-v.offset
	if dx < 0 || dy < 0 || dx%stride != 0 || dy%stride != 0 {
		return Position{}, false
	}
	return Position{X: dx / stride, Y: dy / stride}, true
}

// FromCell converts a maze cell to its square in the view.
func (v *OccupancyView) FromCell(c Position) Position {
	stride := v.strideOrOne()
	return Position{X: c.X*stride + v.offset, Y: c.Y*stride + v.offset}
}

// PassableCell reports whether the square of cell c is passable.
func (v *OccupancyView) PassableCell(c Position) bool {
	if c.X < 0 || c.Y < 0 {
		return false
	}
	return v.Passable(v.FromCell(c))
}

func (v *OccupancyView) strideOrOne() int {
	if v.stride < 1 {
		return 1
	}
	return v.stride
}

func (v *OccupancyView) set(p Position, blocked bool) {
	if v.InBound(p) {
		v.blocked[p.Y*v.cols+p.X] = blocked
	}
}
