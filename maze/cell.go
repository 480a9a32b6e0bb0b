package maze

import "fmt"

// Direction names one of the four sides of a cell.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions lists every side in clockwise order starting at Top.
var Directions = [4]Direction{Top, Right, Bottom, Left}

// Opposite returns the side facing d on the neighboring cell.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the grid offset of the neighbor that lies in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Position identifies a cell by column (X) and row (Y).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Cell represents a single cell in a maze grid.
// A wall flag is true while the wall blocks passage on that side.
type Cell struct {
	X          int  // X is the column of the cell.
	Y          int  // Y is the row of the cell.
	TopWall    bool // TopWall indicates whether there is a wall on the top side of the cell.
	RightWall  bool // RightWall indicates whether there is a wall on the right side of the cell.
	BottomWall bool // BottomWall indicates whether there is a wall on the bottom side of the cell.
	LeftWall   bool // LeftWall indicates whether there is a wall on the left side of the cell.

	visited bool
}

// HasWall reports whether the side d of the cell is walled.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case Top:
		return c.TopWall
	case Right:
		return c.RightWall
	case Bottom:
		return c.BottomWall
	case Left:
		return c.LeftWall
	}
	return true
}

// Position returns the grid coordinates of the cell.
func (c *Cell) Position() Position {
	return Position{X: c.X, Y: c.Y}
}

func (c *Cell) setWall(d Direction, present bool) {
	switch d {
	case Top:
		c.TopWall = present
	case Right:
		c.RightWall = present
	case Bottom:
		c.BottomWall = present
	case Left:
		c.LeftWall = present
	}
}
