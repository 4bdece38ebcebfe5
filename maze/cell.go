package maze

import "fmt"

// Cell represents a single cell in a maze grid.
// Walls is indexed by Direction; true means the wall is present.
type Cell struct {
	Walls [4]bool
}

// newCell returns a cell with all four walls standing.
func newCell() Cell {
	return Cell{Walls: [4]bool{true, true, true, true}}
}

// HasWall returns true if there is a wall on side d of the cell.
func (c *Cell) HasWall(d Direction) bool {
	return c.Walls[d]
}

// Position represents the position of a cell in the maze grid.
type Position struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	delta := d.Delta()
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
