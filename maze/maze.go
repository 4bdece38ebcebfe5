/*
Package maze provides tools for creating and exploring rectangular perfect mazes.

It defines the `Grid` structure, composed of `Cell` objects that carry one wall flag
per `Direction`. Walls are only ever removed in pairs, so a wall that is open on one
side of a shared edge is open on the other side as well.

The package includes randomized depth-first carving, a breadth-first search for the
cell furthest from a start, and ASCII visualization of the grid.
*/
package maze

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// Grid is a fixed rows x cols array of cells.
type Grid struct {
	rows         int
	cols         int
	cells        [][]Cell
	removedPairs int
}

// New initializes a grid of the given dimensions with every wall standing.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
		for j := range cells[i] {
			cells[i][j] = newCell()
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// RemovedPairs returns how many wall pairs have been removed so far.
func (g *Grid) RemovedPairs() int {
	return g.removedPairs
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CanMove reports whether the wall on side d of (row, col) is open.
func (g *Grid) CanMove(row, col int, d Direction) bool {
	if !g.InBounds(row, col) || !d.Valid() {
		return false
	}
	return !g.cells[row][col].HasWall(d)
}

// Walls returns a copy of the wall flags of (row, col), indexed by Direction.
// Out of bounds cells report all walls present.
func (g *Grid) Walls(row, col int) [4]bool {
	if !g.InBounds(row, col) {
		return newCell().Walls
	}
	return g.cells[row][col].Walls
}

// Neighbor returns the position one step from p in direction d.
// The result is not bounds checked.
func (g *Grid) Neighbor(p Position, d Direction) Position {
	return p.Step(d)
}

// RemoveWallPair opens the wall on side d of (row, col) and the matching wall of
// the neighbor in that direction. The caller must have checked that the neighbor
// is in bounds.
func (g *Grid) RemoveWallPair(row, col int, d Direction) {
	n := Position{Row: row, Col: col}.Step(d)
	if g.cells[row][col].Walls[d] {
		g.removedPairs++
	}
	g.cells[row][col].Walls[d] = false
	g.cells[n.Row][n.Col].Walls[d.Opposite()] = false
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return g.Annotate(nil)
}

// Annotate renders the grid like String, drawing marks[p] in the middle of the
// cell at p.
func (g *Grid) Annotate(marks map[Position]byte) string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", g.cols) + "\n")

	for row := 0; row < g.rows; row++ {
		// Cell rows
		b.WriteString("|")
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row][col]

			if mark, ok := marks[Position{Row: row, Col: col}]; ok {
				b.WriteString(" " + string(mark) + " ")
			} else {
				b.WriteString("   ")
			}

			if cell.Walls[Right] {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col].Walls[Down] {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
