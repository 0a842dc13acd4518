package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when a grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid is empty")

	// ErrRaggedGrid is returned when grid rows differ in length.
	ErrRaggedGrid = errors.New("maze: grid rows differ in length")
)

// Grid is an immutable rectangular table of cells indexed [row][col].
type Grid struct {
	cells  [][]Cell
	width  int
	height int
}

// NewGrid copies rows into a new Grid.
func NewGrid(rows [][]Cell) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}

	width := len(rows[0])
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), width)
		}
		cells[y] = append([]Cell(nil), row...)
	}

	return Grid{cells: cells, width: width, height: len(rows)}, nil
}

// MustGrid is like NewGrid but panics on malformed input.
// Intended for package-level tables.
func MustGrid(rows [][]Cell) Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// InBounds reports whether p indexes a cell of the grid.
func (g Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. Out-of-bounds positions read as Wall.
func (g Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y][p.X]
}

// Rows returns a copy of the grid contents.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, len(g.cells))
	for y, row := range g.cells {
		rows[y] = append([]Cell(nil), row...)
	}
	return rows
}

// Find returns the first position (row-major) holding c.
func (g Grid) Find(c Cell) (Position, bool) {
	for y, row := range g.cells {
		for x, v := range row {
			if v == c {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// Count returns how many cells hold c.
func (g Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == c {
				n++
			}
		}
	}
	return n
}
