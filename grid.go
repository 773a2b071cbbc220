package astar

import (
	"fmt"
	"iter"
	"math"
)

// Grid is a rows x cols occupancy field. A cell is either clear or blocked.
//
// Obstacles are set up before searching. A Grid is read-only during a
// search and any number of searches may share it, provided nothing
// mutates it concurrently.
type Grid struct {
	rows, cols int
	blocked    []bool // row*cols + col
}

// MaxCells is the largest number of cells a Grid may hold. Search state
// addresses cells with int32 indices.
const MaxCells = math.MaxInt32

// New returns a rows x cols grid with every cell clear.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimension, rows, cols, MaxCells)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		blocked: make([]bool, rows*cols),
	}, nil
}

// NewFromMatrix returns a grid shaped like blocked, where blocked[r][c]
// reports whether cell (r, c) is an obstacle. The matrix is copied.
func NewFromMatrix(blocked [][]bool) (*Grid, error) {
	if len(blocked) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(blocked[0])
	for r, row := range blocked {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimension, r, len(row), cols)
		}
	}
	g, err := New(len(blocked), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range blocked {
		copy(g.blocked[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// IsValidPosition reports whether (row, col) lies inside the grid.
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// SetObstacle marks (row, col) as blocked. An invalid coordinate leaves the
// grid unchanged and returns an error wrapping ErrOutOfBounds.
func (g *Grid) SetObstacle(row, col int) error {
	if !g.IsValidPosition(row, col) {
		return outOfBounds("set obstacle", row, col)
	}
	g.blocked[g.index(row, col)] = true
	return nil
}

// ClearObstacle marks (row, col) as clear, with the same error contract as
// SetObstacle.
func (g *Grid) ClearObstacle(row, col int) error {
	if !g.IsValidPosition(row, col) {
		return outOfBounds("clear obstacle", row, col)
	}
	g.blocked[g.index(row, col)] = false
	return nil
}

// IsObstacle reports whether (row, col) is blocked.
func (g *Grid) IsObstacle(row, col int) (bool, error) {
	if !g.IsValidPosition(row, col) {
		return false, outOfBounds("is obstacle", row, col)
	}
	return g.blocked[g.index(row, col)], nil
}

// IsCellEmpty reports whether (row, col) is clear. It reports false together
// with an ErrOutOfBounds error for an invalid coordinate.
func (g *Grid) IsCellEmpty(row, col int) (bool, error) {
	if !g.IsValidPosition(row, col) {
		return false, outOfBounds("is cell empty", row, col)
	}
	return !g.blocked[g.index(row, col)], nil
}

// Cells iterates over every cell in row-major order, yielding its position
// and whether it is blocked.
func (g *Grid) Cells() iter.Seq2[Position, bool] {
	return func(yield func(Position, bool) bool) {
		for i, b := range g.blocked {
			if !yield(g.position(i), b) {
				return
			}
		}
	}
}

// Obstacles returns the blocked cells in row-major order.
func (g *Grid) Obstacles() []Position {
	var out []Position
	for p, b := range g.Cells() {
		if b {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, blocked: make([]bool, len(g.blocked))}
	copy(c.blocked, g.blocked)
	return c
}

func (g *Grid) index(row, col int) int { return row*g.cols + col }

func (g *Grid) position(i int) Position {
	return Position{Row: i / g.cols, Col: i % g.cols}
}
