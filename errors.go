package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and search requests.
var (
	// ErrInvalidDimension is returned when a grid would have a non-positive
	// number of rows or columns, or a source matrix is not rectangular.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrEmptyInput is returned when a grid is built from a matrix with no rows.
	ErrEmptyInput = errors.New("empty grid input")

	// ErrOutOfBounds is returned when a coordinate falls outside
	// [0,rows)x[0,cols).
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidEndpoint is returned by FindPath and NewStepper when the
	// start or goal is out of bounds or sits on an obstacle.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// PositionError records a coordinate that an operation rejected.
type PositionError struct {
	Op  string
	Pos Position
	Err error

	// cause is an optional second sentinel, e.g. ErrOutOfBounds behind
	// ErrInvalidEndpoint.
	cause error
}

func (e *PositionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s %v: %v: %v", e.Op, e.Pos, e.Err, e.cause)
	}
	return fmt.Sprintf("%s %v: %v", e.Op, e.Pos, e.Err)
}

// Unwrap exposes the sentinel errors to errors.Is and errors.As.
func (e *PositionError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}

func outOfBounds(op string, row, col int) error {
	return &PositionError{Op: op, Pos: Position{Row: row, Col: col}, Err: ErrOutOfBounds}
}
