package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

	// ErrOutOfBounds indicates a coordinate lookup outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
)
