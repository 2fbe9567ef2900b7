package grid

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")

	// ErrOutOfRange indicates a cell outside the grid.
	ErrOutOfRange = errors.New("grid: cell out of range")
)
