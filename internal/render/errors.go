package render

import "errors"

var (
	// ErrWallAlreadyOpen indicates an event replayed twice or out of order.
	ErrWallAlreadyOpen = errors.New("render: wall already open")

	// ErrNotAdjacent indicates an event between cells that share no wall.
	ErrNotAdjacent = errors.New("render: cells are not adjacent")

	// ErrInvalidConfig indicates non-positive sizes in a Config.
	ErrInvalidConfig = errors.New("render: invalid config")
)
