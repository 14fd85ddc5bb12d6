package squaregrid

import (
	"errors"

	"github.com/gogpu/squaregrid/internal/cells"
)

// Errors returned by grid construction and cell access.
var (
	// ErrInvalidDimensions is returned when rows or columns is below 1.
	ErrInvalidDimensions = errors.New("squaregrid: number of rows and columns should be equal to or greater than 1")

	// ErrMissingContainer is returned when no parent container is supplied.
	ErrMissingContainer = errors.New("squaregrid: parent container not provided")

	// ErrCellSizeTooSmall is returned when the cell size is below MinCellSize.
	ErrCellSizeTooSmall = errors.New("squaregrid: cell size below minimum")

	// ErrOutOfBounds is returned when a cell index lies outside the grid.
	ErrOutOfBounds = cells.ErrOutOfBounds

	// ErrNilColor is returned when a nil color is given where a color is
	// required.
	ErrNilColor = cells.ErrNilColor

	// ErrUnknownColor is returned by ParseColor for unrecognized input.
	ErrUnknownColor = errors.New("squaregrid: unknown color")

	// ErrClosed is returned by operations on a closed grid.
	ErrClosed = errors.New("squaregrid: grid is closed")
)
