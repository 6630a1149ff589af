package grid

import "github.com/pkg/errors"

var (
	//ErrInvalidDimension is returned when a grid is requested with a non-positive size
	ErrInvalidDimension = errors.New("grid: size must be positive")
	//ErrOutOfBounds is returned for coordinates outside [0, size)
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	//ErrUnknownEngine is returned when the generation algorithm name is not registered
	ErrUnknownEngine = errors.New("grid: unknown engine")
)
