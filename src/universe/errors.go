package universe

import "github.com/pkg/errors"

var (
	//ErrUnknownTemplate is returned by SettleTemplate for the template which was never added
	ErrUnknownTemplate = errors.New("universe: unknown template")
	//ErrBadCoordinates is returned when the coordinate is not a [x, y] pair
	ErrBadCoordinates = errors.New("universe: coordinates must be [x, y] pairs")
	//ErrClosed is returned by commands sent after Close
	ErrClosed = errors.New("universe: closed")
)
