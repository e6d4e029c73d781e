package universe

import "github.com/pkg/errors"

//sentinel errors for grid construction
//all of them are detected eagerly, Step can never fail
var (
	ErrInvalidDimensions = errors.New("universe: width and height must be positive")
	ErrOutOfBounds       = errors.New("universe: coordinate outside the grid")
	ErrInvalidDensity    = errors.New("universe: density must be within [0,1]")
)
