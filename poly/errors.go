package poly

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by the checked accessors (At, on both Polygon
// and View) when the requested index is not within the container's
// current length.
var ErrOutOfRange = errors.New("poly: index out of range")

func outOfRangeError(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, index, length)
}
