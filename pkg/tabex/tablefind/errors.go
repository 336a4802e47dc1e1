package tablefind

import "errors"

var (
	// ErrInvalidRange indicates a range whose stop position lies before its
	// start position.
	ErrInvalidRange = errors.New("tablefind: invalid range bounds")

	// ErrOutOfBounds indicates a range applied to a grid too small to
	// contain it.
	ErrOutOfBounds = errors.New("tablefind: range exceeds grid bounds")
)
