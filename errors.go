package colorwheel

import "errors"

// Common errors returned by colorwheel operations.
var (
	// ErrInvalidHex is returned when a string is not a 6-digit hex color.
	ErrInvalidHex = errors.New("colorwheel: invalid hex color")
)

var (
	// ErrInvalidImage is returned when a wheel image asset cannot be decoded.
	ErrInvalidImage = errors.New("colorwheel: invalid wheel image")

	// ErrInvalidSize is returned when a requested size is not positive.
	ErrInvalidSize = errors.New("colorwheel: invalid size")
)
