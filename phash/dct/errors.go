package dct

import "errors"

var (
	// ErrInvalidDimension is returned by New when the matrix size is not positive.
	ErrInvalidDimension = errors.New("dct: invalid dimension")

	// ErrInvalidInputSize is returned when a matrix does not hold exactly N*N values.
	ErrInvalidInputSize = errors.New("dct: invalid input size")

	// ErrUnknownStrategy is returned for a Strategy value or name that does not exist.
	ErrUnknownStrategy = errors.New("dct: unknown strategy")
)
