package maze

import "errors"

var (
	// ErrDimensionsNotSet is returned by Generate when width or height is not positive.
	ErrDimensionsNotSet = errors.New("maze dimensions not set")
	// ErrNoMaze is returned when an operation needs a maze but none is loaded.
	ErrNoMaze = errors.New("no maze loaded")
	// ErrMalformed is returned for dimensions that cannot be written or read back.
	ErrMalformed = errors.New("malformed maze record")
)
