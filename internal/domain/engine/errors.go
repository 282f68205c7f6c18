package engine

import "errors"

// Sentinel kinds for engine errors.
var (
	ErrInvalidWindow = errors.New("drop window must be at least 1")
)
