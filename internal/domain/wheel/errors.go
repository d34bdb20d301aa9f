package wheel

import "errors"

// Sentinel kinds for domain errors.
var (
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	ErrUnknownCategory = errors.New("unknown category")
)
