package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound   = errors.New("snapshot not found")
	ErrBadPayload = errors.New("malformed history payload")
	ErrValidation = errors.New("history failed validation")
)
