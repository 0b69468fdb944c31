package engine

import "errors"

var (
	// ErrValidation indicates a request that cannot be served as given.
	ErrValidation = errors.New("validation failed")

	// ErrEmptySnapshot indicates a commit request without snapshot data.
	ErrEmptySnapshot = errors.New("snapshot is empty")
)
