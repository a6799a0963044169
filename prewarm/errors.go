package prewarm

import "errors"

var (
	// ErrTargetRequired is returned when no warm target is given.
	ErrTargetRequired = errors.New("warm target required")

	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrInvalidBaseDelay is returned for a negative base delay.
	ErrInvalidBaseDelay = errors.New("base delay cannot be negative")

	// ErrWarmerReleased is returned when submitting to a released Warmer.
	ErrWarmerReleased = errors.New("warmer released")
)
