package domain

import "errors"

var (
	// ErrInsufficientData signals that a computation fell back to defaults.
	// Advisory only: analysis entry points never surface it to callers.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrNoCandidates signals that no catalog exercise survived filtering.
	ErrNoCandidates = errors.New("no candidate exercises")

	// ErrInvalidRequest signals a malformed generation request.
	ErrInvalidRequest = errors.New("invalid request")
)
