package services

import "github.com/pkg/errors"

// Sentinel errors the handlers map onto HTTP statuses.
var (
	// ErrJobNotFound maps to 404.
	ErrJobNotFound = errors.New("job not found")

	// ErrWrongCode maps to 403: the job exists but the supplied
	// modification code does not match.
	ErrWrongCode = errors.New("incorrect modification code")

	// ErrValidation maps to 422: the request was well-formed but violates
	// a business rule only the service can check.
	ErrValidation = errors.New("validation failed")

	// ErrPostingCapReached maps to 503: the configured row cap is hit.
	ErrPostingCapReached = errors.New("job posting limit reached")
)
