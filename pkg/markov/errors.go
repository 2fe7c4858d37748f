package markov

import "errors"

var (
	// ErrInvalidOrder is returned when the chain order is not a positive integer.
	ErrInvalidOrder = errors.New("markov: order must be greater than zero")

	// ErrInvalidPrior is returned when the prior weight is negative, infinite or NaN.
	ErrInvalidPrior = errors.New("markov: prior must be a finite non-negative number")

	// ErrUndefinedContext is returned when a context has no recorded successors
	// and the model has no prior to fall back on.
	ErrUndefinedContext = errors.New("markov: no successors recorded for context")
)
