package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("ratelimiter: invalid configuration")

	// ErrInvalidCost indicates a non-positive token count.
	ErrInvalidCost = errors.New("ratelimiter: token count must be positive")

	// ErrExceedsCapacity indicates a token count no refill could ever cover.
	ErrExceedsCapacity = errors.New("ratelimiter: token count exceeds bucket capacity")
)
