package namegen

import (
	"errors"

	"github.com/dmitrymomot/namegen/pkg/markov"
)

var (
	// ErrInvalidOrder is returned when the chain order is not a positive integer.
	ErrInvalidOrder = errors.New("namegen: order must be an integer greater than zero")

	// ErrInvalidPrior is returned when the prior is negative or not a finite number.
	ErrInvalidPrior = errors.New("namegen: prior must be a finite non-negative number")

	// ErrInvalidMaxAttempts is returned when the retry ceiling is negative.
	ErrInvalidMaxAttempts = errors.New("namegen: max attempts must not be negative")

	// ErrNilRandSource is returned when a nil random source is supplied.
	ErrNilRandSource = errors.New("namegen: random source must not be nil")

	// ErrRandSourceReused is returned by Build when a source given with
	// WithRandSource was already handed to an earlier generator.
	ErrRandSourceReused = errors.New("namegen: random source already owned by another generator")

	// ErrInvalidPattern is returned by Build when the acceptance pattern does not compile.
	ErrInvalidPattern = errors.New("namegen: invalid acceptance pattern")

	// ErrEmptyWord is returned when an empty string is segmented into clusters.
	ErrEmptyWord = errors.New("namegen: cannot clusterize an empty word")

	// ErrUnknownMode is returned when a mode name is not recognised.
	ErrUnknownMode = errors.New("namegen: unknown generator mode")

	// ErrPatternUnsatisfiable is returned when the retry ceiling is reached
	// without producing a candidate that matches the pattern.
	ErrPatternUnsatisfiable = errors.New("namegen: no candidate matched the acceptance pattern")

	// ErrUndefinedContext is returned when the model has no successors for the
	// current context and no prior is configured.
	ErrUndefinedContext = markov.ErrUndefinedContext
)
