package cmd

import "errors"

var (
	// ErrNoCorpus is returned when no corpus file is configured by flag, env or profile.
	ErrNoCorpus = errors.New("no corpus files: pass --corpus, set NAMEGEN_CORPUS or use a profile")

	// ErrInvalidCount is returned when --count is not positive.
	ErrInvalidCount = errors.New("count must be positive")

	// ErrLogFormat is returned when the log format is neither text nor json.
	ErrLogFormat = errors.New("log format must be text or json")
)
