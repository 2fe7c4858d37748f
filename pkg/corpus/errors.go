package corpus

import "errors"

var (
	// ErrReadCorpus is returned when a corpus source cannot be read.
	ErrReadCorpus = errors.New("corpus: failed to read corpus")

	// ErrNoFiles is returned when ReadFiles is called without paths.
	ErrNoFiles = errors.New("corpus: no corpus files given")
)
