package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Mode records the generator mode (character or cluster).
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Candidate records a generated candidate string.
func Candidate(s string) slog.Attr {
	return slog.String("candidate", s)
}

// Attempt records the 1-based attempt number of a generation loop.
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Pattern records an acceptance pattern.
func Pattern(expr string) slog.Attr {
	return slog.String("pattern", expr)
}

// Count records a number of items.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Path records a file path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
