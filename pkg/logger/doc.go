// Package logger builds *slog.Logger instances for the namegen tools and
// provides attribute helpers that keep key names consistent across packages.
//
// New creates a logger from functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel sets the minimum level; ParseLevel turns a flag or env value into one.
//   - WithOutput redirects output (default os.Stderr, so generated names on
//     stdout stay clean).
//   - WithAttr attaches static attributes to every record.
//   - WithContextExtractors injects attributes pulled from the context on every
//     Handle call, e.g. the request id set by pkg/requestid.
//
// Discard returns a logger that drops everything; library code falls back to
// it when the caller does not supply a logger.
//
// # Usage
//
//	log := logger.New(
//		logger.WithTextFormatter(),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(logger.Component("namegen")),
//	)
//	log.Debug("candidate rejected", logger.Candidate("qux"), logger.Attempt(3))
//
// Error and Errors return an empty attribute for nil errors, which slog drops,
// so they can be passed without a nil check.
package logger
