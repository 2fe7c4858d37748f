// Package requestid tags every HTTP request with an ID.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a time-ordered UUID, stores it in the request context and echoes
// it in the response header. LoggerExtractor plugs the ID into loggers built
// with pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
