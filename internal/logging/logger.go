// Package logging defines the structured-logging interface the server and
// its HTTP layer log through. The production implementation wraps slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// Variadic args are key–value pairs, e.g.:
//
//	log.Info(ctx, "incoming request", "method", method, "path", path)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value
	// pairs; the HTTP server uses it to tag its log lines with a module key.
	With(args ...any) Logger
}
