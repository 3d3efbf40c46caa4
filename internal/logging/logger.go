// Package logging is the small structured-logging facade the services and
// HTTP middleware depend on, so tests can swap in a silent logger.
package logging

import "context"

// Logger logs key-value structured records. Args are alternating keys and
// values, e.g. log.Warn(ctx, "login failed", "email", email).
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key-value pairs on
	// every record.
	With(args ...any) Logger
}
