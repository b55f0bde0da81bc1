// Package logging defines the structured-logging interface used across the
// engine. Implementations wrap slog or zap; components never depend on a
// concrete logger.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs:
//
//	log.Info(ctx, "poll cycle complete", "new", n, "skipped", skipped)
type Logger interface {
	// Debug logs fine-grained detail useful only when tracing behavior.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs routine lifecycle events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs degraded-but-handled conditions (skipped poll cycle,
	// discarded corrupt blob, denied alert permission).
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures that surface to the caller.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value
	// pairs.
	With(args ...any) Logger
}

// Nop returns a Logger that discards everything. Handy as a default in
// constructors and in tests that do not assert on log output.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) Logger                    { return nopLogger{} }
