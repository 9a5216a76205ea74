// Package logging exposes the structured logger interface the
// collaborator layer (cmd/scheduler) logs through. The scheduling kernel (internal/court/...) never imports
// this package — pipeline.Run observes its own progress through an
// Observer callback, not a logger.
package logging

// Logger exposes logging methods for common severity levels.
type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no-op methods, for tests that don't
// care about log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger for the given component at the given level
// ("debug", "info", "warn", "error"; any other value falls back to
// "info"). The APP_ENV environment variable still selects console vs JSON
// output, matching the teacher's convention.
func New(component, level string) Logger {
	return newZerologLogger(component, level)
}
