package logger

import "log/slog"

// Interface is the logging surface handed to application components. The
// plain methods take alternating key/value args like slog; the *w variants
// exist so call sites read naturally when every argument is structured.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// NewLogger wraps the process-wide slog logger in the Interface.
func NewLogger() Interface {
	return &slogAdapter{base: Get()}
}

type slogAdapter struct {
	base *slog.Logger
}

func (l *slogAdapter) Debug(msg string, args ...any) { l.base.Debug(msg, args...) }
func (l *slogAdapter) Info(msg string, args ...any)  { l.base.Info(msg, args...) }
func (l *slogAdapter) Warn(msg string, args ...any)  { l.base.Warn(msg, args...) }
func (l *slogAdapter) Error(msg string, args ...any) { l.base.Error(msg, args...) }

func (l *slogAdapter) With(args ...any) Interface {
	return &slogAdapter{base: l.base.With(args...)}
}

// Named tags every record from the returned logger with a component name.
func (l *slogAdapter) Named(name string) Interface {
	return &slogAdapter{base: l.base.With("logger", name)}
}

func (l *slogAdapter) Debugw(msg string, keysAndValues ...interface{}) {
	l.base.Debug(msg, keysAndValues...)
}

func (l *slogAdapter) Infow(msg string, keysAndValues ...interface{}) {
	l.base.Info(msg, keysAndValues...)
}

func (l *slogAdapter) Warnw(msg string, keysAndValues ...interface{}) {
	l.base.Warn(msg, keysAndValues...)
}

func (l *slogAdapter) Errorw(msg string, keysAndValues ...interface{}) {
	l.base.Error(msg, keysAndValues...)
}
