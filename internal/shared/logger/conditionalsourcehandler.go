package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// conditionalSourceHandler wraps another handler and attaches source location
// only for selected levels. The wrapped handler must be created with
// AddSource: false; this wrapper injects the source attribute itself.
type conditionalSourceHandler struct {
	inner        slog.Handler
	sourceLevels map[slog.Level]bool
}

func NewConditionalSourceHandler(inner slog.Handler, levels ...slog.Level) slog.Handler {
	m := make(map[slog.Level]bool, len(levels))
	for _, l := range levels {
		m[l] = true
	}
	return &conditionalSourceHandler{inner: inner, sourceLevels: m}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.sourceLevels[r.Level] {
		// Skip this frame plus the slog internal frame.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frame, _ := runtime.CallersFrames(pcs[:]).Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			}),
		})
	}

	return h.inner.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{inner: h.inner.WithAttrs(attrs), sourceLevels: h.sourceLevels}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{inner: h.inner.WithGroup(name), sourceLevels: h.sourceLevels}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}
