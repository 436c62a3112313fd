package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// levelSourceHandler adds source location only for selected levels. Keeps
// routine info/debug lines compact while warn/error stay debuggable.
type levelSourceHandler struct {
	handler     slog.Handler
	sourceLevel map[slog.Level]bool
}

// NewLevelSourceHandler wraps handler so source location is attached only to
// records at the given levels. The wrapped handler must not set AddSource
// itself, otherwise the location would point into this package.
func NewLevelSourceHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	m := make(map[slog.Level]bool, len(levels))
	for _, l := range levels {
		m[l] = true
	}
	return &levelSourceHandler{handler: handler, sourceLevel: m}
}

func (h *levelSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.sourceLevel[r.Level] {
		// Skip runtime.Callers, this frame, and the slog entry point.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frames := runtime.CallersFrames(pcs[:])
		frame, _ := frames.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			}),
		})
	}
	return h.handler.Handle(ctx, r)
}

func (h *levelSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelSourceHandler{handler: h.handler.WithAttrs(attrs), sourceLevel: h.sourceLevel}
}

func (h *levelSourceHandler) WithGroup(name string) slog.Handler {
	return &levelSourceHandler{handler: h.handler.WithGroup(name), sourceLevel: h.sourceLevel}
}

func (h *levelSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
