package logging

import (
	"context"
	"log/slog"
)

// MultiHandler duplicates each record to every wrapped handler, letting
// the stdout stream and the system_logs writer share one slog default.
type MultiHandler struct {
	handlers []slog.Handler
}

var _ slog.Handler = (*MultiHandler)(nil)

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports true if any wrapped handler wants the level, so an
// ERROR still reaches the DB writer when stdout is set quieter.
func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every handler enabled for its level,
// stopping at the first failure.
func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, record.Level) {
			if err := h.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		wrapped[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: wrapped}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	wrapped := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		wrapped[i] = h.WithGroup(name)
	}
	return &MultiHandler{handlers: wrapped}
}
