package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const defaultComponent = "app"

// componentHandler guarantees every record carries a component attribute so
// the log pane can group entries. Loggers derived with
// With("component", ...) keep their own.
type componentHandler struct {
	slog.Handler
	component string
	tagged    bool
}

// WithAttrs implements slog.Handler.
func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	tagged := h.tagged
	for _, a := range attrs {
		if a.Key == "component" {
			tagged = true
		}
	}
	return &componentHandler{
		Handler:   h.Handler.WithAttrs(attrs),
		component: h.component,
		tagged:    tagged,
	}
}

// WithGroup implements slog.Handler. The default component is attached
// before the group opens so it stays a top-level key.
func (h *componentHandler) WithGroup(name string) slog.Handler {
	base := h.Handler
	if !h.tagged {
		base = base.WithAttrs([]slog.Attr{slog.String("component", h.component)})
	}
	return &componentHandler{
		Handler:   base.WithGroup(name),
		component: h.component,
		tagged:    true,
	}
}

// Handle implements slog.Handler.
func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.tagged {
		found := false
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == "component" {
				found = true
				return false
			}
			return true
		})
		if !found {
			r = r.Clone()
			r.AddAttrs(slog.String("component", h.component))
		}
	}
	return h.Handler.Handle(ctx, r)
}

// NewLogger returns a text logger writing to w at level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(&componentHandler{Handler: handler, component: defaultComponent})
}

// OpenLog opens path for appending and returns a logger on it. The caller
// closes the returned file.
func OpenLog(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(file, level), file, nil
}
