package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LogHandler is a slog.Handler that prints records through the UI's
// coloured level prefixes, followed by the record's attributes as key=value.
type LogHandler struct {
	ui     *UI
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewLogHandler returns a handler writing records at or above level to u.
func NewLogHandler(u *UI, level slog.Leveler) *LogHandler {
	return &LogHandler{ui: u, level: level}
}

// Enabled implements slog.Handler.
func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *LogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, a)
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		writeAttr(&b, a)
		return true
	})

	msg := b.String()
	switch {
	case r.Level >= slog.LevelError:
		h.ui.Error(msg)
	case r.Level >= slog.LevelWarn:
		h.ui.Warning(msg)
	case r.Level >= slog.LevelInfo:
		h.ui.Info(msg)
	default:
		h.ui.Debug(msg)
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := strings.Join(h.groups, ".")
	next := *h
	next.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

// WithGroup implements slog.Handler.
func (h *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string(nil), h.groups...), name)
	return &next
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	value := a.Value.String()
	if strings.ContainsAny(value, " \t\"=") || value == "" {
		value = fmt.Sprintf("%q", value)
	}
	fmt.Fprintf(b, " %s=%s", a.Key, value)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a logger for a run. The json format writes one JSON
// object per record to w; anything else goes through the UI's coloured output.
func NewLogger(u *UI, levelStr, formatStr string, w io.Writer) *slog.Logger {
	level := ParseLevel(levelStr)

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(NewLogHandler(u, level))
}
