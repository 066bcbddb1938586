package log

import (
	"context"
	"io"
	"log/slog"
)

// slogLevel maps a slog.Level onto the module's own LogLevel scale so
// TextFormatter/JSONFormatter/ColorFormatter can render records that
// arrive through go-ethereum/log's slog.Handler plumbing.
func slogLevel(l slog.Level) LogLevel {
	switch {
	case l < slog.LevelInfo:
		return DEBUG
	case l < slog.LevelWarn:
		return INFO
	case l < slog.LevelError:
		return WARN
	default:
		return ERROR
	}
}

// Handler adapts one of this package's LogFormatter implementations
// into an slog.Handler, so it can be installed as the backing handler
// for a go-ethereum/log Logger via gethlog.NewLogger.
type Handler struct {
	w         io.Writer
	formatter LogFormatter
	attrs     []slog.Attr
	group     string
}

// NewHandler returns a Handler writing entries formatted by f to w.
func NewHandler(w io.Writer, f LogFormatter) *Handler {
	return &Handler{w: w, formatter: f}
}

func (h *Handler) Enabled(context.Context, slog.Level) bool { return true }

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]interface{}, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		fields[h.qualify(a.Key)] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[h.qualify(a.Key)] = a.Value.Any()
		return true
	})

	line := h.formatter.Format(LogEntry{
		Timestamp: r.Time,
		Level:     slogLevel(r.Level),
		Message:   r.Message,
		Fields:    fields,
	})
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

func (h *Handler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &Handler{w: h.w, formatter: h.formatter, group: h.group}
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	next := &Handler{w: h.w, formatter: h.formatter, attrs: h.attrs}
	if h.group != "" {
		next.group = h.group + "." + name
	} else {
		next.group = name
	}
	return next
}
