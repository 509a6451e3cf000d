package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// consoleHandler renders records as single human-readable lines:
//
//	15:04:05 INFO  [component] message key=value key=value
//
// Level labels are colored when the writer is a terminal.
type consoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	attrs  []slog.Attr
	groups []string
	color  bool
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar) slog.Handler {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &consoleHandler{writer: w, level: lvl, color: color}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var component string
	flat := make([]slog.Attr, 0, record.NumAttrs()+len(h.attrs))
	for _, attr := range h.attrs {
		flat = append(flat, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		flat = append(flat, attr)
		return true
	})

	var buf bytes.Buffer
	buf.Grow(128 + len(flat)*24)
	buf.WriteString(timestamp.Format("15:04:05"))
	buf.WriteByte(' ')
	buf.WriteString(h.levelLabel(record.Level))

	rest := make([]slog.Attr, 0, len(flat))
	for _, attr := range flat {
		if attr.Key == FieldComponent && component == "" {
			component = attr.Value.String()
			continue
		}
		rest = append(rest, attr)
	}
	if component != "" {
		buf.WriteString(" [")
		buf.WriteString(component)
		buf.WriteByte(']')
	}
	buf.WriteByte(' ')
	buf.WriteString(strings.TrimSpace(record.Message))

	prefix := strings.Join(h.groups, ".")
	for _, attr := range rest {
		if attr.Key == "" {
			continue
		}
		buf.WriteByte(' ')
		if prefix != "" {
			buf.WriteString(prefix)
			buf.WriteByte('.')
		}
		buf.WriteString(attr.Key)
		buf.WriteByte('=')
		buf.WriteString(formatAttrValue(attr.Value))
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	if name != "" {
		clone.groups = append(clone.groups, name)
	}
	return clone
}

func (h *consoleHandler) clone() *consoleHandler {
	clone := &consoleHandler{writer: h.writer, level: h.level, color: h.color}
	clone.attrs = append(clone.attrs, h.attrs...)
	clone.groups = append(clone.groups, h.groups...)
	return clone
}

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

func (h *consoleHandler) levelLabel(level slog.Level) string {
	var label, color string
	switch {
	case level < slog.LevelInfo:
		label, color = "DEBUG", ansiDim
	case level < slog.LevelWarn:
		label, color = "INFO ", ""
	case level < slog.LevelError:
		label, color = "WARN ", ansiYellow
	default:
		label, color = "ERROR", ansiRed
	}
	if !h.color || color == "" {
		return label
	}
	return color + label + ansiReset
}

func formatAttrValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.ContainsAny(s, " \t\"") {
			return fmt.Sprintf("%q", s)
		}
		return s
	case slog.KindFloat64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v.Float64()), "0"), ".")
	default:
		return v.String()
	}
}
