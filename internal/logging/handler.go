package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Handler is a slog.Handler that renders one record per line for
// terminal output: kitchen timestamp, padded level, message, then
// key=value attributes. Color is enabled only when the writer is a
// color-capable terminal.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string

	timeCol  *color.Color
	debugCol *color.Color
	infoCol  *color.Color
	warnCol  *color.Color
	errCol   *color.Color
	keyCol   *color.Color
}

// NewHandler creates a terminal text handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{
		out: out,
		mu:  &sync.Mutex{},
	}
	if opts != nil {
		h.opts = *opts
	}

	if SupportsColor(out) {
		h.timeCol = color.New(color.FgHiBlack)
		h.debugCol = color.New(color.FgMagenta)
		h.infoCol = color.New(color.FgGreen)
		h.warnCol = color.New(color.FgYellow)
		h.errCol = color.New(color.FgRed, color.Bold)
		h.keyCol = color.New(color.FgCyan)
	}

	return h
}

// Enabled reports whether records at the given level are written.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

// Handle formats the record into a single line and writes it in one
// call, so concurrent loggers never interleave within a line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		ts := r.Time.Format(time.Kitchen)
		if h.timeCol != nil {
			ts = h.timeCol.Sprint(ts)
		}
		buf.WriteString(ts)
		buf.WriteByte(' ')
	}

	level := r.Level.String()
	if c := h.levelColor(r.Level); c != nil {
		level = c.Sprint(level)
	}
	fmt.Fprintf(&buf, "%-5s ", level)

	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&buf, a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, h.prefix+a.Key, a.Value)
		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) levelColor(l slog.Level) *color.Color {
	switch {
	case h.timeCol == nil:
		return nil
	case l >= slog.LevelError:
		return h.errCol
	case l >= slog.LevelWarn:
		return h.warnCol
	case l >= slog.LevelInfo:
		return h.infoCol
	default:
		return h.debugCol
	}
}

func (h *Handler) writeAttr(buf *bytes.Buffer, key string, v slog.Value) {
	val := v.Any()

	// Server env values and HTTP headers routinely carry credentials.
	if shouldMask(key) {
		val = maskValue(fmt.Sprint(val))
	} else if s, ok := val.(string); ok && containsTokenPrefix(s) {
		val = maskValue(s)
	}

	display := key
	if h.keyCol != nil {
		display = h.keyCol.Sprint(key)
	}
	fmt.Fprintf(buf, " %s=%v", display, val)
}

// WithAttrs returns a handler that carries the given attributes on
// every record. The current group prefix is baked into their keys.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

// WithGroup returns a handler that prefixes subsequent attribute keys
// with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}
