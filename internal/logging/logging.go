package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
)

// Format selects how log records are rendered.
type Format string

const (
	// FormatText renders single-line colorized text for terminals.
	FormatText Format = "text"
	// FormatJSON renders one JSON object per record.
	FormatJSON Format = "json"
)

// Config describes a logger to build with New.
type Config struct {
	// Level is the minimum level; records below it are dropped.
	Level slog.Level
	// Format picks the renderer. Anything other than FormatJSON falls
	// back to text.
	Format Format
	// Output receives the records. Nil means os.Stderr.
	Output io.Writer
}

// New builds a logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var h slog.Handler
	if cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = NewHandler(out, opts)
	}
	return slog.New(h)
}

// Default returns the logger used before flags are parsed: Info level,
// text format, stderr.
func Default() *slog.Logger {
	return New(Config{Level: slog.LevelInfo, Output: os.Stderr})
}

// NewDiscard returns a logger that drops everything. Used for --quiet.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LevelTrace sits below Debug for very fine-grained output.
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps a -v count to a slog level.
// 0 is Warn, 1 is Info, 2 is Debug, 3 and above is Trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

type contextKey struct{}

// NewContext returns a context carrying the given logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or Default if none is set.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return Default()
}

// testWriter routes handler output through t.Log so it shows up
// attached to the failing test.
type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	msg := string(p)
	// t.Log adds its own newline.
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}

// ForTest returns a Debug-level text logger whose output lands in the
// test log, visible on failure or under -v.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  slog.LevelDebug,
		Output: &testWriter{t: t},
	})
}
