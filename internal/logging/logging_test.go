package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("session opened", "server", "weather")

	out := buf.String()
	if out == "" {
		t.Fatal("expected output, got empty string")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, out)
	}
	if _, ok := parsed["msg"]; !ok {
		t.Errorf("JSON output missing 'msg' field: %s", out)
	}
	if _, ok := parsed["level"]; !ok {
		t.Errorf("JSON output missing 'level' field: %s", out)
	}
	if parsed["server"] != "weather" {
		t.Errorf("JSON output missing attribute: got %v, want %q", parsed["server"], "weather")
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("session opened", "server", "weather")

	out := buf.String()
	if out == "" {
		t.Fatal("expected output, got empty string")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err == nil {
		t.Error("text format should not be valid JSON")
	}
	if !strings.Contains(out, "session opened") {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, "server=weather") {
		t.Errorf("output missing attribute: %s", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("output missing level: %s", out)
	}
}

func TestNew_DefaultsToStderr(t *testing.T) {
	logger := New(Config{Level: slog.LevelInfo})
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: Format("yaml"),
		Output: &buf,
	})

	logger.Info("hello")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err == nil {
		t.Error("unknown format should fall back to text, not JSON")
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()

	// Must accept every level without output or panic.
	logger.Debug("debug", "server", "weather")
	logger.Info("info", "count", 42)
	logger.Warn("warn", "flag", true)
	logger.Error("error", "err", "boom")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		configLevel  slog.Level
		logLevel     slog.Level
		shouldAppear bool
	}{
		{"info at info", slog.LevelInfo, slog.LevelInfo, true},
		{"debug dropped at info", slog.LevelInfo, slog.LevelDebug, false},
		{"error at info", slog.LevelInfo, slog.LevelError, true},
		{"warn at warn", slog.LevelWarn, slog.LevelWarn, true},
		{"info dropped at warn", slog.LevelWarn, slog.LevelInfo, false},
		{"debug at debug", slog.LevelDebug, slog.LevelDebug, true},
		{"error dropped above error", slog.LevelError + 4, slog.LevelError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:  tt.configLevel,
				Output: &buf,
			})

			logger.Log(t.Context(), tt.logLevel, "probe")

			if got := buf.Len() > 0; got != tt.shouldAppear {
				t.Errorf("output=%v, want %v (config %v, record %v)\noutput: %q",
					got, tt.shouldAppear, tt.configLevel, tt.logLevel, buf.String())
			}
		})
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Captured by the test framework at every level.
	logger.Debug("debug from test logger")
	logger.Info("info from test logger", "test", t.Name())
	logger.Warn("warn from test logger")
	logger.Error("error from test logger")
}

func TestFormat_Constants(t *testing.T) {
	if FormatText != "text" {
		t.Errorf("FormatText = %q, want %q", FormatText, "text")
	}
	if FormatJSON != "json" {
		t.Errorf("FormatJSON = %q, want %q", FormatJSON, "json")
	}
}

func TestNew_AttributeTypes(t *testing.T) {
	for _, format := range []Format{FormatText, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:  slog.LevelInfo,
				Format: format,
				Output: &buf,
			})

			logger.Info("message",
				"string", "value",
				"int", 42,
				"float", 3.14,
				"bool", true,
			)

			out := buf.String()
			if out == "" {
				t.Fatal("expected output, got empty string")
			}
			for _, want := range []string{"string", "value", "42", "3.14", "true"} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q: %s", want, out)
				}
			}
		})
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{7, LevelTrace},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should sit below LevelDebug")
	}
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	for _, input := range []string{"with newline\n", "no newline", ""} {
		n, err := tw.Write([]byte(input))
		if err != nil {
			t.Fatalf("Write(%q) failed: %v", input, err)
		}
		if n != len(input) {
			t.Errorf("Write(%q) returned %d, want %d", input, n, len(input))
		}
	}
}

func TestContextLogger(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(t.Context(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext should return the logger stored by NewContext")
	}

	// A bare context falls back to the default logger.
	if got := FromContext(t.Context()); got == nil {
		t.Error("FromContext on a bare context should not return nil")
	}
}
