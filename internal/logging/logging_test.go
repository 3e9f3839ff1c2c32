package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"text", []string{"msg=\"record decoded\"", "kind=checkm_input"}},
		{"json", []string{`"msg":"record decoded"`, `"kind":"checkm_input"`}},
		{"JSON", []string{`"msg":"record decoded"`}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter(slog.LevelInfo, tt.format, &buf)
			logger.Info("record decoded", "kind", "checkm_input")
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("expected %s in output, got: %s", w, buf.String())
				}
			}
		})
	}
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelWarn, "text", &buf)

	logger.Info("should not appear")
	logger.Warn("should appear")

	output := buf.String()
	if strings.Contains(output, "should not appear") {
		t.Errorf("INFO message should be filtered at WARN level, got: %s", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Errorf("WARN message should appear at WARN level, got: %s", output)
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(NewLoggerWithWriter(slog.LevelDebug, "text", &buf), "service")
	logger.Debug("dispatch", "method", "kb_Msuite.status")

	output := buf.String()
	if !strings.Contains(output, "component=service") {
		t.Errorf("expected component in output, got: %s", output)
	}
	if !strings.Contains(output, "method=kb_Msuite.status") {
		t.Errorf("expected method in output, got: %s", output)
	}

	// A nil parent falls back to a discarding logger.
	Component(nil, "x").Info("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
